// Vehicle delete command removes a vehicle and its service history.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var vehicleDeleteCmd = &cobra.Command{
	Use:   "delete <plate>",
	Short: "Delete a vehicle and its service history",
	Long: `Delete removes the vehicle registered under the given plate together
with all of its service events and its QR code label.

Example:
  garagelog vehicle delete B1234XYZ`,
	Args: cobra.ExactArgs(1),
	RunE: runVehicleDelete,
}

func runVehicleDelete(cmd *cobra.Command, args []string) error {
	plate := args[0]

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	if err := backend.DeleteVehicle(plate); err != nil {
		return fmt.Errorf("delete vehicle %q: %w", plate, err)
	}

	if flagJSON {
		return printJSON(map[string]string{"deleted": plate, "status": "success"})
	}
	fmt.Printf("Deleted vehicle: %s\n", plate)
	return nil
}
