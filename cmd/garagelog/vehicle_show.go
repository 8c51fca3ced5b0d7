// Vehicle show command displays one vehicle with its service history.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gearbox-labs/garagelog/pkg/types"
)

var vehicleShowCmd = &cobra.Command{
	Use:   "show <plate>",
	Short: "Show a vehicle and its service history",
	Long: `Show displays the vehicle registered under the given plate together
with its service events, newest first.

Example:
  garagelog vehicle show B1234XYZ
  garagelog vehicle show B1234XYZ --json`,
	Args: cobra.ExactArgs(1),
	RunE: runVehicleShow,
}

func runVehicleShow(cmd *cobra.Command, args []string) error {
	plate := args[0]

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	vehicle, err := backend.GetVehicle(plate)
	if err != nil {
		return fmt.Errorf("show vehicle %q: %w", plate, err)
	}

	services, err := backend.VehicleServices(plate)
	if err != nil {
		return fmt.Errorf("show vehicle %q: %w", plate, err)
	}

	if flagJSON {
		return printJSON(struct {
			Vehicle  *types.Vehicle        `json:"vehicle"`
			Services []*types.ServiceEvent `json:"services"`
		}{vehicle, services})
	}

	fmt.Printf("%s  %s %s (%d)\n", vehicle.Plate, vehicle.Brand, vehicle.Model, vehicle.Year)
	fmt.Printf("  category:   %s\n", vehicle.Category)
	if vehicle.Color != "" {
		fmt.Printf("  color:      %s\n", vehicle.Color)
	}
	fmt.Printf("  odometer:   %d km\n", vehicle.LastOdometer)
	fmt.Printf("  registered: %s\n", vehicle.RegisteredAt.Format("2006-01-02"))
	if vehicle.Notes != "" {
		fmt.Printf("  notes:      %s\n", vehicle.Notes)
	}
	fmt.Println()
	printServiceTable(services)
	return nil
}
