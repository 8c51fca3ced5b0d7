// Vehicle update command patches mutable vehicle fields.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gearbox-labs/garagelog/pkg/types"
)

var (
	updateBrand    string
	updateModel    string
	updateYear     int
	updateCategory string
	updateColor    string
	updateOdometer int
	updateNotes    string
)

var vehicleUpdateCmd = &cobra.Command{
	Use:   "update <plate>",
	Short: "Update a registered vehicle",
	Long: `Update changes the given fields of a registered vehicle. Only flags
that are set are applied; the plate and registration timestamp never change.

Example:
  garagelog vehicle update B1234XYZ --odometer 17500
  garagelog vehicle update B1234XYZ --color red --notes "repainted"`,
	Args: cobra.ExactArgs(1),
	RunE: runVehicleUpdate,
}

func init() {
	vehicleUpdateCmd.Flags().StringVar(&updateBrand, "brand", "", "manufacturer")
	vehicleUpdateCmd.Flags().StringVar(&updateModel, "model", "", "model name")
	vehicleUpdateCmd.Flags().IntVar(&updateYear, "year", 0, "manufacture year")
	vehicleUpdateCmd.Flags().StringVar(&updateCategory, "category", "", "vehicle category: motorcycle or car")
	vehicleUpdateCmd.Flags().StringVar(&updateColor, "color", "", "vehicle color")
	vehicleUpdateCmd.Flags().IntVar(&updateOdometer, "odometer", 0, "current odometer reading in km")
	vehicleUpdateCmd.Flags().StringVar(&updateNotes, "notes", "", "free-form notes")
}

func runVehicleUpdate(cmd *cobra.Command, args []string) error {
	plate := args[0]

	var patch types.VehiclePatch
	if cmd.Flags().Changed("brand") {
		patch.Brand = &updateBrand
	}
	if cmd.Flags().Changed("model") {
		patch.Model = &updateModel
	}
	if cmd.Flags().Changed("year") {
		patch.Year = &updateYear
	}
	if cmd.Flags().Changed("category") {
		patch.Category = &updateCategory
	}
	if cmd.Flags().Changed("color") {
		patch.Color = &updateColor
	}
	if cmd.Flags().Changed("odometer") {
		patch.LastOdometer = &updateOdometer
	}
	if cmd.Flags().Changed("notes") {
		patch.Notes = &updateNotes
	}
	if patch.IsEmpty() {
		return fmt.Errorf("update vehicle %q: no fields to change", plate)
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	if err := backend.UpdateVehicle(plate, patch); err != nil {
		return fmt.Errorf("update vehicle %q: %w", plate, err)
	}

	if flagJSON {
		vehicle, err := backend.GetVehicle(plate)
		if err != nil {
			return fmt.Errorf("update vehicle %q: %w", plate, err)
		}
		return printJSON(vehicle)
	}
	fmt.Printf("Updated vehicle: %s\n", plate)
	return nil
}
