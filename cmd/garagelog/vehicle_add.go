// Vehicle add command registers a new vehicle.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gearbox-labs/garagelog/internal/qr"
	"github.com/gearbox-labs/garagelog/pkg/types"
)

var (
	addPlate    string
	addBrand    string
	addModel    string
	addYear     int
	addCategory string
	addColor    string
	addOdometer int
	addNotes    string
	addNoQR     bool
)

var vehicleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new vehicle",
	Long: `Add registers a vehicle under its license plate and generates a QR
code label for it.

Example:
  garagelog vehicle add --plate B1234XYZ --brand Honda --model "Vario 125" --year 2020 --category motorcycle
  garagelog vehicle add --plate D5678ABC --brand Toyota --model Avanza --year 2018 --category car --color silver`,
	Args: cobra.NoArgs,
	RunE: runVehicleAdd,
}

func init() {
	vehicleAddCmd.Flags().StringVar(&addPlate, "plate", "", "license plate (required)")
	vehicleAddCmd.Flags().StringVar(&addBrand, "brand", "", "manufacturer (required)")
	vehicleAddCmd.Flags().StringVar(&addModel, "model", "", "model name (required)")
	vehicleAddCmd.Flags().IntVar(&addYear, "year", 0, "manufacture year (required)")
	vehicleAddCmd.Flags().StringVar(&addCategory, "category", "", "vehicle category: motorcycle or car (required)")
	vehicleAddCmd.Flags().StringVar(&addColor, "color", "", "vehicle color")
	vehicleAddCmd.Flags().IntVar(&addOdometer, "odometer", 0, "current odometer reading in km")
	vehicleAddCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
	vehicleAddCmd.Flags().BoolVar(&addNoQR, "no-qr", false, "skip QR code generation")
	_ = vehicleAddCmd.MarkFlagRequired("plate")
	_ = vehicleAddCmd.MarkFlagRequired("brand")
	_ = vehicleAddCmd.MarkFlagRequired("model")
	_ = vehicleAddCmd.MarkFlagRequired("year")
	_ = vehicleAddCmd.MarkFlagRequired("category")
}

func runVehicleAdd(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	v := &types.Vehicle{
		Plate:        addPlate,
		Brand:        addBrand,
		Model:        addModel,
		Year:         addYear,
		Category:     addCategory,
		Color:        addColor,
		LastOdometer: addOdometer,
		Notes:        addNotes,
	}

	if err := backend.AddVehicle(v); err != nil {
		return fmt.Errorf("add vehicle: %w", err)
	}

	// The registration stands even when the label cannot be produced.
	if !addNoQR {
		dataDir, err := resolveDataDir()
		if err != nil {
			log.Warn("skipping QR code", zap.Error(err))
		} else if path, err := qr.Encode(qr.Dir(dataDir), v.Plate); err != nil {
			log.Warn("QR code generation failed", zap.String("plate", v.Plate), zap.Error(err))
		} else if !flagJSON {
			fmt.Println("QR code:", path)
		}
	}

	if flagJSON {
		return printJSON(v)
	}
	fmt.Printf("Registered vehicle: %s\n", v.Plate)
	return nil
}
