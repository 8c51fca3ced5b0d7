// QR command group: generate and read vehicle QR labels.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gearbox-labs/garagelog/internal/qr"
)

var qrCmd = &cobra.Command{
	Use:   "qr",
	Short: "Generate and read vehicle QR code labels",
}

var qrGenerateCmd = &cobra.Command{
	Use:   "generate <plate>",
	Short: "Generate the QR code label for a registered vehicle",
	Long: `Generate writes a PNG QR code encoding the given plate into the qr/
directory under the data directory. The vehicle must already be
registered.

Example:
  garagelog qr generate B1234XYZ`,
	Args: cobra.ExactArgs(1),
	RunE: runQRGenerate,
}

var qrReadCmd = &cobra.Command{
	Use:   "read <image>",
	Short: "Read a plate from a QR code image and look it up",
	Long: `Read decodes a QR code image, extracts the encoded plate and shows
the matching vehicle.

Example:
  garagelog qr read ./qr/QR_B1234XYZ.png`,
	Args: cobra.ExactArgs(1),
	RunE: runQRRead,
}

func init() {
	qrCmd.AddCommand(qrGenerateCmd)
	qrCmd.AddCommand(qrReadCmd)
}

func runQRGenerate(cmd *cobra.Command, args []string) error {
	plate := args[0]

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	// Only registered vehicles get labels.
	if _, err := backend.GetVehicle(plate); err != nil {
		return fmt.Errorf("qr generate %q: %w", plate, err)
	}

	dataDir, err := resolveDataDir()
	if err != nil {
		return fmt.Errorf("qr generate: %w", err)
	}

	path, err := qr.Encode(qr.Dir(dataDir), plate)
	if err != nil {
		return fmt.Errorf("qr generate %q: %w", plate, err)
	}

	if flagJSON {
		return printJSON(map[string]string{"plate": plate, "path": path})
	}
	fmt.Println("QR code:", path)
	return nil
}

func runQRRead(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	plate, err := qr.Decode(imagePath)
	if err != nil {
		return fmt.Errorf("qr read: %w", err)
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	vehicle, err := backend.GetVehicle(plate)
	if err != nil {
		return fmt.Errorf("decoded plate %q: %w", plate, err)
	}

	if flagJSON {
		return printJSON(vehicle)
	}
	fmt.Printf("Decoded plate: %s\n", plate)
	fmt.Printf("%s %s (%d), odometer %d km\n",
		vehicle.Brand, vehicle.Model, vehicle.Year, vehicle.LastOdometer)
	return nil
}
