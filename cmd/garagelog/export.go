// Export command writes the XLSX snapshot.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gearbox-labs/garagelog/internal/report"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export vehicles and services to a spreadsheet",
	Long: `Export writes a timestamped XLSX workbook with three sheets: the
vehicle registry, the full service log and a summary block.

Example:
  garagelog export
  garagelog export --out ./reports`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "out", ".", "directory to write the workbook into")
}

func runExport(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	vehicles, err := backend.Vehicles()
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	services, err := backend.Services()
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	path, err := report.ExportSnapshot(exportDir, vehicles, services, time.Now())
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"path": path})
	}
	fmt.Println("Exported:", path)
	return nil
}
