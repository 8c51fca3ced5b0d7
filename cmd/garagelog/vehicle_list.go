// Vehicle list command shows the registry, optionally filtered by a search term.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listSearch string

var vehicleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered vehicles",
	Long: `List shows all registered vehicles in registration order.

Use --search to filter by a case-insensitive substring match against the
plate, brand or model.

Example:
  garagelog vehicle list
  garagelog vehicle list --search honda
  garagelog vehicle list --json`,
	Args: cobra.NoArgs,
	RunE: runVehicleList,
}

func init() {
	vehicleListCmd.Flags().StringVar(&listSearch, "search", "", "filter by plate, brand or model substring")
}

func runVehicleList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	vehicles, err := backend.SearchVehicles(listSearch)
	if err != nil {
		return fmt.Errorf("list vehicles: %w", err)
	}

	if flagJSON {
		return printJSON(vehicles)
	}
	printVehicleTable(vehicles)
	return nil
}
