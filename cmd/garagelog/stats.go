// Stats command prints the dashboard summary.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gearbox-labs/garagelog/internal/report"
	"github.com/gearbox-labs/garagelog/pkg/types"
)

var statsCharts bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show fleet summary statistics",
	Long: `Stats prints vehicle and service counts, the total maintenance spend
and the number of services recorded this month. With --charts it also
prints the per-vehicle service counts and the cost split by service type.

Example:
  garagelog stats
  garagelog stats --charts
  garagelog stats --json`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsCharts, "charts", false, "include per-vehicle and per-type breakdowns")
}

func runStats(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	stats, err := backend.TotalStats(time.Now())
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	var counts []report.VehicleServiceCount
	var costs []report.ServiceTypeCost
	if statsCharts {
		services, err := backend.Services()
		if err != nil {
			return fmt.Errorf("stats: %w", err)
		}
		counts, err = report.ServiceCountsByVehicle(services)
		if err != nil && !errors.Is(err, types.ErrNoData) {
			return fmt.Errorf("stats: %w", err)
		}
		costs, err = report.CostByServiceType(services)
		if err != nil && !errors.Is(err, types.ErrNoData) {
			return fmt.Errorf("stats: %w", err)
		}
	}

	if flagJSON {
		return printJSON(struct {
			types.Stats
			ServicesByVehicle []report.VehicleServiceCount `json:"services_by_vehicle,omitempty"`
			CostByType        []report.ServiceTypeCost     `json:"cost_by_type,omitempty"`
		}{stats, counts, costs})
	}

	fmt.Printf("Vehicles:            %d\n", stats.VehicleCount)
	fmt.Printf("Service records:     %d\n", stats.ServiceCount)
	fmt.Printf("Total service cost:  %.2f\n", stats.TotalCost)
	fmt.Printf("Services this month: %d\n", stats.ServicesThisMonth)

	if statsCharts {
		if len(counts) == 0 {
			fmt.Println("\nNo service data yet.")
			return nil
		}
		fmt.Println("\nServices per vehicle:")
		for _, c := range counts {
			fmt.Printf("  %-12s %d\n", c.Plate, c.Count)
		}
		fmt.Println("\nCost by service type:")
		for _, c := range costs {
			fmt.Printf("  %-20s %.2f\n", c.ServiceType, c.TotalCost)
		}
	}
	return nil
}
