// Service list command shows the service history, optionally date-filtered.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gearbox-labs/garagelog/internal/query"
	"github.com/gearbox-labs/garagelog/pkg/types"
)

var (
	svcListPlate string
	svcListFrom  string
	svcListTo    string
)

var serviceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List service events",
	Long: `List shows recorded service events. Use --plate to restrict to one
vehicle and --from/--to to restrict to a date window (both bounds
inclusive, YYYY-MM-DD).

Example:
  garagelog service list
  garagelog service list --plate B1234XYZ
  garagelog service list --from 2025-01-01 --to 2025-06-30`,
	Args: cobra.NoArgs,
	RunE: runServiceList,
}

func init() {
	serviceListCmd.Flags().StringVar(&svcListPlate, "plate", "", "filter by license plate")
	serviceListCmd.Flags().StringVar(&svcListFrom, "from", "", "start date as YYYY-MM-DD (inclusive)")
	serviceListCmd.Flags().StringVar(&svcListTo, "to", "", "end date as YYYY-MM-DD (inclusive)")
}

func runServiceList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	var services []*types.ServiceEvent
	if svcListPlate != "" {
		services, err = backend.VehicleServices(svcListPlate)
	} else {
		services, err = backend.Services()
	}
	if err != nil {
		return fmt.Errorf("list services: %w", err)
	}

	if svcListFrom != "" || svcListTo != "" {
		start, end, err := parseDateWindow(svcListFrom, svcListTo)
		if err != nil {
			return fmt.Errorf("list services: %w", err)
		}
		filtered, err := query.FilterByDate(services, start, end)
		if err != nil {
			// Filtering degrades to the unfiltered set rather than failing
			// the whole listing over one bad row.
			log.Warn("date filter skipped", zap.Error(err))
		}
		services = filtered
	}

	if flagJSON {
		return printJSON(services)
	}
	printServiceTable(services)
	return nil
}

// parseDateWindow parses the --from/--to values, defaulting an unset start to
// the epoch and an unset end to the far future.
func parseDateWindow(from, to string) (time.Time, time.Time, error) {
	start := time.Unix(0, 0).UTC()
	end := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

	var err error
	if from != "" {
		start, err = time.Parse(types.DateLayout, from)
		if err != nil {
			return start, end, fmt.Errorf("%w: --from %q", types.ErrInvalidDate, from)
		}
	}
	if to != "" {
		end, err = time.Parse(types.DateLayout, to)
		if err != nil {
			return start, end, fmt.Errorf("%w: --to %q", types.ErrInvalidDate, to)
		}
	}
	return start, end, nil
}
