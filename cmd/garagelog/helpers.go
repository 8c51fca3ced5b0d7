// Shared helpers for garagelog CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/gearbox-labs/garagelog/internal/store"
	"github.com/gearbox-labs/garagelog/pkg/types"
)

// attachBackend resolves the data directory, creates a backend, and attaches
// it. The caller must defer backend.Detach().
func attachBackend() (*store.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := store.NewBackend(log)
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// printVehicleTable prints vehicles in a human-readable table format.
func printVehicleTable(vehicles []*types.Vehicle) {
	if len(vehicles) == 0 {
		fmt.Println("No vehicles found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PLATE\tBRAND\tMODEL\tYEAR\tCATEGORY\tODOMETER")
	fmt.Fprintln(w, "-----\t-----\t-----\t----\t--------\t--------")
	for _, v := range vehicles {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%d\n",
			v.Plate, v.Brand, truncate(v.Model, 30), v.Year, v.Category, v.LastOdometer)
	}
	w.Flush()

	fmt.Printf("Total: %d vehicle(s)\n", len(vehicles))
}

// printServiceTable prints service events in a human-readable table format.
func printServiceTable(services []*types.ServiceEvent) {
	if len(services) == 0 {
		fmt.Println("No service records found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPLATE\tDATE\tTYPE\tODOMETER\tCOST\tWORKSHOP")
	fmt.Fprintln(w, "--\t-----\t----\t----\t--------\t----\t--------")
	for _, e := range services {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.2f\t%s\n",
			e.ServiceID, e.Plate, e.Date, e.ServiceType,
			e.OdometerAtService, e.Cost, truncate(e.Workshop, 25))
	}
	w.Flush()

	fmt.Printf("Total: %d service record(s)\n", len(services))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// joinedServiceTypes is the vocabulary shown in flag help text.
var joinedServiceTypes = strings.Join(types.ServiceTypes, ", ")
