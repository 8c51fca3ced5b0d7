// Service add command records a maintenance event.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gearbox-labs/garagelog/pkg/types"
)

var (
	svcPlate      string
	svcDate       string
	svcOdometer   int
	svcType       string
	svcWorkshop   string
	svcCost       float64
	svcTechnician string
	svcRemarks    string
)

var serviceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a service event",
	Long: `Add records a maintenance event against a registered vehicle and
brings the vehicle's odometer up to the reading taken at service time.

Example:
  garagelog service add --plate B1234XYZ --type "oil change" --odometer 15000 --cost 50000
  garagelog service add --plate B1234XYZ --type "brake service" --date 2025-06-15 --odometer 15200 --cost 150000 --workshop "AHASS Daan Mogot"`,
	Args: cobra.NoArgs,
	RunE: runServiceAdd,
}

func init() {
	serviceAddCmd.Flags().StringVar(&svcPlate, "plate", "", "license plate of the serviced vehicle (required)")
	serviceAddCmd.Flags().StringVar(&svcDate, "date", "", "service date as YYYY-MM-DD (default: today)")
	serviceAddCmd.Flags().IntVar(&svcOdometer, "odometer", 0, "odometer reading at service time in km")
	serviceAddCmd.Flags().StringVar(&svcType, "type", "", "service type: "+joinedServiceTypes+" (required)")
	serviceAddCmd.Flags().StringVar(&svcWorkshop, "workshop", "", "workshop name")
	serviceAddCmd.Flags().Float64Var(&svcCost, "cost", 0, "service cost")
	serviceAddCmd.Flags().StringVar(&svcTechnician, "technician", "", "technician name")
	serviceAddCmd.Flags().StringVar(&svcRemarks, "remarks", "", "free-form remarks")
	_ = serviceAddCmd.MarkFlagRequired("plate")
	_ = serviceAddCmd.MarkFlagRequired("type")
}

func runServiceAdd(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	date := svcDate
	if date == "" {
		date = time.Now().Format(types.DateLayout)
	}

	e := &types.ServiceEvent{
		Plate:             svcPlate,
		Date:              date,
		OdometerAtService: svcOdometer,
		ServiceType:       svcType,
		Workshop:          svcWorkshop,
		Cost:              svcCost,
		Technician:        svcTechnician,
		Remarks:           svcRemarks,
	}

	id, err := backend.RecordService(e)
	if err != nil {
		return fmt.Errorf("record service: %w", err)
	}

	if flagJSON {
		return printJSON(e)
	}
	fmt.Printf("Recorded service: %s\n", id)
	return nil
}
