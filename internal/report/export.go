package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/gearbox-labs/garagelog/pkg/types"
)

// Sheet names of the exported workbook.
const (
	SheetVehicles = "Vehicles"
	SheetServices = "Service Log"
	SheetSummary  = "Summary"
)

var vehicleHeader = []any{
	"plate", "brand", "model", "year", "category",
	"color", "last_odometer", "notes", "registered_at",
}

var serviceHeader = []any{
	"service_id", "plate", "date", "odometer_at_service",
	"service_type", "workshop", "cost", "technician", "remarks",
}

// ExportSnapshot writes a three-sheet XLSX workbook into dir: the full
// vehicle collection, the full service collection, and a summary block with
// counts, the formatted total cost, the export timestamp and a unique export
// ID. The file is named after the export timestamp; the full path of the
// written artifact is returned.
func ExportSnapshot(dir string, vehicles []*types.Vehicle, services []*types.ServiceEvent, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", SheetVehicles)
	if _, err := f.NewSheet(SheetServices); err != nil {
		return "", fmt.Errorf("creating services sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return "", fmt.Errorf("creating summary sheet: %w", err)
	}

	if err := setRow(f, SheetVehicles, 1, vehicleHeader); err != nil {
		return "", err
	}
	for i, v := range vehicles {
		row := []any{
			v.Plate, v.Brand, v.Model, v.Year, v.Category,
			v.Color, v.LastOdometer, v.Notes, v.RegisteredAt.Format(time.RFC3339),
		}
		if err := setRow(f, SheetVehicles, i+2, row); err != nil {
			return "", err
		}
	}

	if err := setRow(f, SheetServices, 1, serviceHeader); err != nil {
		return "", err
	}
	var totalCost float64
	for i, e := range services {
		totalCost += e.Cost
		row := []any{
			e.ServiceID, e.Plate, e.Date, e.OdometerAtService,
			e.ServiceType, e.Workshop, e.Cost, e.Technician, e.Remarks,
		}
		if err := setRow(f, SheetServices, i+2, row); err != nil {
			return "", err
		}
	}

	summary := [][]any{
		{"Total Vehicles", len(vehicles)},
		{"Total Services", len(services)},
		{"Total Service Cost", fmt.Sprintf("%.2f", totalCost)},
		{"Exported At", now.Format(time.RFC3339)},
		{"Export ID", newExportID()},
	}
	for i, row := range summary {
		if err := setRow(f, SheetSummary, i+1, row); err != nil {
			return "", err
		}
	}

	path := filepath.Join(dir, fmt.Sprintf("vehicle_report_%s.xlsx", now.Format("20060102_150405")))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving workbook: %w", err)
	}
	return path, nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("resolving cell: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, row, err)
	}
	return nil
}

// newExportID returns a UUID v7 identifying one export invocation.
func newExportID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
