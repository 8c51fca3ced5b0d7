package report

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gearbox-labs/garagelog/pkg/types"
)

func TestExportSnapshot(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 6, 28, 14, 30, 0, 0, time.UTC)

	vehicles := []*types.Vehicle{
		{
			Plate:        "B1234XYZ",
			Brand:        "Honda",
			Model:        "Vario 125",
			Year:         2020,
			Category:     types.CategoryMotorcycle,
			Color:        "black",
			RegisteredAt: now.Add(-24 * time.Hour),
		},
	}
	services := []*types.ServiceEvent{
		event("SRV001", "B1234XYZ", "oil change", 50000),
		event("SRV002", "B1234XYZ", "brake service", 150000),
	}

	path, err := ExportSnapshot(dir, vehicles, services, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "vehicle_report_20250628_143000.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{SheetVehicles, SheetServices, SheetSummary}, f.GetSheetList())

	plate, err := f.GetCellValue(SheetVehicles, "A2")
	require.NoError(t, err)
	assert.Equal(t, "B1234XYZ", plate)

	serviceID, err := f.GetCellValue(SheetServices, "A3")
	require.NoError(t, err)
	assert.Equal(t, "SRV002", serviceID)

	totalVehicles, err := f.GetCellValue(SheetSummary, "B1")
	require.NoError(t, err)
	assert.Equal(t, "1", totalVehicles)

	totalCost, err := f.GetCellValue(SheetSummary, "B3")
	require.NoError(t, err)
	assert.Equal(t, "200000.00", totalCost)

	exportID, err := f.GetCellValue(SheetSummary, "B5")
	require.NoError(t, err)
	assert.NotEmpty(t, exportID)
}

func TestExportSnapshotEmptyCollections(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	path, err := ExportSnapshot(dir, nil, nil, now)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	totalServices, err := f.GetCellValue(SheetSummary, "B2")
	require.NoError(t, err)
	assert.Equal(t, "0", totalServices)
}

func TestExportSnapshotCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports", "nested")
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	path, err := ExportSnapshot(dir, nil, nil, now)
	require.NoError(t, err)
	assert.FileExists(t, path)
}
