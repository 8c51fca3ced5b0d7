package store

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/gearbox-labs/garagelog/internal/csvfile"
	"github.com/gearbox-labs/garagelog/pkg/types"
)

// Collection file names and fixed column orders.
const (
	vehiclesCSV = "vehicles.csv"
	servicesCSV = "services.csv"
)

var vehicleColumns = []string{
	"plate", "brand", "model", "year", "category",
	"color", "last_odometer", "notes", "registered_at",
}

var serviceColumns = []string{
	"service_id", "plate", "date", "odometer_at_service",
	"service_type", "workshop", "cost", "technician", "remarks",
}

// registeredAtLayouts are the accepted forms for the registered_at column.
// New rows are written as RFC 3339; the second form appears in files
// produced by earlier exports.
var registeredAtLayouts = []string{time.RFC3339, "2006-01-02 15:04:05"}

func parseRegisteredAt(s string) (time.Time, error) {
	var err error
	for _, layout := range registeredAtLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// loadCSV reads both collections from the data dir into SQLite. Missing
// files are initialized with their header row. Rows that fail to convert are
// skipped with a warning; they will be dropped on the next rewrite.
func (b *Backend) loadCSV() error {
	vehicleRows, err := csvfile.Read(filepath.Join(b.dataDir, vehiclesCSV), vehicleColumns)
	if err != nil {
		return err
	}
	serviceRows, err := csvfile.Read(filepath.Join(b.dataDir, servicesCSV), serviceColumns)
	if err != nil {
		return err
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	for _, row := range vehicleRows {
		v, err := rowToVehicle(row)
		if err != nil {
			b.log.Warn("skipping malformed vehicle row", zap.Strings("row", row), zap.Error(err))
			continue
		}
		if _, err := tx.Exec(`
			INSERT INTO vehicles (plate, brand, model, year, category, color, last_odometer, notes, registered_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			v.Plate, v.Brand, v.Model, v.Year, v.Category, v.Color,
			v.LastOdometer, v.Notes, v.RegisteredAt.Format(time.RFC3339)); err != nil {
			b.log.Warn("skipping conflicting vehicle row", zap.String("plate", v.Plate), zap.Error(err))
		}
	}

	for _, row := range serviceRows {
		e, err := rowToService(row)
		if err != nil {
			b.log.Warn("skipping malformed service row", zap.Strings("row", row), zap.Error(err))
			continue
		}
		if _, err := tx.Exec(`
			INSERT INTO services (service_id, plate, date, odometer_at_service, service_type, workshop, cost, technician, remarks)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ServiceID, e.Plate, e.Date, e.OdometerAtService, e.ServiceType,
			e.Workshop, e.Cost, e.Technician, e.Remarks); err != nil {
			b.log.Warn("skipping conflicting service row", zap.String("service_id", e.ServiceID), zap.Error(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}

// persistVehiclesCSV rewrites vehicles.csv from SQLite in insertion order.
func (b *Backend) persistVehiclesCSV() error {
	rows, err := b.db.Query(`
		SELECT plate, brand, model, year, category, color, last_odometer, notes, registered_at
		FROM vehicles ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("reading vehicles for csv: %w", err)
	}
	defer rows.Close()

	var records [][]string
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return err
		}
		records = append(records, vehicleToRow(v))
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return csvfile.Write(filepath.Join(b.dataDir, vehiclesCSV), vehicleColumns, records)
}

// persistServicesCSV rewrites services.csv from SQLite in insertion order.
func (b *Backend) persistServicesCSV() error {
	rows, err := b.db.Query(`
		SELECT service_id, plate, date, odometer_at_service, service_type, workshop, cost, technician, remarks
		FROM services ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("reading services for csv: %w", err)
	}
	defer rows.Close()

	var records [][]string
	for rows.Next() {
		e, err := scanService(rows)
		if err != nil {
			return err
		}
		records = append(records, serviceToRow(e))
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return csvfile.Write(filepath.Join(b.dataDir, servicesCSV), serviceColumns, records)
}

// Row conversions between typed records and CSV field slices. Field order
// must match vehicleColumns and serviceColumns.

func vehicleToRow(v *types.Vehicle) []string {
	return []string{
		v.Plate,
		v.Brand,
		v.Model,
		strconv.Itoa(v.Year),
		v.Category,
		v.Color,
		strconv.Itoa(v.LastOdometer),
		v.Notes,
		v.RegisteredAt.Format(time.RFC3339),
	}
}

func rowToVehicle(row []string) (*types.Vehicle, error) {
	year, err := strconv.Atoi(row[3])
	if err != nil {
		return nil, fmt.Errorf("parsing year: %w", err)
	}
	odometer := 0
	if row[6] != "" {
		if odometer, err = strconv.Atoi(row[6]); err != nil {
			return nil, fmt.Errorf("parsing last_odometer: %w", err)
		}
	}
	registeredAt, err := parseRegisteredAt(row[8])
	if err != nil {
		return nil, fmt.Errorf("parsing registered_at: %w", err)
	}
	return &types.Vehicle{
		Plate:        row[0],
		Brand:        row[1],
		Model:        row[2],
		Year:         year,
		Category:     row[4],
		Color:        row[5],
		LastOdometer: odometer,
		Notes:        row[7],
		RegisteredAt: registeredAt,
	}, nil
}

func serviceToRow(e *types.ServiceEvent) []string {
	return []string{
		e.ServiceID,
		e.Plate,
		e.Date,
		strconv.Itoa(e.OdometerAtService),
		e.ServiceType,
		e.Workshop,
		strconv.FormatFloat(e.Cost, 'f', -1, 64),
		e.Technician,
		e.Remarks,
	}
}

func rowToService(row []string) (*types.ServiceEvent, error) {
	odometer := 0
	var err error
	if row[3] != "" {
		if odometer, err = strconv.Atoi(row[3]); err != nil {
			return nil, fmt.Errorf("parsing odometer_at_service: %w", err)
		}
	}
	cost := 0.0
	if row[6] != "" {
		if cost, err = strconv.ParseFloat(row[6], 64); err != nil {
			return nil, fmt.Errorf("parsing cost: %w", err)
		}
	}
	return &types.ServiceEvent{
		ServiceID:         row[0],
		Plate:             row[1],
		Date:              row[2],
		OdometerAtService: odometer,
		ServiceType:       row[4],
		Workshop:          row[5],
		Cost:              cost,
		Technician:        row[7],
		Remarks:           row[8],
	}, nil
}
