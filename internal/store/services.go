package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/gearbox-labs/garagelog/pkg/types"
)

func scanService(r rowScanner) (*types.ServiceEvent, error) {
	var e types.ServiceEvent
	err := r.Scan(&e.ServiceID, &e.Plate, &e.Date, &e.OdometerAtService,
		&e.ServiceType, &e.Workshop, &e.Cost, &e.Technician, &e.Remarks)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning service: %w", err)
	}
	return &e, nil
}

// AddService validates e, verifies the referenced vehicle exists, assigns the
// next service ID, inserts the row and rewrites services.csv. The assigned ID
// is written back into e and returned. The owning vehicle's odometer is not
// touched; see RecordService.
func (b *Backend) AddService(e *types.ServiceEvent) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.addServiceLocked(e)
}

func (b *Backend) addServiceLocked(e *types.ServiceEvent) (string, error) {
	if err := b.ensureAttached(); err != nil {
		return "", err
	}
	if err := e.Validate(); err != nil {
		return "", err
	}

	var exists int
	err := b.db.QueryRow("SELECT 1 FROM vehicles WHERE plate = ?", e.Plate).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: vehicle %s", types.ErrNotFound, e.Plate)
	}
	if err != nil {
		return "", fmt.Errorf("checking vehicle: %w", err)
	}

	e.ServiceID = types.FormatServiceID(b.lastServiceSeq + 1)

	_, err = b.db.Exec(`
		INSERT INTO services (service_id, plate, date, odometer_at_service, service_type, workshop, cost, technician, remarks)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ServiceID, e.Plate, e.Date, e.OdometerAtService, e.ServiceType,
		e.Workshop, e.Cost, e.Technician, e.Remarks)
	if err != nil {
		return "", fmt.Errorf("inserting service: %w", err)
	}

	if err := b.persistServicesCSV(); err != nil {
		return "", err
	}

	b.lastServiceSeq++
	return e.ServiceID, nil
}

// RecordService adds the service event and then sets the owning vehicle's
// LastOdometer to the event's odometer reading. The two writes are sequential
// and independently durable, not atomic: a crash between them leaves the
// event recorded with the odometer stale.
func (b *Backend) RecordService(e *types.ServiceEvent) (string, error) {
	id, err := b.AddService(e)
	if err != nil {
		return "", err
	}

	odometer := e.OdometerAtService
	if err := b.UpdateVehicle(e.Plate, types.VehiclePatch{LastOdometer: &odometer}); err != nil {
		return id, fmt.Errorf("service %s recorded, odometer update failed: %w", id, err)
	}
	return id, nil
}

// Services returns all service events in insertion (ID) order.
func (b *Backend) Services() ([]*types.ServiceEvent, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.ensureAttached(); err != nil {
		return nil, err
	}
	return b.queryServices(`
		SELECT service_id, plate, date, odometer_at_service, service_type, workshop, cost, technician, remarks
		FROM services ORDER BY rowid`)
}

// VehicleServices returns the events for plate sorted most recent date
// first. An unknown plate yields an empty slice.
func (b *Backend) VehicleServices(plate string) ([]*types.ServiceEvent, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.ensureAttached(); err != nil {
		return nil, err
	}
	return b.queryServices(`
		SELECT service_id, plate, date, odometer_at_service, service_type, workshop, cost, technician, remarks
		FROM services WHERE plate = ? ORDER BY date DESC, rowid DESC`, plate)
}

func (b *Backend) queryServices(query string, args ...any) ([]*types.ServiceEvent, error) {
	rows, err := b.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying services: %w", err)
	}
	defer rows.Close()

	results := []*types.ServiceEvent{}
	for rows.Next() {
		e, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, e)
	}
	return results, rows.Err()
}
