package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gearbox-labs/garagelog/internal/qr"
	"github.com/gearbox-labs/garagelog/pkg/types"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(r rowScanner) (*types.Vehicle, error) {
	var v types.Vehicle
	var registeredAt string
	err := r.Scan(&v.Plate, &v.Brand, &v.Model, &v.Year, &v.Category,
		&v.Color, &v.LastOdometer, &v.Notes, &registeredAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning vehicle: %w", err)
	}
	v.RegisteredAt, err = parseRegisteredAt(registeredAt)
	if err != nil {
		return nil, fmt.Errorf("parsing registered_at: %w", err)
	}
	return &v, nil
}

// AddVehicle validates v, rejects duplicate plates before any mutation,
// stamps RegisteredAt when unset, inserts the row and rewrites vehicles.csv.
// QR image generation is left to the caller.
func (b *Backend) AddVehicle(v *types.Vehicle) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.ensureAttached(); err != nil {
		return err
	}
	if err := v.Validate(); err != nil {
		return err
	}

	var exists int
	err := b.db.QueryRow("SELECT 1 FROM vehicles WHERE plate = ?", v.Plate).Scan(&exists)
	if err == nil {
		return fmt.Errorf("%w: %s", types.ErrDuplicatePlate, v.Plate)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking plate: %w", err)
	}

	if v.RegisteredAt.IsZero() {
		v.RegisteredAt = time.Now()
	}

	_, err = b.db.Exec(`
		INSERT INTO vehicles (plate, brand, model, year, category, color, last_odometer, notes, registered_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.Plate, v.Brand, v.Model, v.Year, v.Category, v.Color,
		v.LastOdometer, v.Notes, v.RegisteredAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting vehicle: %w", err)
	}

	return b.persistVehiclesCSV()
}

// GetVehicle returns the vehicle for plate, or ErrNotFound.
func (b *Backend) GetVehicle(plate string) (*types.Vehicle, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.ensureAttached(); err != nil {
		return nil, err
	}
	return scanVehicle(b.db.QueryRow(`
		SELECT plate, brand, model, year, category, color, last_odometer, notes, registered_at
		FROM vehicles WHERE plate = ?`, plate))
}

// Vehicles returns all vehicles in registration (insertion) order.
func (b *Backend) Vehicles() ([]*types.Vehicle, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.ensureAttached(); err != nil {
		return nil, err
	}
	return b.queryVehicles(`
		SELECT plate, brand, model, year, category, color, last_odometer, notes, registered_at
		FROM vehicles ORDER BY rowid`)
}

// SearchVehicles returns vehicles whose plate, brand or model contains term,
// case-insensitively. An empty or blank term returns the full collection.
func (b *Backend) SearchVehicles(term string) ([]*types.Vehicle, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return b.Vehicles()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.ensureAttached(); err != nil {
		return nil, err
	}
	needle := strings.ToLower(term)
	return b.queryVehicles(`
		SELECT plate, brand, model, year, category, color, last_odometer, notes, registered_at
		FROM vehicles
		WHERE instr(lower(plate), ?1) > 0
		   OR instr(lower(brand), ?1) > 0
		   OR instr(lower(model), ?1) > 0
		ORDER BY rowid`, needle)
}

func (b *Backend) queryVehicles(query string, args ...any) ([]*types.Vehicle, error) {
	rows, err := b.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying vehicles: %w", err)
	}
	defer rows.Close()

	results := []*types.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return results, rows.Err()
}

// UpdateVehicle applies patch to the vehicle matching plate and rewrites
// vehicles.csv. The patched record is re-validated so an update cannot break
// the domain rules. Plate and RegisteredAt are immutable.
func (b *Backend) UpdateVehicle(plate string, patch types.VehiclePatch) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.ensureAttached(); err != nil {
		return err
	}

	v, err := scanVehicle(b.db.QueryRow(`
		SELECT plate, brand, model, year, category, color, last_odometer, notes, registered_at
		FROM vehicles WHERE plate = ?`, plate))
	if err != nil {
		return err
	}

	patch.Apply(v)
	if err := v.Validate(); err != nil {
		return err
	}

	_, err = b.db.Exec(`
		UPDATE vehicles
		SET brand = ?, model = ?, year = ?, category = ?, color = ?, last_odometer = ?, notes = ?
		WHERE plate = ?`,
		v.Brand, v.Model, v.Year, v.Category, v.Color, v.LastOdometer, v.Notes, plate)
	if err != nil {
		return fmt.Errorf("updating vehicle: %w", err)
	}

	return b.persistVehiclesCSV()
}

// DeleteVehicle removes the vehicle row, cascades to every service event
// referencing the plate, and removes the QR image. The image removal is
// best-effort: a failure there is logged and does not abort the deletes.
func (b *Backend) DeleteVehicle(plate string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.ensureAttached(); err != nil {
		return err
	}

	var exists int
	err := b.db.QueryRow("SELECT 1 FROM vehicles WHERE plate = ?", plate).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: vehicle %s", types.ErrNotFound, plate)
	}
	if err != nil {
		return fmt.Errorf("checking vehicle: %w", err)
	}

	if _, err := b.db.Exec("DELETE FROM services WHERE plate = ?", plate); err != nil {
		return fmt.Errorf("deleting services: %w", err)
	}
	if _, err := b.db.Exec("DELETE FROM vehicles WHERE plate = ?", plate); err != nil {
		return fmt.Errorf("deleting vehicle: %w", err)
	}

	if err := b.persistVehiclesCSV(); err != nil {
		return err
	}
	if err := b.persistServicesCSV(); err != nil {
		return err
	}

	imagePath := qr.ImagePath(qr.Dir(b.dataDir), plate)
	if err := os.Remove(imagePath); err != nil && !os.IsNotExist(err) {
		b.log.Warn("could not remove qr image",
			zap.String("path", imagePath), zap.Error(err))
	}
	return nil
}
