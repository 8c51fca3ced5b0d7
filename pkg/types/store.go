package types

import "time"

// Stats is the dashboard summary produced by Store.TotalStats.
// ServicesThisMonth counts events dated in the same year-month as the
// reference instant passed to TotalStats.
type Stats struct {
	VehicleCount      int     `json:"vehicle_count"`
	ServiceCount      int     `json:"service_count"`
	TotalCost         float64 `json:"total_cost"`
	ServicesThisMonth int     `json:"services_this_month"`
}

// Store is the record store over the vehicle and service-event collections.
// Implementations attach to a data directory, serve reads and mutations, and
// detach when done. Single-process use only: each call runs a full
// read-modify-write cycle with no cross-call transaction boundary.
type Store interface {
	// Attach connects the store to the backend described by config and
	// creates the data directory if needed. Returns ErrAlreadyAttached if
	// called while attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent. After Detach,
	// operations return ErrStoreDetached.
	Detach() error

	// AddVehicle validates v, rejects a duplicate plate with
	// ErrDuplicatePlate, stamps RegisteredAt if unset, and persists.
	// QR generation is the caller's concern, invoked after success.
	AddVehicle(v *Vehicle) error

	// GetVehicle returns the vehicle for plate, or ErrNotFound.
	GetVehicle(plate string) (*Vehicle, error)

	// Vehicles returns all vehicles in registration order.
	Vehicles() ([]*Vehicle, error)

	// UpdateVehicle applies patch to the vehicle matching plate.
	// Plate and RegisteredAt are immutable. Returns ErrNotFound if absent.
	UpdateVehicle(plate string, patch VehiclePatch) error

	// DeleteVehicle removes the vehicle, every service event referencing
	// it, and its QR image. The image removal is best-effort: its failure
	// does not abort the row deletions.
	DeleteVehicle(plate string) error

	// AddService validates e, verifies the referenced plate exists,
	// assigns the next service ID, and persists. It does not touch the
	// owning vehicle's odometer; see RecordService.
	AddService(e *ServiceEvent) (string, error)

	// RecordService performs AddService and then updates the owning
	// vehicle's LastOdometer to e.OdometerAtService. The two writes are
	// sequential, not atomic: a crash in between leaves the service
	// recorded and the odometer stale.
	RecordService(e *ServiceEvent) (string, error)

	// Services returns all service events in service-ID order.
	Services() ([]*ServiceEvent, error)

	// VehicleServices returns the events for plate, most recent date
	// first. An unknown plate yields an empty slice, not an error.
	VehicleServices(plate string) ([]*ServiceEvent, error)

	// SearchVehicles returns vehicles whose plate, brand or model
	// contains term, case-insensitively. An empty term returns all.
	SearchVehicles(term string) ([]*Vehicle, error)

	// TotalStats summarizes both collections relative to now.
	TotalStats(now time.Time) (Stats, error)
}
