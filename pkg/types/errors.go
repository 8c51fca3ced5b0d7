package types

import "errors"

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Record errors. ErrNotFound covers both vehicles and service events; callers
// distinguish by the operation they invoked.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicatePlate = errors.New("plate is already registered")
	ErrNoData         = errors.New("no data")
)

// Validation errors. Field-level failures wrap ErrMissingField with the field
// name so the message surface can report which field was blank.
var (
	ErrMissingField     = errors.New("required field is missing")
	ErrPlateTooShort    = errors.New("plate must be at least 3 characters")
	ErrYearOutOfRange   = errors.New("year is out of range")
	ErrInvalidCategory  = errors.New("unknown vehicle category")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD form")
	ErrNegativeCost     = errors.New("cost must not be negative")
	ErrNegativeOdometer = errors.New("odometer must not be negative")
)
