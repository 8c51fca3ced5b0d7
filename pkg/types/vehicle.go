package types

import (
	"fmt"
	"strings"
	"time"
)

// Vehicle categories.
const (
	CategoryMotorcycle = "motorcycle"
	CategoryCar        = "car"
)

// validCategories is the set of recognized category values.
var validCategories = map[string]bool{
	CategoryMotorcycle: true,
	CategoryCar:        true,
}

// IsValidCategory reports whether category is a recognized value.
func IsValidCategory(category string) bool {
	return validCategories[category]
}

// Model-year bounds accepted by validation.
const (
	MinYear = 1980
	MaxYear = 2025
)

// MinPlateLen is the shortest plate accepted by validation.
const MinPlateLen = 3

// Vehicle is one registered vehicle. Plate is the primary key and is
// immutable after registration, as is RegisteredAt.
type Vehicle struct {
	Plate        string    `json:"plate"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Category     string    `json:"category,omitempty"`
	Color        string    `json:"color,omitempty"`
	LastOdometer int       `json:"last_odometer"`
	Notes        string    `json:"notes,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Validate checks the vehicle against the domain rules: plate, brand, model
// and year are required, the year must fall within [MinYear, MaxYear], the
// plate must be at least MinPlateLen characters, and a category, when set,
// must be recognized. Year zero counts as missing.
func (v *Vehicle) Validate() error {
	if strings.TrimSpace(v.Plate) == "" {
		return fmt.Errorf("%w: plate", ErrMissingField)
	}
	if strings.TrimSpace(v.Brand) == "" {
		return fmt.Errorf("%w: brand", ErrMissingField)
	}
	if strings.TrimSpace(v.Model) == "" {
		return fmt.Errorf("%w: model", ErrMissingField)
	}
	if v.Year == 0 {
		return fmt.Errorf("%w: year", ErrMissingField)
	}
	if v.Year < MinYear || v.Year > MaxYear {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrYearOutOfRange, v.Year, MinYear, MaxYear)
	}
	if len(strings.TrimSpace(v.Plate)) < MinPlateLen {
		return fmt.Errorf("%w: %q", ErrPlateTooShort, v.Plate)
	}
	if v.Category != "" && !IsValidCategory(v.Category) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, v.Category)
	}
	if v.LastOdometer < 0 {
		return fmt.Errorf("%w: last_odometer", ErrNegativeOdometer)
	}
	return nil
}

// VehiclePatch carries a partial update for a vehicle. Nil fields are left
// untouched. Plate and RegisteredAt are not patchable.
type VehiclePatch struct {
	Brand        *string
	Model        *string
	Year         *int
	Category     *string
	Color        *string
	LastOdometer *int
	Notes        *string
}

// IsEmpty reports whether the patch changes nothing.
func (p VehiclePatch) IsEmpty() bool {
	return p.Brand == nil && p.Model == nil && p.Year == nil &&
		p.Category == nil && p.Color == nil && p.LastOdometer == nil && p.Notes == nil
}

// Apply copies the set fields of the patch onto v.
func (p VehiclePatch) Apply(v *Vehicle) {
	if p.Brand != nil {
		v.Brand = *p.Brand
	}
	if p.Model != nil {
		v.Model = *p.Model
	}
	if p.Year != nil {
		v.Year = *p.Year
	}
	if p.Category != nil {
		v.Category = *p.Category
	}
	if p.Color != nil {
		v.Color = *p.Color
	}
	if p.LastOdometer != nil {
		v.LastOdometer = *p.LastOdometer
	}
	if p.Notes != nil {
		v.Notes = *p.Notes
	}
}
