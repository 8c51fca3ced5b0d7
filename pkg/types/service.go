package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date form used in service records and the
// services CSV column.
const DateLayout = "2006-01-02"

// ServiceIDPrefix and the zero-padding width of the numeric suffix.
// IDs read SRV001, SRV002, ... and keep growing past SRV999.
const (
	ServiceIDPrefix = "SRV"
	serviceIDDigits = 3
)

// ServiceTypes is the suggested vocabulary for ServiceEvent.ServiceType.
// Free text is also accepted.
var ServiceTypes = []string{
	"oil change",
	"scheduled service",
	"tire change",
	"tune-up",
	"battery replacement",
	"engine repair",
	"wash",
	"other",
}

// ServiceEvent is one maintenance occurrence tied to a vehicle. Events are
// append-only: they are never updated in place and are removed only when the
// owning vehicle is deleted.
type ServiceEvent struct {
	ServiceID         string  `json:"service_id"`
	Plate             string  `json:"plate"`
	Date              string  `json:"date"` // DateLayout
	OdometerAtService int     `json:"odometer_at_service"`
	ServiceType       string  `json:"service_type"`
	Workshop          string  `json:"workshop,omitempty"`
	Cost              float64 `json:"cost"`
	Technician        string  `json:"technician,omitempty"`
	Remarks           string  `json:"remarks,omitempty"`
}

// Validate checks the event against the domain rules: plate, date, service
// type and cost are required, the date must parse as DateLayout, and cost and
// odometer must not be negative. A zero odometer is valid; absence defaults
// to zero upstream.
func (e *ServiceEvent) Validate() error {
	if strings.TrimSpace(e.Plate) == "" {
		return fmt.Errorf("%w: plate", ErrMissingField)
	}
	if strings.TrimSpace(e.Date) == "" {
		return fmt.Errorf("%w: date", ErrMissingField)
	}
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, e.Date)
	}
	if strings.TrimSpace(e.ServiceType) == "" {
		return fmt.Errorf("%w: service_type", ErrMissingField)
	}
	if e.Cost < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeCost, e.Cost)
	}
	if e.OdometerAtService < 0 {
		return fmt.Errorf("%w: odometer_at_service", ErrNegativeOdometer)
	}
	return nil
}

// When returns the event date as a time.Time.
func (e *ServiceEvent) When() (time.Time, error) {
	t, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, e.Date)
	}
	return t, nil
}

// FormatServiceID renders the numeric suffix n as a service ID, zero-padded
// to three digits.
func FormatServiceID(n int) string {
	return fmt.Sprintf("%s%0*d", ServiceIDPrefix, serviceIDDigits, n)
}

// ParseServiceID extracts the numeric suffix from a service ID.
// Returns an error if the prefix or suffix is malformed.
func ParseServiceID(id string) (int, error) {
	if !strings.HasPrefix(id, ServiceIDPrefix) {
		return 0, fmt.Errorf("service id %q: missing %s prefix", id, ServiceIDPrefix)
	}
	n, err := strconv.Atoi(id[len(ServiceIDPrefix):])
	if err != nil {
		return 0, fmt.Errorf("service id %q: %w", id, err)
	}
	return n, nil
}
