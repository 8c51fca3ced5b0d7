// Package query holds the pure filtering helpers that operate on loaded
// service-event rows rather than on the store itself.
package query

import (
	"fmt"
	"time"

	"github.com/gearbox-labs/garagelog/pkg/types"
)

// FilterByDate returns the events whose date falls within [start, end], both
// bounds inclusive. Bounds are compared at day granularity; time-of-day on
// start and end is ignored. If any row carries an unparsable date the whole
// operation fails: the input is returned unfiltered along with the error, so
// a caller that logs and keeps going still has usable data.
func FilterByDate(events []*types.ServiceEvent, start, end time.Time) ([]*types.ServiceEvent, error) {
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	filtered := []*types.ServiceEvent{}
	for _, e := range events {
		d, err := e.When()
		if err != nil {
			return events, fmt.Errorf("service %s: %w", e.ServiceID, err)
		}
		if d.Before(startDay) || d.After(endDay) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
