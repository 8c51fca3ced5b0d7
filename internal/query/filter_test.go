package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearbox-labs/garagelog/pkg/types"
)

func event(id, date string) *types.ServiceEvent {
	return &types.ServiceEvent{
		ServiceID:   id,
		Plate:       "B1234XYZ",
		Date:        date,
		ServiceType: "oil change",
		Cost:        50000,
	}
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(types.DateLayout, s)
	require.NoError(t, err)
	return d
}

func ids(events []*types.ServiceEvent) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ServiceID
	}
	return out
}

func TestFilterByDateInclusiveBounds(t *testing.T) {
	events := []*types.ServiceEvent{
		event("SRV001", "2025-01-01"),
		event("SRV002", "2025-02-15"),
		event("SRV003", "2025-03-31"),
		event("SRV004", "2025-04-01"),
	}

	got, err := FilterByDate(events, day(t, "2025-01-01"), day(t, "2025-03-31"))
	require.NoError(t, err)
	assert.Equal(t, []string{"SRV001", "SRV002", "SRV003"}, ids(got),
		"both bounds are inclusive")
}

func TestFilterByDateIdempotent(t *testing.T) {
	events := []*types.ServiceEvent{
		event("SRV001", "2025-01-01"),
		event("SRV002", "2025-06-15"),
	}
	start, end := day(t, "2025-01-01"), day(t, "2025-05-31")

	once, err := FilterByDate(events, start, end)
	require.NoError(t, err)
	twice, err := FilterByDate(once, start, end)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestFilterByDateFullSpan(t *testing.T) {
	events := []*types.ServiceEvent{
		event("SRV001", "2024-12-01"),
		event("SRV002", "2025-06-15"),
		event("SRV003", "2025-09-30"),
	}

	got, err := FilterByDate(events, day(t, "2024-12-01"), day(t, "2025-09-30"))
	require.NoError(t, err)
	assert.Equal(t, ids(events), ids(got), "bounds spanning all dates return the full set")
}

func TestFilterByDateEmptyInput(t *testing.T) {
	got, err := FilterByDate(nil, day(t, "2025-01-01"), day(t, "2025-12-31"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterByDateUnparsableRow(t *testing.T) {
	events := []*types.ServiceEvent{
		event("SRV001", "2025-01-01"),
		event("SRV002", "01/02/2025"),
	}

	got, err := FilterByDate(events, day(t, "2025-01-01"), day(t, "2025-12-31"))
	assert.ErrorIs(t, err, types.ErrInvalidDate)
	assert.Equal(t, events, got, "input comes back unfiltered on failure")
}

func TestFilterByDateIgnoresTimeOfDay(t *testing.T) {
	events := []*types.ServiceEvent{event("SRV001", "2025-06-15")}

	start := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	end := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	got, err := FilterByDate(events, start, end)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
