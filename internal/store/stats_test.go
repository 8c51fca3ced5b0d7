package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalStatsEmptyStore(t *testing.T) {
	b, _ := newTestBackend(t)

	stats, err := b.TotalStats(time.Now())
	require.NoError(t, err)
	assert.Zero(t, stats.VehicleCount)
	assert.Zero(t, stats.ServiceCount)
	assert.Zero(t, stats.TotalCost)
	assert.Zero(t, stats.ServicesThisMonth)
}

func TestTotalStatsScenario(t *testing.T) {
	b, _ := newTestBackend(t)

	require.NoError(t, b.AddVehicle(testVehicle("B1234XYZ")))
	require.NoError(t, b.AddVehicle(testVehicle("B5678ABC")))

	costs := []float64{50000, 75000, 25000}
	dates := []string{"2025-06-15", "2025-06-20", "2025-05-01"}
	for i, c := range costs {
		_, err := b.AddService(testService("B1234XYZ", dates[i], c))
		require.NoError(t, err)
	}

	now, err := time.Parse("2006-01-02", "2025-06-28")
	require.NoError(t, err)

	stats, err := b.TotalStats(now)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.VehicleCount)
	assert.Equal(t, 3, stats.ServiceCount)
	assert.Equal(t, 150000.0, stats.TotalCost)
	assert.Equal(t, 2, stats.ServicesThisMonth, "only the June events count for a June reference date")
}

func TestTotalStatsMonthBoundary(t *testing.T) {
	b, _ := newTestBackend(t)
	require.NoError(t, b.AddVehicle(testVehicle("B1234XYZ")))

	// Same month in a different year must not count.
	for _, d := range []string{"2025-06-01", "2024-06-01"} {
		_, err := b.AddService(testService("B1234XYZ", d, 1000))
		require.NoError(t, err)
	}

	now, _ := time.Parse("2006-01-02", "2025-06-15")
	stats, err := b.TotalStats(now)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ServicesThisMonth)
}
