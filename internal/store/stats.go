package store

import (
	"fmt"
	"time"

	"github.com/gearbox-labs/garagelog/pkg/types"
)

// TotalStats summarizes both collections. ServicesThisMonth counts events
// dated in the same year-month as now; callers pass time.Now() outside tests.
func (b *Backend) TotalStats(now time.Time) (types.Stats, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var stats types.Stats
	if err := b.ensureAttached(); err != nil {
		return stats, err
	}

	if err := b.db.QueryRow("SELECT COUNT(*) FROM vehicles").Scan(&stats.VehicleCount); err != nil {
		return stats, fmt.Errorf("counting vehicles: %w", err)
	}
	if err := b.db.QueryRow(
		"SELECT COUNT(*), COALESCE(SUM(cost), 0) FROM services").
		Scan(&stats.ServiceCount, &stats.TotalCost); err != nil {
		return stats, fmt.Errorf("summing services: %w", err)
	}

	// Service dates are stored as YYYY-MM-DD, so the year-month is a prefix.
	month := now.Format("2006-01")
	if err := b.db.QueryRow(
		"SELECT COUNT(*) FROM services WHERE substr(date, 1, 7) = ?", month).
		Scan(&stats.ServicesThisMonth); err != nil {
		return stats, fmt.Errorf("counting monthly services: %w", err)
	}

	return stats, nil
}
