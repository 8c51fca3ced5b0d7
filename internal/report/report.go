// Package report builds the summarized projections consumed by charts and
// the spreadsheet export. Aggregations take loaded rows, not the store, so
// they compose with any prior filtering.
package report

import (
	"sort"

	"github.com/gearbox-labs/garagelog/pkg/types"
)

// VehicleServiceCount is one bar of the per-vehicle service summary.
type VehicleServiceCount struct {
	Plate string `json:"plate"`
	Count int    `json:"count"`
}

// ServiceTypeCost is one slice of the cost-distribution summary.
type ServiceTypeCost struct {
	ServiceType string  `json:"service_type"`
	TotalCost   float64 `json:"total_cost"`
}

// ServiceCountsByVehicle counts service rows per plate, most serviced first
// (ties broken by plate). An empty input returns ErrNoData so the caller can
// show a placeholder instead of an empty chart.
func ServiceCountsByVehicle(services []*types.ServiceEvent) ([]VehicleServiceCount, error) {
	if len(services) == 0 {
		return nil, types.ErrNoData
	}

	counts := make(map[string]int)
	for _, e := range services {
		counts[e.Plate]++
	}

	result := make([]VehicleServiceCount, 0, len(counts))
	for plate, count := range counts {
		result = append(result, VehicleServiceCount{Plate: plate, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Plate < result[j].Plate
	})
	return result, nil
}

// CostByServiceType sums cost per service type, sorted descending by total
// (ties broken by type name). An empty input returns ErrNoData.
func CostByServiceType(services []*types.ServiceEvent) ([]ServiceTypeCost, error) {
	if len(services) == 0 {
		return nil, types.ErrNoData
	}

	totals := make(map[string]float64)
	for _, e := range services {
		totals[e.ServiceType] += e.Cost
	}

	result := make([]ServiceTypeCost, 0, len(totals))
	for serviceType, total := range totals {
		result = append(result, ServiceTypeCost{ServiceType: serviceType, TotalCost: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalCost != result[j].TotalCost {
			return result[i].TotalCost > result[j].TotalCost
		}
		return result[i].ServiceType < result[j].ServiceType
	})
	return result, nil
}
