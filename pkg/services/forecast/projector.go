package forecast

import (
	"github.com/muse-tools/streamcast/pkg/models/domain"
)

// maxProjectionMonths bounds the series length so an absurd duration cannot
// produce a pathological projection. Callers normally stay well under this.
const maxProjectionMonths = 1200

// Project produces a month-indexed revenue series of the requested length.
// Month 1 is the current state with no growth applied; the policy advances
// the stream counts between points only. A non-positive duration yields an
// empty series, and durations above maxProjectionMonths are clamped.
//
// The projection is pure: identical inputs yield identical series.
func Project(
	initial domain.StreamState,
	rates domain.RateModel,
	policy domain.GrowthPolicy,
	months int,
) domain.RevenueSeries {
	if months <= 0 {
		return domain.RevenueSeries{}
	}
	if months > maxProjectionMonths {
		months = maxProjectionMonths
	}

	series := make(domain.RevenueSeries, 0, months)
	current := initial
	for m := 1; m <= months; m++ {
		series = append(series, domain.RevenuePoint{
			Month:   m,
			Revenue: rates.Revenue(current),
		})
		current = policy.Step(current)
	}
	return series
}
