package forecast

import (
	"github.com/muse-tools/streamcast/pkg/models/domain"
)

// ReachMonth returns the month of the first point whose revenue meets or
// exceeds target (ties count as reached). ok is false when no point in the
// series reaches the target; the caller reports the final value against the
// target in that case.
func ReachMonth(series domain.RevenueSeries, target float64) (int, bool) {
	for _, p := range series {
		if p.Revenue >= target {
			return p.Month, true
		}
	}
	return 0, false
}
