package construct

import (
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/katalvlaran/greenwave/city"
	"github.com/katalvlaran/greenwave/schedule"
)

// Traffic gives each crossed street a green time proportional to the
// base-10 logarithm of its demand relative to the quietest street of the
// same intersection, floored at one second. Busy streets get longer
// phases without starving quiet ones.
type Traffic struct{}

// Schedule implements Scheduler.
func (Traffic) Schedule(inst *city.Instance) *schedule.Schedule {
	sched := schedule.New(inst)

	// Group demand per intersection.
	demand := make(map[int]map[int]int)
	for streetID, count := range crossedByCars(inst) {
		interID := inst.Streets[streetID].End
		if demand[interID] == nil {
			demand[interID] = make(map[int]int)
		}
		demand[interID][streetID] = count
	}

	interIDs := lo.Keys(demand)
	sort.Ints(interIDs)

	// Report the widest demand spread seen while walking intersections;
	// useful when eyeballing which instances profit from Traffic.
	maxDelta := 0
	for _, interID := range interIDs {
		counts := lo.Values(demand[interID])
		if delta := lo.Max(counts) - lo.Min(counts); delta > maxDelta {
			Log.Debugf("intersection %d: min traffic %d, max traffic %d, delta %d",
				interID, lo.Min(counts), lo.Max(counts), delta)
			maxDelta = delta
		}
	}

	for _, interID := range interIDs {
		quietest := float64(lo.Min(lo.Values(demand[interID])))
		streetIDs := lo.Keys(demand[interID])
		sort.Ints(streetIDs)
		for _, streetID := range streetIDs {
			green := int(math.Round(math.Log10(float64(demand[interID][streetID]) / quietest)))
			if green < 1 {
				green = 1
			}
			sched.AddStreet(interID, streetID, green)
		}
	}

	return sched
}
