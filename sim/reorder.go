package sim

import (
	"github.com/katalvlaran/greenwave/schedule"
)

// ReorderIntersection rebuilds the one intersection's cyclic sequence so
// that each street is placed at the slot where its first waiting car
// actually arrives, then installs the new ordering into the schedule.
//
// The multiset of green times and the set of participating streets are
// preserved. The returned score is the simulator's score for the updated
// schedule, accumulated during the deciding replay itself, which is the
// precondition under which callers accept the edit.
func ReorderIntersection(sched *schedule.Schedule, interID int) int64 {
	return ReorderIntersections(sched, interID)
}

// ReorderIntersections reorders several intersections in one co-simulated
// replay. Each target intersection's slots start uncommitted; all other
// intersections follow the schedule unchanged.
//
// Queues are served in descending length order (ties ascending street id)
// so the busiest streets claim their slots first.
func ReorderIntersections(sched *schedule.Schedule, interIDs ...int) int64 {
	inst := sched.Instance()
	open := make(map[int]*openIntersection, len(interIDs))
	for _, interID := range interIDs {
		open[interID] = newOpenIntersection(sched, interID)
	}

	e := newEngine(inst)
	var score int64

	for t := 0; t <= inst.Duration; t++ {
		if t > 0 {
			e.advance()
		}

		for _, streetID := range e.busiestStreets() {
			interID := inst.Streets[streetID].End
			var green bool
			if oi, ok := open[interID]; ok {
				green = oi.isOrSetGreen(streetID, t)
			} else {
				green = sched.IsGreen(interID, streetID, t)
			}
			if green {
				e.cross(streetID)
			}
		}

		for range e.arrivedNow {
			score += int64(inst.Bonus + inst.Duration - t)
		}
	}

	// Streets that never saw a car keep their green time in the leftover
	// slots; install the final orderings.
	for _, interID := range interIDs {
		open[interID].assignRemaining()
		open[interID].install(sched, interID)
	}

	return score
}
