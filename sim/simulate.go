package sim

import (
	"github.com/katalvlaran/greenwave/city"
	"github.com/katalvlaran/greenwave/schedule"
)

// Run replays the whole fleet against the schedule over the full horizon
// and returns the resulting score and per-street statistics.
//
// Run is total on well-formed inputs: an empty schedule simply scores the
// cars that start on their final street. It never mutates the schedule.
//
// Determinism: two calls with equal inputs return equal Stats; see the
// package documentation for the fixed tie-break rules.
//
// Complexity: O(Duration · (cars alive + active queues)).
func Run(sched *schedule.Schedule) Stats {
	inst := sched.Instance()
	e := newEngine(inst)
	st := Stats{
		CrossedStreets: make(map[int]bool),
		TotalWaitTime:  make(map[int]int),
	}

	for t := 0; t <= inst.Duration; t++ {
		// 1) Advance traveling cars. At t = 0 nothing is Ready yet and
		//    arrivedNow still holds the cars that start on their final
		//    street, so the phase is skipped.
		if t > 0 {
			e.advance()
		}

		// 2) Cross intersections: serve queues in ascending street id,
		//    one car per green light.
		for _, streetID := range e.queuedStreets() {
			if sched.IsGreen(inst.Streets[streetID].End, streetID, t) {
				st.CrossedStreets[streetID] = true
				e.cross(streetID)
			}
		}

		// 3) Bookkeeping: wait time for still-queued streets, score and
		//    arrival window for cars that finished this tick.
		for streetID := range e.queues {
			st.TotalWaitTime[streetID]++
		}
		for range e.arrivedNow {
			st.Score += int64(inst.Bonus + inst.Duration - t)
		}
		if len(e.arrivedNow) > 0 {
			if st.NumArrived == 0 {
				st.EarliestArrival = t
			}
			st.LatestArrival = t
			st.NumArrived += len(e.arrivedNow)
		}
	}

	return st
}

// Replay drives the fleet against an arbitrary greenness decision: at
// each tick every non-empty queue, served in ascending street id order,
// asks isGreen whether its head car may cross. The hook may keep state of
// its own — the adaptive scheduler assigns cyclic slots on the fly this
// way. Returns the accumulated score.
//
// Tick structure and tie-breaks are identical to Run.
func Replay(inst *city.Instance, isGreen func(streetID, interID, t int) bool) int64 {
	e := newEngine(inst)
	var score int64

	for t := 0; t <= inst.Duration; t++ {
		if t > 0 {
			e.advance()
		}
		for _, streetID := range e.queuedStreets() {
			if isGreen(streetID, inst.Streets[streetID].End, t) {
				e.cross(streetID)
			}
		}
		for range e.arrivedNow {
			score += int64(inst.Bonus + inst.Duration - t)
		}
	}

	return score
}
