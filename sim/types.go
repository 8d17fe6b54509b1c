// Package sim defines the statistics returned by a scoring run.
package sim

import (
	"fmt"
	"strings"
)

// Stats is the outcome of one full scoring simulation.
type Stats struct {
	// Score is the total over arrived cars of Bonus + (Duration − t).
	Score int64
	// NumArrived counts cars that completed their journey by the horizon.
	NumArrived int
	// EarliestArrival is the tick of the first arrival (0 when none).
	EarliestArrival int
	// LatestArrival is the tick of the last arrival (0 when none).
	LatestArrival int
	// CrossedStreets holds every street some car crossed the light of.
	CrossedStreets map[int]bool
	// TotalWaitTime maps street id to the number of ticks the street held
	// at least one queued car.
	TotalWaitTime map[int]int
}

// String renders a short human-readable summary of the run.
func (st Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Arrived cars    : %d\n", st.NumArrived)
	fmt.Fprintf(&b, "Earliest arrival: %d\n", st.EarliestArrival)
	fmt.Fprintf(&b, "Latest arrival  : %d\n", st.LatestArrival)
	fmt.Fprintf(&b, "Crossed streets : %d\n", len(st.CrossedStreets))
	fmt.Fprintf(&b, "Schedule score  : %d", st.Score)

	return b.String()
}
