package city

import (
	"fmt"
	"strings"
)

// MinTravelTime returns the minimum number of seconds car carID needs to
// finish its journey: the sum of travel times of every street after the
// first, i.e. the arrival time if every light were green on approach.
//
// Cars with MinTravelTime > Duration can never contribute to the score.
//
// Complexity: O(len(path)).
func (inst *Instance) MinTravelTime(carID int) int {
	total := 0
	for _, streetID := range inst.CarPaths[carID][1:] {
		total += inst.Streets[streetID].TravelTime
	}

	return total
}

// MaxTheoreticalScore returns the score obtained if every car arrived as
// early as physically possible: Bonus per car plus the remaining seconds
// after its minimum travel time. Cars that cannot finish inside the
// horizon contribute nothing.
//
// Complexity: O(Σ len(path)).
func (inst *Instance) MaxTheoreticalScore() int64 {
	var total int64
	for carID := range inst.CarPaths {
		if minTime := inst.MinTravelTime(carID); minTime <= inst.Duration {
			total += int64(inst.Bonus) + int64(inst.Duration-minTime)
		}
	}

	return total
}

// String renders a short human-readable summary of the instance.
func (inst *Instance) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Duration     : %d\n", inst.Duration)
	fmt.Fprintf(&b, "Intersections: %d\n", inst.NumIntersections)
	fmt.Fprintf(&b, "Streets      : %d\n", len(inst.Streets))
	fmt.Fprintf(&b, "Cars         : %d\n", len(inst.CarPaths))
	fmt.Fprintf(&b, "Max score    : %d\n", inst.MaxTheoreticalScore())
	fmt.Fprintf(&b, "Bonus points : %d", inst.Bonus)

	return b.String()
}
