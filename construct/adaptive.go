package construct

import (
	"sort"

	"github.com/samber/lo"

	"github.com/katalvlaran/greenwave/city"
	"github.com/katalvlaran/greenwave/schedule"
	"github.com/katalvlaran/greenwave/sim"
)

// Adaptive replays the fleet with every slot undecided and hands out each
// intersection's one-second slots first-come-first-served: the first
// street whose car reaches an unassigned slot second claims it. The
// resulting cyclic order mirrors the order cars actually arrive in.
type Adaptive struct{}

// Schedule implements Scheduler.
func (Adaptive) Schedule(inst *city.Instance) *schedule.Schedule {
	// Cars that cannot finish inside the horizon never claim a slot;
	// their streets may still be included through other cars.
	ignored := 0
	wanted := make(map[int]map[int]bool)
	for carID, path := range inst.CarPaths {
		if inst.MinTravelTime(carID) > inst.Duration {
			ignored++

			continue
		}
		for _, streetID := range path[:len(path)-1] {
			interID := inst.Streets[streetID].End
			if wanted[interID] == nil {
				wanted[interID] = make(map[int]bool)
			}
			wanted[interID][streetID] = true
		}
	}

	// One unassigned one-second slot per wanted street; the cycle length
	// of each intersection equals its wanted street count.
	order := make(map[int][]int, len(wanted))
	for interID, streets := range wanted {
		slots := make([]int, len(streets))
		for i := range slots {
			slots[i] = -1
		}
		order[interID] = slots
	}

	sim.Replay(inst, func(streetID, interID, t int) bool {
		slots, ok := order[interID]
		if !ok {
			return false
		}
		cur := t % len(slots)
		if slots[cur] >= 0 {
			return slots[cur] == streetID
		}
		if !wanted[interID][streetID] {
			// Either already assigned another slot, or not needed at all.
			return false
		}
		delete(wanted[interID], streetID)
		slots[cur] = streetID

		return true
	})

	unused := lo.SumBy(lo.Values(wanted), func(streets map[int]bool) int { return len(streets) })
	Log.Infof("adaptive scheduler: %d ignored cars, %d unused streets", ignored, unused)

	// Build the schedule: assigned slots keep their claimed order; slots
	// no car reached are filled with the leftover wanted streets.
	interIDs := lo.Keys(order)
	sort.Ints(interIDs)
	sched := schedule.New(inst)
	for _, interID := range interIDs {
		leftover := lo.Keys(wanted[interID])
		sort.Ints(leftover)
		for _, streetID := range order[interID] {
			if streetID < 0 {
				streetID, leftover = leftover[0], leftover[1:]
			}
			sched.AddStreet(interID, streetID, 1)
		}
	}

	return sched
}
