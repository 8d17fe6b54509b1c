package construct

import (
	"sort"

	"github.com/samber/lo"

	"github.com/katalvlaran/greenwave/city"
	"github.com/katalvlaran/greenwave/schedule"
)

// Naive gives every street that some car must cross one second of green.
type Naive struct{}

// Schedule implements Scheduler.
func (Naive) Schedule(inst *city.Instance) *schedule.Schedule {
	sched := schedule.New(inst)

	crossed := lo.Keys(crossedByCars(inst))
	sort.Ints(crossed)
	for _, streetID := range crossed {
		sched.AddStreet(inst.Streets[streetID].End, streetID, 1)
	}

	return sched
}
