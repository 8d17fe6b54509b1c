package sim

import (
	"fmt"

	"github.com/katalvlaran/greenwave/schedule"
)

// unassigned marks a slot not yet committed to a street.
const unassigned = -1

// slot is one cyclic position of an open intersection: a green duration
// and the street committed to it, if any.
type slot struct {
	street int
	green  int
}

// openIntersection is the reorder engine's working copy of one
// intersection: the original slot durations in their current cyclic
// order, all uncommitted, plus the multiset of streets still waiting for
// a slot. The cycle length never changes.
type openIntersection struct {
	// streets maps each not-yet-committed street to its green time.
	streets map[int]int
	slots   []slot
	cycle   int
}

// newOpenIntersection snapshots the intersection's current turns with
// every slot uncommitted.
func newOpenIntersection(sched *schedule.Schedule, interID int) *openIntersection {
	turns := sched.Turns(interID)
	o := &openIntersection{
		streets: make(map[int]int, len(turns)),
		slots:   make([]slot, 0, len(turns)),
	}
	for _, turn := range turns {
		o.streets[turn.Street] = turn.Green
		o.slots = append(o.slots, slot{street: unassigned, green: turn.Green})
		o.cycle += turn.Green
	}

	return o
}

// isOrSetGreen decides whether streetID may cross at second t, committing
// slots on the fly:
//
//  1. a committed slot answers for itself;
//  2. an uncommitted slot of the street's exact green time is claimed;
//  3. otherwise the engine tries to rearrange uncommitted slots (inner
//     then outer swap) so a matching slot covers t, and claims it;
//  4. failing that — or if the street already owns another slot — the
//     light is red and nothing changes.
func (o *openIntersection) isOrSetGreen(streetID, t int) bool {
	if o.cycle == 0 {
		return false
	}
	phase := t % o.cycle

	// Locate the slot covering this second and the start of its interval.
	idx, start := 0, 0
	for i := range o.slots {
		if phase < start+o.slots[i].green {
			idx = i

			break
		}
		start += o.slots[i].green
	}

	if o.slots[idx].street != unassigned {
		return o.slots[idx].street == streetID
	}

	need, ok := o.streets[streetID]
	if !ok {
		// Already committed to another slot.
		return false
	}

	if need != o.slots[idx].green {
		newIdx, ok := o.swapSlot(idx, need, phase-start)
		if !ok {
			return false
		}
		idx = newIdx
		// The rearranged target slot must still cover this second.
		covered := 0
		for i := 0; i < idx; i++ {
			covered += o.slots[i].green
		}
		if phase < covered || phase >= covered+o.slots[idx].green {
			panic(fmt.Sprintf("sim: swap misplaced slot %d (phase %d outside [%d,%d))", idx, phase, covered, covered+o.slots[idx].green))
		}
	}

	if o.slots[idx].street != unassigned || o.slots[idx].green != need {
		panic(fmt.Sprintf("sim: commit of street %d to slot %d violates slot invariant", streetID, idx))
	}
	o.slots[idx] = slot{street: streetID, green: need}
	delete(o.streets, streetID)

	return true
}

// isDone reports whether every slot has been committed.
func (o *openIntersection) isDone() bool {
	return len(o.streets) == 0
}

// assignRemaining commits streets that never saw an arriving car to the
// leftover slots, matching green times. Ties pick the smallest street id
// so runs stay reproducible. Length preservation guarantees a match for
// every slot; a miss means the slot multiset drifted, which is a bug.
func (o *openIntersection) assignRemaining() {
	for i := range o.slots {
		if o.slots[i].street != unassigned {
			continue
		}
		best := unassigned
		for streetID, green := range o.streets {
			if green == o.slots[i].green && (best == unassigned || streetID < best) {
				best = streetID
			}
		}
		if best == unassigned {
			panic(fmt.Sprintf("sim: no remaining street of green time %d for slot %d", o.slots[i].green, i))
		}
		o.slots[i].street = best
		delete(o.streets, best)
	}
}

// install replaces the intersection's turns with the open slots in order,
// recomputing the cycle through the schedule's own mutation ops.
func (o *openIntersection) install(sched *schedule.Schedule, interID int) {
	sched.ResetIntersection(interID)
	for _, s := range o.slots {
		sched.AddStreet(interID, s.street, s.green)
	}
}
