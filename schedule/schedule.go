package schedule

import (
	"fmt"
	"math/rand"
	"sort"
)

// AddStreet appends (street, green) to the intersection's turn sequence,
// creating the intersection if absent, and adds green to its cycle.
//
// The street must not already be scheduled at that intersection; a repeat
// insertion would silently corrupt the green-phase function, so it panics.
func (s *Schedule) AddStreet(interID, streetID, green int) {
	inter, ok := s.inters[interID]
	if !ok {
		inter = &Intersection{}
		s.inters[interID] = inter
	}
	for _, turn := range inter.Turns {
		if turn.Street == streetID {
			panic(fmt.Sprintf("schedule: street %d already scheduled at intersection %d", streetID, interID))
		}
	}
	inter.Turns = append(inter.Turns, Turn{Street: streetID, Green: green})
	inter.Cycle += green
}

// AddStreetTime increases the street's green time by delta at its end
// intersection, appending a new (street, delta) turn when the street is
// not scheduled yet. A delta of 0 on an unscheduled street is a no-op so
// that zero-length slots can never appear.
func (s *Schedule) AddStreetTime(streetID, delta int) {
	interID := s.IntersectionID(streetID)
	if inter, ok := s.inters[interID]; ok {
		for i := range inter.Turns {
			if inter.Turns[i].Street == streetID {
				inter.Turns[i].Green += delta
				inter.Cycle += delta

				return
			}
		}
	}
	if delta > 0 {
		s.AddStreet(interID, streetID, delta)
	}
}

// SubStreetTime decreases the street's green time by delta, removing the
// turn entirely when delta consumes it. Unscheduled streets are left
// untouched.
func (s *Schedule) SubStreetTime(streetID, delta int) {
	interID := s.IntersectionID(streetID)
	inter, ok := s.inters[interID]
	if !ok {
		return
	}
	for i := range inter.Turns {
		if inter.Turns[i].Street != streetID {
			continue
		}
		if green := inter.Turns[i].Green; green > delta {
			inter.Turns[i].Green = green - delta
			inter.Cycle -= delta
		} else {
			inter.Cycle -= green
			inter.Turns = append(inter.Turns[:i], inter.Turns[i+1:]...)
		}

		return
	}
}

// ResetIntersection drops the intersection's entry; it becomes never green.
func (s *Schedule) ResetIntersection(interID int) {
	delete(s.inters, interID)
}

// IsGreen reports whether streetID is lit at intersection interID at
// second t. An unscheduled intersection, or one with cycle 0, is never
// green.
//
// Complexity: O(turns in the intersection).
func (s *Schedule) IsGreen(interID, streetID, t int) bool {
	inter, ok := s.inters[interID]
	if !ok || inter.Cycle == 0 {
		return false
	}
	phase := t % inter.Cycle
	acc := 0
	for _, turn := range inter.Turns {
		acc += turn.Green
		if phase < acc {
			return turn.Street == streetID
		}
	}

	return false
}

// IsStreetAlwaysGreen reports whether the street's intersection schedules
// exactly this one street, making its light permanently green.
func (s *Schedule) IsStreetAlwaysGreen(streetID int) bool {
	inter, ok := s.inters[s.IntersectionID(streetID)]

	return ok && len(inter.Turns) == 1 && inter.Turns[0].Street == streetID
}

// IntersectionID returns the id of the intersection whose light governs
// the street: the street's end intersection.
func (s *Schedule) IntersectionID(streetID int) int {
	return s.inst.Streets[streetID].End
}

// NumStreetsIn returns how many streets the intersection's cycle serves.
func (s *Schedule) NumStreetsIn(interID int) int {
	inter, ok := s.inters[interID]
	if !ok {
		return 0
	}

	return len(inter.Turns)
}

// Turns returns a copy of the intersection's turn sequence in cyclic
// order. The copy is safe to hold across subsequent mutations.
func (s *Schedule) Turns(interID int) []Turn {
	inter, ok := s.inters[interID]
	if !ok {
		return nil
	}
	turns := make([]Turn, len(inter.Turns))
	copy(turns, inter.Turns)

	return turns
}

// Cycle returns the intersection's cycle length (0 when unscheduled).
func (s *Schedule) Cycle(interID int) int {
	inter, ok := s.inters[interID]
	if !ok {
		return 0
	}

	return inter.Cycle
}

// Len returns the number of scheduled intersections.
func (s *Schedule) Len() int { return len(s.inters) }

// IDs returns the scheduled intersection ids in ascending order.
func (s *Schedule) IDs() []int {
	ids := make([]int, 0, len(s.inters))
	for id := range s.inters {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Shuffle randomly permutes the intersection's turn sequence in place.
// The cycle length is unchanged. The caller supplies the RNG so runs stay
// reproducible under a fixed seed.
func (s *Schedule) Shuffle(interID int, rng *rand.Rand) {
	inter, ok := s.inters[interID]
	if !ok {
		return
	}
	rng.Shuffle(len(inter.Turns), func(i, j int) {
		inter.Turns[i], inter.Turns[j] = inter.Turns[j], inter.Turns[i]
	})
}

// Clone returns an independent deep copy sharing only the read-only
// instance. Mutating the clone never affects the receiver.
func (s *Schedule) Clone() *Schedule {
	clone := &Schedule{
		inst:   s.inst,
		inters: make(map[int]*Intersection, len(s.inters)),
	}
	for id, inter := range s.inters {
		turns := make([]Turn, len(inter.Turns))
		copy(turns, inter.Turns)
		clone.inters[id] = &Intersection{Turns: turns, Cycle: inter.Cycle}
	}

	return clone
}
