// Package sim_test — reorder engine tests: slot commitment order, green
// time multiset preservation, the score contract, and multi-intersection
// reorders.
package sim_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/greenwave/city"
	"github.com/katalvlaran/greenwave/schedule"
	"github.com/katalvlaran/greenwave/sim"
)

// greens returns the sorted green-time multiset of an intersection.
func greens(sched *schedule.Schedule, interID int) []int {
	turns := sched.Turns(interID)
	out := make([]int, 0, len(turns))
	for _, turn := range turns {
		out = append(out, turn.Green)
	}
	sort.Ints(out)

	return out
}

// streetsOf returns the street id set of an intersection.
func streetsOf(sched *schedule.Schedule, interID int) map[int]bool {
	out := map[int]bool{}
	for _, turn := range sched.Turns(interID) {
		out[turn.Street] = true
	}

	return out
}

// reorderInstance feeds intersection 1 from streets x, y and z with
// skewed demand: three cars on z, two on x, one on y.
func reorderInstance(t *testing.T) *city.Instance {
	t.Helper()
	inst, err := city.ParseString(`10 2 4 6 100
0 1 x 1
0 1 y 1
0 1 z 1
1 0 w 1
2 z w
2 z w
2 z w
2 x w
2 x w
2 y w
`)
	require.NoError(t, err)

	return inst
}

func TestReorder_BusiestStreetClaimsFirstSlot(t *testing.T) {
	inst := reorderInstance(t)
	sched := schedule.New(inst)
	sched.AddStreet(1, 0, 1) // x
	sched.AddStreet(1, 1, 2) // y
	sched.AddStreet(1, 2, 3) // z

	before := greens(sched, 1)
	score := sim.ReorderIntersection(sched, 1)

	// Multiset of green times and street set are invariant.
	require.Equal(t, before, greens(sched, 1))
	require.Equal(t, map[int]bool{0: true, 1: true, 2: true}, streetsOf(sched, 1))

	// z holds the longest queue at t=0, so it claims the first slot.
	turns := sched.Turns(1)
	require.Equal(t, 2, turns[0].Street, "busiest street must own the first slot")
	require.Equal(t, 3, turns[0].Green, "slot durations travel with the swap, streets keep their own time")

	// The returned score matches a fresh simulation of the result.
	require.Equal(t, sim.Run(sched).Score, score)
}

func TestReorder_ImprovesSkewedOrder(t *testing.T) {
	inst := reorderInstance(t)

	// Deliberately bad order: the quiet street y gets the first slot.
	bad := schedule.New(inst)
	bad.AddStreet(1, 1, 2) // y
	bad.AddStreet(1, 0, 1) // x
	bad.AddStreet(1, 2, 3) // z
	badScore := sim.Run(bad).Score

	reordered := bad.Clone()
	score := sim.ReorderIntersection(reordered, 1)
	require.GreaterOrEqual(t, score, badScore, "reordering by arrival must not hurt this instance")
	require.Equal(t, sim.Run(reordered).Score, score)
}

// TestReorder_SwapPlacesStreetAtArrivalSecond drives the inner swap with
// a non-empty prefix: the car for z reaches its light at t=3, and the
// engine must rebuild [z(2) x(1) y(1)] so a 2-second slot covers t=3.
func TestReorder_SwapPlacesStreetAtArrivalSecond(t *testing.T) {
	inst, err := city.ParseString(`6 3 5 1 100
0 1 x 1
0 1 y 1
2 1 z 3
1 0 w 1
0 2 u 1
3 u z w
`)
	require.NoError(t, err)

	sched := schedule.New(inst)
	sched.AddStreet(2, 4, 1) // u's light: always green
	sched.AddStreet(1, 2, 2) // z
	sched.AddStreet(1, 0, 1) // x
	sched.AddStreet(1, 1, 1) // y

	score := sim.ReorderIntersection(sched, 1)

	// The car crosses u at t=0, travels z for 3 seconds, and queues at
	// z's light at t=3; the rearranged cycle must serve it immediately:
	// two 1-second slots first, then z's 2-second slot covering t=3.
	turns := sched.Turns(1)
	require.Equal(t, []int{1, 1, 2}, []int{turns[0].Green, turns[1].Green, turns[2].Green})
	require.Equal(t, 2, turns[2].Street, "z must own the slot covering t=3")
	require.Equal(t, []int{1, 1, 2}, greens(sched, 1))

	// Crossing at t=3 and traveling w for 1s arrives at t=4.
	require.Equal(t, int64(100+6-4), score)
	require.Equal(t, sim.Run(sched).Score, score)
}

func TestReorder_UntouchedStreetsKeepTheirTime(t *testing.T) {
	inst := reorderInstance(t)
	sched := schedule.New(inst)
	sched.AddStreet(1, 0, 2) // x
	sched.AddStreet(1, 1, 2) // y
	sched.AddStreet(1, 2, 2) // z

	sim.ReorderIntersection(sched, 1)

	for _, turn := range sched.Turns(1) {
		require.Equal(t, 2, turn.Green)
	}
	require.Equal(t, 6, sched.Cycle(1))
}

func TestReorderIntersections_MultiWindow(t *testing.T) {
	inst, err := city.ParseString(`12 3 4 2 100
0 1 a 1
0 1 b 1
1 2 c 1
2 0 d 2
3 a c d
3 b c d
`)
	require.NoError(t, err)

	sched := schedule.New(inst)
	sched.AddStreet(1, 0, 1)
	sched.AddStreet(1, 1, 1)
	sched.AddStreet(2, 2, 2)

	before1, before2 := greens(sched, 1), greens(sched, 2)
	score := sim.ReorderIntersections(sched, 1, 2)

	require.Equal(t, before1, greens(sched, 1))
	require.Equal(t, before2, greens(sched, 2))
	require.Equal(t, sim.Run(sched).Score, score)
}

func TestReorder_Deterministic(t *testing.T) {
	inst := reorderInstance(t)
	build := func() *schedule.Schedule {
		sched := schedule.New(inst)
		sched.AddStreet(1, 0, 1)
		sched.AddStreet(1, 1, 2)
		sched.AddStreet(1, 2, 3)

		return sched
	}

	first, second := build(), build()
	require.Equal(t, sim.ReorderIntersection(first, 1), sim.ReorderIntersection(second, 1))
	require.Equal(t, first.Turns(1), second.Turns(1))
}
