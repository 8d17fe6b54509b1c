// Package schedule_test exercises the schedule mutation operations, the
// green-phase function, cloning, and shuffling.
package schedule_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/greenwave/city"
	"github.com/katalvlaran/greenwave/schedule"
)

// testInstance builds a three-intersection city where streets a, b and c
// all end at intersection 1 and street out leaves it.
func testInstance(t *testing.T) *city.Instance {
	t.Helper()
	inst, err := city.ParseString(`10 3 4 2 100
0 1 a 1
2 1 b 2
0 1 c 3
1 2 out 1
2 a out
2 b out
`)
	require.NoError(t, err)

	return inst
}

func TestAddStreet_BuildsCycle(t *testing.T) {
	sched := schedule.New(testInstance(t))
	sched.AddStreet(1, 0, 1)
	sched.AddStreet(1, 1, 2)

	require.Equal(t, 3, sched.Cycle(1))
	require.Equal(t, []schedule.Turn{{Street: 0, Green: 1}, {Street: 1, Green: 2}}, sched.Turns(1))
	require.Equal(t, 1, sched.Len())
}

func TestAddStreet_DuplicatePanics(t *testing.T) {
	sched := schedule.New(testInstance(t))
	sched.AddStreet(1, 0, 1)
	require.Panics(t, func() { sched.AddStreet(1, 0, 2) })
}

func TestAddStreetTime(t *testing.T) {
	sched := schedule.New(testInstance(t))

	// Unscheduled street: appended with the delta as its green time.
	sched.AddStreetTime(0, 2)
	require.Equal(t, []schedule.Turn{{Street: 0, Green: 2}}, sched.Turns(1))

	// Scheduled street: green time grows in place.
	sched.AddStreetTime(0, 3)
	require.Equal(t, []schedule.Turn{{Street: 0, Green: 5}}, sched.Turns(1))
	require.Equal(t, 5, sched.Cycle(1))

	// Zero delta on an unscheduled street must not create a 0-length slot.
	sched.AddStreetTime(1, 0)
	require.Len(t, sched.Turns(1), 1)
}

func TestSubStreetTime(t *testing.T) {
	sched := schedule.New(testInstance(t))
	sched.AddStreet(1, 0, 3)
	sched.AddStreet(1, 1, 1)

	// Partial subtraction shrinks the slot.
	sched.SubStreetTime(0, 2)
	require.Equal(t, []schedule.Turn{{Street: 0, Green: 1}, {Street: 1, Green: 1}}, sched.Turns(1))
	require.Equal(t, 2, sched.Cycle(1))

	// Subtracting the rest removes the turn entirely.
	sched.SubStreetTime(0, 5)
	require.Equal(t, []schedule.Turn{{Street: 1, Green: 1}}, sched.Turns(1))
	require.Equal(t, 1, sched.Cycle(1))
}

func TestIsGreen_CyclicPattern(t *testing.T) {
	sched := schedule.New(testInstance(t))
	sched.AddStreet(1, 0, 1)
	sched.AddStreet(1, 1, 2)

	// Cycle 3: a green on phase 0, b green on phases 1 and 2.
	for _, tc := range []struct {
		t      int
		street int
		want   bool
	}{
		{0, 0, true}, {0, 1, false},
		{1, 0, false}, {1, 1, true},
		{2, 0, false}, {2, 1, true},
		{3, 0, true}, {4, 1, true},
	} {
		require.Equal(t, tc.want, sched.IsGreen(1, tc.street, tc.t), "t=%d street=%d", tc.t, tc.street)
	}

	// At most one street is green at any second.
	for tick := 0; tick <= 10; tick++ {
		greens := 0
		for streetID := 0; streetID < 3; streetID++ {
			if sched.IsGreen(1, streetID, tick) {
				greens++
			}
		}
		require.Equal(t, 1, greens, "t=%d", tick)
	}
}

func TestIsGreen_EmptyIntersection(t *testing.T) {
	sched := schedule.New(testInstance(t))
	for tick := 0; tick <= 5; tick++ {
		require.False(t, sched.IsGreen(1, 0, tick))
	}

	sched.AddStreet(1, 0, 1)
	sched.ResetIntersection(1)
	require.False(t, sched.IsGreen(1, 0, 0))
	require.Equal(t, 0, sched.Cycle(1))
}

func TestIsStreetAlwaysGreen(t *testing.T) {
	sched := schedule.New(testInstance(t))
	sched.AddStreet(1, 0, 4)
	require.True(t, sched.IsStreetAlwaysGreen(0))

	sched.AddStreet(1, 1, 1)
	require.False(t, sched.IsStreetAlwaysGreen(0))
	require.False(t, sched.IsStreetAlwaysGreen(2))
}

func TestIntersectionID(t *testing.T) {
	sched := schedule.New(testInstance(t))
	require.Equal(t, 1, sched.IntersectionID(0))
	require.Equal(t, 2, sched.IntersectionID(3))
}

func TestClone_Independence(t *testing.T) {
	sched := schedule.New(testInstance(t))
	sched.AddStreet(1, 0, 1)

	clone := sched.Clone()
	clone.AddStreetTime(0, 5)
	clone.AddStreet(1, 1, 2)

	require.Equal(t, 1, sched.Cycle(1), "mutating the clone must not touch the original")
	require.Len(t, sched.Turns(1), 1)
	require.Equal(t, 8, clone.Cycle(1))
}

func TestShuffle_PreservesTurnsAndCycle(t *testing.T) {
	sched := schedule.New(testInstance(t))
	sched.AddStreet(1, 0, 1)
	sched.AddStreet(1, 1, 2)
	sched.AddStreet(1, 2, 3)

	rng := rand.New(rand.NewSource(42))
	sched.Shuffle(1, rng)

	require.Equal(t, 6, sched.Cycle(1))
	greens := map[int]int{}
	for _, turn := range sched.Turns(1) {
		greens[turn.Street] = turn.Green
	}
	require.Equal(t, map[int]int{0: 1, 1: 2, 2: 3}, greens)
}

func TestTurns_ReturnsCopy(t *testing.T) {
	sched := schedule.New(testInstance(t))
	sched.AddStreet(1, 0, 1)

	turns := sched.Turns(1)
	turns[0].Green = 99
	require.Equal(t, 1, sched.Turns(1)[0].Green)
}
