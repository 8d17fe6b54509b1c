package city_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/greenwave/city"
)

func TestInstance_MinTravelTime(t *testing.T) {
	inst, err := city.ParseString(sample)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	// The first street is free (the car starts at its end): only b counts.
	if got := inst.MinTravelTime(0); got != 2 {
		t.Fatalf("expected min travel time 2, got %d", got)
	}
}

func TestInstance_MaxTheoreticalScore(t *testing.T) {
	inst, err := city.ParseString(sample)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	// One car, bonus 1000, best arrival at t=2 of 6: 1000 + (6-2).
	if got := inst.MaxTheoreticalScore(); got != 1004 {
		t.Fatalf("expected max theoretical score 1004, got %d", got)
	}
}

func TestInstance_MaxTheoreticalScore_UnreachableCar(t *testing.T) {
	// Street b takes 9 > D=6: the car can never finish, so it adds
	// nothing to the bound, not even its bonus.
	inst, err := city.ParseString("6 2 2 1 1000\n0 1 a 1\n1 0 b 9\n2 a b\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := inst.MaxTheoreticalScore(); got != 0 {
		t.Fatalf("expected max theoretical score 0, got %d", got)
	}
}

func TestInstance_String(t *testing.T) {
	inst, err := city.ParseString(sample)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	out := inst.String()
	for _, want := range []string{"Duration     : 6", "Streets      : 2", "Cars         : 1", "Bonus points : 1000"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}
