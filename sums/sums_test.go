// Package sums_test validates the subset-sum set: reachability, witness
// reconstruction, and the first-witness-wins policy.
package sums_test

import (
	"testing"

	"github.com/katalvlaran/greenwave/sums"
)

func sumOf(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}

	return total
}

func TestSet_EmptyRepresentsZero(t *testing.T) {
	s := sums.New()
	if !s.ContainsAny(0, 0) {
		t.Fatal("empty set must represent sum 0")
	}
	witness, ok := s.MinSumValues(0, 0)
	if !ok || len(witness) != 0 {
		t.Fatalf("expected empty witness for 0, got %v (ok=%v)", witness, ok)
	}
	if s.ContainsAny(1, 5) {
		t.Fatal("empty set must represent nothing above 0")
	}
}

func TestSet_AddReachability(t *testing.T) {
	s := sums.New()
	s.Add(2)
	s.Add(3)
	s.Add(5)

	// Reachable sums are {0,2,3,5,7,8,10}.
	for _, sum := range []int{0, 2, 3, 5, 7, 8, 10} {
		if !s.ContainsAny(sum, sum) {
			t.Fatalf("sum %d must be reachable", sum)
		}
	}
	for _, sum := range []int{1, 4, 6, 9, 11} {
		if s.ContainsAny(sum, sum) {
			t.Fatalf("sum %d must not be reachable", sum)
		}
	}
}

func TestSet_MinSumValues_ReturnsSmallestInRange(t *testing.T) {
	s := sums.New()
	s.Add(2)
	s.Add(3)
	s.Add(5)

	if !s.ContainsAny(8, 10) {
		t.Fatal("range [8,10] must contain a reachable sum")
	}
	witness, ok := s.MinSumValues(8, 10)
	if !ok {
		t.Fatal("expected a witness in [8,10]")
	}
	// 8 is the smallest reachable sum in range; only the witness's sum is
	// contractual, not its ordering.
	if got := sumOf(witness); got != 8 {
		t.Fatalf("expected witness summing to 8, got %v (sum %d)", witness, got)
	}

	if _, ok := s.MinSumValues(11, 20); ok {
		t.Fatal("no witness expected above 10")
	}
}

func TestSet_DuplicateValues(t *testing.T) {
	s := sums.New()
	s.Add(1)
	s.Add(1)
	// The multiset {1,1} reaches 0, 1 and 2.
	if !s.ContainsAny(2, 2) {
		t.Fatal("sum 2 must be reachable with two 1s")
	}
	witness, _ := s.MinSumValues(2, 2)
	if sumOf(witness) != 2 || len(witness) != 2 {
		t.Fatalf("expected witness [1 1], got %v", witness)
	}
}

func TestSet_WitnessIsStable(t *testing.T) {
	s := sums.New()
	s.Add(4)
	before, _ := s.MinSumValues(4, 4)
	s.Add(2)
	s.Add(2)
	after, _ := s.MinSumValues(4, 4)
	// 4 became reachable as 2+2 too, but the first witness is kept.
	if len(after) != len(before) || sumOf(after) != 4 {
		t.Fatalf("witness for 4 changed: %v → %v", before, after)
	}
}

func TestSet_WitnessIsACopy(t *testing.T) {
	s := sums.New()
	s.Add(3)
	witness, _ := s.MinSumValues(3, 3)
	witness[0] = 99
	again, _ := s.MinSumValues(3, 3)
	if again[0] != 3 {
		t.Fatal("mutating a returned witness must not corrupt the set")
	}
}
