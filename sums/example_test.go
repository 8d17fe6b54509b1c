package sums_test

import (
	"fmt"

	"github.com/katalvlaran/greenwave/sums"
)

// ExampleSet shows reachability queries with witness reconstruction over
// the multiset {2, 3, 5}.
func ExampleSet() {
	s := sums.New()
	s.Add(2)
	s.Add(3)
	s.Add(5)

	fmt.Println("any sum in [8,10]:", s.ContainsAny(8, 10))
	witness, _ := s.MinSumValues(8, 10)
	total := 0
	for _, v := range witness {
		total += v
	}
	fmt.Println("smallest reachable sum in range:", total)
	// Output:
	// any sum in [8,10]: true
	// smallest reachable sum in range: 8
}
