// Package sums implements the subset-sum set with witness reconstruction.
package sums

// Set records which sums are representable as subsets of the values added
// so far, keeping one witnessing value sequence per representable sum.
//
// The zero value is not ready for use; call New.
type Set struct {
	// witness maps each representable sum to one value sequence reaching
	// it. Sum 0 maps to the empty sequence.
	witness map[int][]int
}

// New returns a set representing only the empty subset: sum 0 with an
// empty witness.
func New() *Set {
	return &Set{witness: map[int][]int{0: {}}}
}

// Add inserts value into the multiset. Afterwards every previously
// representable sum s also has s+value representable; sums that were
// already representable keep their existing witness.
//
// Complexity: O(representable sums), plus witness copies for new sums.
func (s *Set) Add(value int) {
	fresh := make(map[int][]int)
	for sum, values := range s.witness {
		next := sum + value
		if _, ok := s.witness[next]; ok {
			continue
		}
		if _, ok := fresh[next]; ok {
			continue
		}
		extended := make([]int, 0, len(values)+1)
		extended = append(extended, values...)
		extended = append(extended, value)
		fresh[next] = extended
	}
	for sum, values := range fresh {
		s.witness[sum] = values
	}
}

// ContainsAny reports whether any sum in the inclusive range [lo, hi] is
// representable. An empty range (lo > hi) is never representable.
func (s *Set) ContainsAny(lo, hi int) bool {
	for sum := lo; sum <= hi; sum++ {
		if _, ok := s.witness[sum]; ok {
			return true
		}
	}

	return false
}

// MinSumValues returns a copy of the witness for the smallest representable
// sum in the inclusive range [lo, hi], and whether one exists.
func (s *Set) MinSumValues(lo, hi int) ([]int, bool) {
	for sum := lo; sum <= hi; sum++ {
		if values, ok := s.witness[sum]; ok {
			out := make([]int, len(values))
			copy(out, values)

			return out, true
		}
	}

	return nil, false
}
