// Package sums maintains the set of subset sums achievable over a multiset
// of positive integers, with witness reconstruction.
//
// Overview:
//
//   - Add(v) extends the reachable set: every previously reachable sum s
//     gains s+v, and v itself becomes reachable. The empty subset makes 0
//     reachable from the start.
//   - For each reachable sum, one witnessing value sequence is stored; the
//     first witness found for a sum is kept and never overwritten, so
//     witnesses stay stable as more values arrive.
//   - ContainsAny and MinSumValues query an inclusive range in ascending
//     order, which makes MinSumValues return the witness of the smallest
//     reachable sum in the range.
//
// The intersection reorder engine uses this to decide whether some subset
// of uncommitted slot lengths can pad a cyclic window so that a target
// slot lands on the current second.
//
// Complexity:
//
//   - Add:      O(reachable sums) per call (each new sum copies one witness).
//   - Queries:  O(hi − lo) hash lookups.
//   - Space:    O(reachable sums · witness length).
//
// Witness non-uniqueness: callers may rely only on the witness's sum and
// value multiset, never on a particular ordering.
package sums
