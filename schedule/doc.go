// Package schedule provides the mutable mapping from intersections to
// cyclic green-phase sequences, plus the text codec used to load and save
// solutions.
//
// Overview:
//
//   - A Schedule assigns each intersection an ordered sequence of turns,
//     one (street, green time) pair per incoming street it serves. The
//     sequence repeats with period Cycle = Σ green times.
//   - Street s_j of an intersection is green at second t exactly when
//     t mod Cycle falls inside s_j's half-open interval of the cycle.
//   - An intersection with no turns (or absent from the schedule) is never
//     green; queues at its incoming streets only grow.
//
// Mutation contract:
//
//   - All mutations go through AddStreet / AddStreetTime / SubStreetTime /
//     ResetIntersection / Shuffle, which keep Cycle consistent with the
//     turn list at all times.
//   - Schedules are value-semantic: Clone yields an independent deep copy,
//     which is how improvers evaluate candidate moves without touching the
//     incumbent.
//
// Text format (the submission format):
//
//	K                 — number of scheduled intersections
//	<intersection id>
//	<n>               — streets in this intersection's cycle
//	<street name> <green time>   (n lines, cyclic order, green time ≥ 1)
//
// Encode writes intersections in ascending id order and omits empty ones;
// Decode accepts any order. Decode validates street names, green times,
// duplicates, and that every listed street actually ends at the block's
// intersection, reporting failures as *ParseError with a line number.
package schedule
