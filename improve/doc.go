// Package improve drives iterative schedule improvement: improvers
// propose candidate edits, re-simulate them, and keep only moves that
// strictly increase the score.
//
// Improvers:
//
//   - Phased: the main workhorse. Phase 1 reorders windows of
//     intersections (descending total wait time) with the sim package's
//     reorder engine. Phase 2 adds one second to waiting streets, phase 3
//     adds streets missing from the schedule, and phase 4 escalates,
//     adding or subtracting larger deltas per street — every candidate
//     re-reordered and re-scored. In phases 1–3 the first strictly
//     improving candidate wins the round; in phase 4 the best improving
//     candidate of the first intersection that yields one wins.
//   - Shuffle: randomly permutes the cyclic order of the intersections
//     behind the worst-waiting streets, with 0–2 extra green seconds,
//     keeping the best improving permutation. Seeded and reproducible.
//
// Runner repeats any improver for a bounded (or unbounded) number of
// rounds until no improvement is found.
//
// Cancellation: every loop checks ctx at candidate boundaries — between
// windows, streets, and intersections. On cancellation the best schedule
// found so far is returned; the incumbent passed in is never mutated.
//
// Parallelism: candidate evaluation owns a clone per worker, so workers
// share only the read-only instance. The accepted candidate is always
// the first improving one in enumeration order, so results do not depend
// on the worker count.
package improve
