// Package sim provides the deterministic discrete-event simulator that
// scores a traffic-light schedule, and the intersection reorder engine
// that rebuilds one intersection's cyclic sequence while co-simulating
// the whole fleet.
//
// Simulator protocol (integer time, synchronous):
//
//	For t = 0 … Duration, in order:
//	 1. Advance: every traveling car loses one second; cars reaching the
//	    end of a street either arrive (empty remaining path) or join that
//	    street's FIFO queue, in ascending car-id order.
//	 2. Cross: each non-empty street queue whose light is green admits
//	    exactly its head car, which starts traveling its next street on
//	    the following tick.
//	 3. Bookkeeping: every street still holding a queued car accrues one
//	    second of wait time; every car that arrived this tick scores
//	    Bonus + (Duration − t).
//
// Cars start at t = 0 already queued at the end of their first street; a
// car whose path holds a single street has no further lights to cross and
// arrives at t = 0.
//
// Determinism: the simulator's output is a pure function of the instance
// and the schedule. Ties are fixed — enqueues happen in ascending car id,
// the scoring pass serves queues in ascending street id, and the reorder
// pass serves queues in descending length (ties ascending street id).
//
// Reorder engine:
//
//	ReorderIntersection replays the fleet with the target intersection's
//	slots "open": the first car to arrive at an uncommitted second claims
//	a slot for its street, rearranging uncommitted slots (inner then outer
//	swaps over cyclic positions, driven by the sums package) so a slot of
//	the street's exact green time covers that second. Slots committed
//	earlier act as immovable barriers. The multiset of green times and the
//	set of participating streets are invariant across a reorder, and the
//	returned score equals the simulator's score on the updated schedule.
//
// Complexity: O(Duration · (cars alive + active queues)) for a scoring
// run; reorder adds the swap search, bounded by the slot count of the one
// open intersection per rearrangement.
package sim
