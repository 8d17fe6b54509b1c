// Package greenwave computes traffic-light schedules for a city of
// intersections, directed streets and fixed-horizon car journeys, maximizing
// a score tied to early car arrivals.
//
// 🚦 What is greenwave?
//
//	A deterministic solver toolkit that brings together:
//
//	  • A bit-exact discrete-event simulator that scores any schedule
//	  • Constructive schedulers: naive, traffic-proportional, adaptive
//	  • An iterative improver built around a constrained slot-permutation
//	    search (the intersection reorder engine)
//
// ✨ Why choose greenwave?
//
//   - Deterministic          — same instance + schedule ⇒ same score, always
//   - Value-semantic         — schedules clone cheaply at candidate boundaries
//   - Cancelable             — improvers honor context cancellation gracefully
//   - Composable             — every subsystem is a standalone package
//
// Under the hood, everything is organized under six subpackages:
//
//	city/      — immutable instance model (streets, car paths) + text parsing
//	schedule/  — mutable intersection → cyclic green phases mapping + codec
//	sim/       — scoring simulator and the intersection reorder engine
//	sums/      — subset-sum helper with witness reconstruction
//	construct/ — constructive schedulers producing initial solutions
//	improve/   — phased and shuffle improvers keeping score-increasing moves
//
// Quick ASCII example:
//
//	    ──a──▶(1)──b──▶
//	           │
//	    ──c──▶─┘
//
//	intersection 1 cycles green between incoming streets a and c;
//	cars queue FIFO at the stop line and cross one per green second.
//
// See cmd/greenwave for the command-line front end.
//
//	go get github.com/katalvlaran/greenwave
package greenwave
