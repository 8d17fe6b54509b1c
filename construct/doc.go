// Package construct provides the constructive schedulers that turn a raw
// instance into an initial schedule for the improvers to refine.
//
// Schedulers:
//
//   - Naive: every street crossed by at least one car gets one second of
//     green, in input order. The cheapest sane baseline.
//   - Traffic: like Naive, but green time grows with demand — each street
//     gets log10 of its car count relative to the quietest street of the
//     same intersection, floored at one second.
//   - Adaptive: replays the fleet with every slot undecided and assigns
//     each intersection's one-second slots first-come-first-served, so the
//     cyclic order mirrors real arrival order. Cars that cannot finish
//     inside the horizon are ignored when deciding which streets deserve
//     a slot (their streets may still be included by other cars).
//
// All schedulers are deterministic and never mutate the instance. They
// produce schedules whose green times are ≥ 1 and whose intersections
// contain only streets ending there.
package construct
