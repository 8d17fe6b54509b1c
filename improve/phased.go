package improve

import (
	"context"
	"sort"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/greenwave/schedule"
	"github.com/katalvlaran/greenwave/sim"
)

// Phased is the reorder-driven improver: it walks intersections in
// descending total-wait order and tries, in escalating phases, to
// reorder them, grow the green times of waiting streets, schedule absent
// streets, and finally shrink idle streets. In phases 1–3 the first
// strictly improving candidate is accepted and ends the round; phase 4
// accepts the best improving candidate of the first intersection that
// yields one.
type Phased struct {
	opts PhasedOptions
}

// NewPhased returns a Phased improver with the given tuning.
func NewPhased(opts PhasedOptions) *Phased {
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	return &Phased{opts: opts}
}

// waited pairs an entity (street or intersection) with its wait time.
type waited struct {
	id   int
	wait int
}

// Improve implements Improver.
func (p *Phased) Improve(ctx context.Context, sched *schedule.Schedule) (*schedule.Schedule, int64, bool) {
	stats := sim.Run(sched)

	// Aggregate wait time per intersection, skipping streets whose light
	// is permanently green (nothing to gain there).
	interWait := make(map[int]int)
	for streetID, wait := range stats.TotalWaitTime {
		if sched.IsStreetAlwaysGreen(streetID) {
			continue
		}
		interWait[sched.IntersectionID(streetID)] += wait
	}
	inters := lo.MapToSlice(interWait, func(id, wait int) waited { return waited{id: id, wait: wait} })
	sortByWait(inters)

	if improved, score, ok := p.phase1(ctx, sched, stats.Score, inters); ok || ctx.Err() != nil {
		return improved, score, ok
	}

	// Streets with non-zero wait whose lights are not always green.
	streets := make([]waited, 0, len(stats.TotalWaitTime))
	for streetID, wait := range stats.TotalWaitTime {
		if !sched.IsStreetAlwaysGreen(streetID) {
			streets = append(streets, waited{id: streetID, wait: wait})
		}
	}
	sortByWait(streets)

	if improved, score, ok := p.phase2(ctx, sched, stats.Score, streets); ok || ctx.Err() != nil {
		return improved, score, ok
	}
	if improved, score, ok := p.phase3(ctx, sched, stats.Score, streets); ok || ctx.Err() != nil {
		return improved, score, ok
	}

	return p.phase4(ctx, sched, &stats, inters)
}

// sortByWait orders descending by wait time, ties ascending by id, so
// candidate enumeration is reproducible.
func sortByWait(entries []waited) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].wait != entries[j].wait {
			return entries[i].wait > entries[j].wait
		}

		return entries[i].id < entries[j].id
	})
}

// phase1 reorders sliding windows of intersections, smallest windows
// first, accepting the first improvement. Candidates are evaluated in
// batches of opts.Workers; acceptance order stays enumeration order.
func (p *Phased) phase1(ctx context.Context, sched *schedule.Schedule, curr int64, inters []waited) (*schedule.Schedule, int64, bool) {
	Log.Infof("phased improver, phase 1: reordering %d intersections", len(inters))

	type batchItem struct {
		window []int
		clone  *schedule.Schedule
		score  int64
	}
	batch := make([]batchItem, 0, p.opts.Workers)

	// flush evaluates the pending batch in parallel and returns the
	// first improving candidate in enumeration order.
	flush := func() (*schedule.Schedule, int64, bool) {
		g, _ := errgroup.WithContext(ctx)
		for i := range batch {
			item := &batch[i]
			g.Go(func() error {
				item.clone = sched.Clone()
				item.score = sim.ReorderIntersections(item.clone, item.window...)

				return nil
			})
		}
		_ = g.Wait()
		for i := range batch {
			if batch[i].score > curr {
				Log.Infof("new best score %d after reordering %d intersections", batch[i].score, len(batch[i].window))

				return batch[i].clone, batch[i].score, true
			}
		}
		batch = batch[:0]

		return nil, 0, false
	}

	for count := 1; count <= len(inters); count++ {
		for at := 0; at+count <= len(inters); at++ {
			if ctx.Err() != nil {
				return nil, 0, false
			}
			window := make([]int, count)
			for i := 0; i < count; i++ {
				window[i] = inters[at+i].id
			}
			batch = append(batch, batchItem{window: window})
			if len(batch) == p.opts.Workers {
				if improved, score, ok := flush(); ok {
					return improved, score, true
				}
			}
		}
	}
	if len(batch) > 0 {
		if improved, score, ok := flush(); ok {
			return improved, score, true
		}
	}

	return nil, 0, false
}

// phase2 adds one second to the traffic light of each waiting street, in
// descending wait order, reordering its intersection after the change.
func (p *Phased) phase2(ctx context.Context, sched *schedule.Schedule, curr int64, streets []waited) (*schedule.Schedule, int64, bool) {
	if p.opts.MaxAddTime == 0 {
		Log.Info("phased improver, phase 2: skipping since MaxAddTime is 0")

		return nil, 0, false
	}
	Log.Infof("phased improver, phase 2: adding 1 sec to %d waiting streets", len(streets))

	for count, street := range streets {
		if ctx.Err() != nil {
			return nil, 0, false
		}
		interID := sched.IntersectionID(street.id)
		numStreets := sched.NumStreetsIn(interID)
		if numStreets > p.opts.MaxStreetsPerInter {
			Log.Debugf("phase 2: skipping street %d (%d/%d), %d sec wait, intersection %d has %d streets",
				street.id, count+1, len(streets), street.wait, interID, numStreets)

			continue
		}

		clone := sched.Clone()
		clone.AddStreetTime(street.id, 1)
		score := sim.ReorderIntersection(clone, interID)
		if score > curr {
			Log.Infof("new best score %d after adding 1 sec to street %d (wait %d), intersection %d, %d street(s) examined",
				score, street.id, street.wait, interID, count+1)

			return clone, score, true
		}
	}

	return nil, 0, false
}

// phase3 schedules streets that cars wait on but that are absent from
// the schedule, one green second each.
func (p *Phased) phase3(ctx context.Context, sched *schedule.Schedule, curr int64, streets []waited) (*schedule.Schedule, int64, bool) {
	if !p.opts.AddNewStreets {
		Log.Info("phased improver, phase 3: skipping (AddNewStreets is false)")

		return nil, 0, false
	}
	Log.Info("phased improver, phase 3: adding waiting streets missing from the schedule")

	for _, street := range streets {
		if ctx.Err() != nil {
			return nil, 0, false
		}
		interID := sched.IntersectionID(street.id)
		if scheduledIn(sched, interID, street.id) {
			continue
		}

		Log.Debugf("phase 3: adding new street %d, %d sec wait, to intersection %d",
			street.id, street.wait, interID)

		clone := sched.Clone()
		clone.AddStreetTime(street.id, 1)
		score := sim.ReorderIntersection(clone, interID)
		if score > curr {
			Log.Infof("new best score %d after adding new street %d with time 1 (wait %d) to intersection %d",
				score, street.id, street.wait, interID)

			return clone, score, true
		}
	}

	return nil, 0, false
}

// phase4 escalates per-street green-time deltas: round k tries adding
// k+1 seconds to waiting streets and subtracting k seconds from idle
// ones, stopping when both deltas exhaust their caps.
func (p *Phased) phase4(ctx context.Context, sched *schedule.Schedule, stats *sim.Stats, inters []waited) (*schedule.Schedule, int64, bool) {
	for round := 1; ; round++ {
		addTime, subTime := 0, 0
		if round < p.opts.MaxAddTime {
			addTime = round + 1
		}
		if round <= p.opts.MaxSubTime {
			subTime = round
		}
		if addTime == 0 && subTime == 0 {
			return nil, 0, false
		}
		if improved, score, ok := p.phase4Round(ctx, sched, stats, inters, addTime, subTime); ok || ctx.Err() != nil {
			return improved, score, ok
		}
	}
}

// phase4Round walks intersections in descending total-wait order and,
// inside each, tries one delta per street: +addTime where cars wait,
// −subTime where none do. The best improvement inside the first
// intersection that yields one is accepted.
func (p *Phased) phase4Round(ctx context.Context, sched *schedule.Schedule, stats *sim.Stats, inters []waited, addTime, subTime int) (*schedule.Schedule, int64, bool) {
	Log.Infof("phased improver, phase 4: add %d sec / sub %d sec across %d intersections",
		addTime, subTime, len(inters))

	bestScore := stats.Score
	var bestSched *schedule.Schedule

	for count, inter := range inters {
		turns := sched.Turns(inter.id)
		Log.Debugf("phase 4: intersection %d (%d/%d), %d total wait, %d streets",
			inter.id, count+1, len(inters), inter.wait, len(turns))

		for _, turn := range turns {
			if ctx.Err() != nil {
				return nil, 0, false
			}
			wait := stats.TotalWaitTime[turn.Street]

			if wait > 0 {
				if addTime == 0 || len(turns) > p.opts.MaxStreetsPerInter {
					continue
				}
			} else if subTime == 0 || turn.Green < subTime {
				continue
			}

			clone := sched.Clone()
			if wait > 0 {
				clone.AddStreetTime(turn.Street, addTime)
			} else {
				clone.SubStreetTime(turn.Street, subTime)
			}
			score := sim.ReorderIntersection(clone, inter.id)
			if score > bestScore {
				bestScore = score
				bestSched = clone
				Log.Infof("new best score %d after %+d sec on street %d (green %d, wait %d), intersection %d",
					score, deltaFor(wait, addTime, subTime), turn.Street, turn.Green, wait, inter.id)
			}
		}

		if bestSched != nil {
			Log.Infof("new best score %d after updating intersection %d (total wait %d, %d streets), %d intersection(s) examined",
				bestScore, inter.id, inter.wait, len(turns), count+1)

			return bestSched, bestScore, true
		}
	}

	return nil, 0, false
}

// deltaFor renders the signed delta actually applied to a street.
func deltaFor(wait, addTime, subTime int) int {
	if wait > 0 {
		return addTime
	}

	return -subTime
}

// scheduledIn reports whether the street already has a turn at the
// intersection.
func scheduledIn(sched *schedule.Schedule, interID, streetID int) bool {
	for _, turn := range sched.Turns(interID) {
		if turn.Street == streetID {
			return true
		}
	}

	return false
}
