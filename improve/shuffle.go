package improve

import (
	"context"

	"github.com/katalvlaran/greenwave/schedule"
	"github.com/katalvlaran/greenwave/sim"
)

// Shuffle permutes the cyclic order of the intersections behind the
// worst-waiting streets, optionally granting the street up to two extra
// green seconds, and keeps the best improving permutation found. All
// randomness flows from the configured seed.
type Shuffle struct {
	opts ShuffleOptions
}

// NewShuffle returns a Shuffle improver with the given tuning.
func NewShuffle(opts ShuffleOptions) *Shuffle {
	return &Shuffle{opts: opts}
}

// Improve implements Improver.
func (sh *Shuffle) Improve(ctx context.Context, sched *schedule.Schedule) (*schedule.Schedule, int64, bool) {
	Log.Infof("shuffle improver: %d min wait time, %d max streets, %d max shuffles",
		sh.opts.MinWaitTime, sh.opts.MaxStreets, sh.opts.MaxShuffles)

	stats := sim.Run(sched)
	rng := rngFromSeed(sh.opts.Seed)

	streets := make([]waited, 0, len(stats.TotalWaitTime))
	for streetID, wait := range stats.TotalWaitTime {
		if wait >= sh.opts.MinWaitTime {
			streets = append(streets, waited{id: streetID, wait: wait})
		}
	}
	sortByWait(streets)
	if len(streets) > sh.opts.MaxStreets {
		streets = streets[:sh.opts.MaxStreets]
	}

	bestCount := 0
	bestScore := stats.Score
	var bestSched *schedule.Schedule

	for _, street := range streets {
		if sched.IsStreetAlwaysGreen(street.id) {
			// Permanently green; nothing a permutation could gain.
			continue
		}
		interID := sched.IntersectionID(street.id)
		shuffles := boundedFactorial(sched.NumStreetsIn(interID), sh.opts.MaxShuffles)
		Log.Infof("street %d: %d total wait time, %d streets in the intersection, %d shuffles",
			street.id, street.wait, sched.NumStreetsIn(interID), shuffles)

		for addTime := 0; addTime <= 2; addTime++ {
			candidate := sched.Clone()
			candidate.AddStreetTime(street.id, addTime)
			for n := 0; n <= shuffles; n++ {
				if ctx.Err() != nil {
					return bestSched, bestScore, bestSched != nil
				}
				if candScore := sim.Run(candidate).Score; candScore > bestScore {
					Log.Infof("=> new best score by adding %d to street %d: %d",
						addTime, street.id, candScore)
					bestCount++
					bestScore = candScore
					bestSched = candidate.Clone()
				}
				candidate.Shuffle(interID, rng)
			}
		}

		if bestCount >= 5 {
			break
		}
	}

	return bestSched, bestScore, bestSched != nil
}
