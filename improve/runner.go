package improve

import (
	"context"

	"github.com/katalvlaran/greenwave/schedule"
	"github.com/katalvlaran/greenwave/sim"
)

// Runner repeats an improver until it finds no further improvement, the
// round budget runs out, or the context is canceled.
type Runner struct {
	// MaxRounds bounds the number of improvement rounds; 0 means run
	// until no improvement is found.
	MaxRounds int
}

// Run drives the improver starting from initial and returns the best
// schedule found with its score. The initial schedule is never mutated;
// on cancellation the best-so-far is returned.
func (r Runner) Run(ctx context.Context, improver Improver, initial *schedule.Schedule) (*schedule.Schedule, int64) {
	if r.MaxRounds > 0 {
		Log.Infof("incremental improver: max %d rounds", r.MaxRounds)
	} else {
		Log.Info("incremental improver: continuous rounds")
	}

	best := initial.Clone()
	bestScore := sim.Run(best).Score

	for round := 1; r.MaxRounds == 0 || round <= r.MaxRounds; round++ {
		improved, score, ok := improver.Improve(ctx, best)
		if !ok {
			Log.Infof("round %d, no improvement", round)

			break
		}
		best, bestScore = improved, score
		Log.Infof("round %d, new score %d", round, bestScore)

		if ctx.Err() != nil {
			Log.Warnf("termination request received after %d rounds", round)

			break
		}
	}

	return best, bestScore
}
