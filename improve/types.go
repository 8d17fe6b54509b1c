// Package improve defines the Improver contract, options, and the shared
// RNG policy.
package improve

import (
	"context"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/greenwave/schedule"
)

// Log is the package logger; replace it to redirect or silence progress
// output. Defaults to the logrus standard logger.
var Log logrus.FieldLogger = logrus.StandardLogger()

// Improver proposes one accepted improvement per call.
type Improver interface {
	// Improve searches for a schedule strictly better than sched and
	// returns it with its score. ok is false when no improving move was
	// found or the context was canceled first. sched itself is treated
	// as read-only; every candidate is evaluated on a clone.
	Improve(ctx context.Context, sched *schedule.Schedule) (improved *schedule.Schedule, score int64, ok bool)
}

// PhasedOptions tunes the Phased improver.
//
// MaxAddTime         – largest green-time increase tried in phase 4 (≥ 0).
// MaxSubTime         – largest green-time decrease tried in phase 4 (≥ 0).
// AddNewStreets      – whether phase 3 may add streets absent from the
// schedule.
// MaxStreetsPerInter – intersections with more streets than this are
// skipped when adding time (reordering them is too expensive to pay off).
// Workers            – parallel candidate evaluations in phase 1
// (1 = sequential; the accepted move is worker-count independent).
type PhasedOptions struct {
	MaxAddTime         int
	MaxSubTime         int
	AddNewStreets      bool
	MaxStreetsPerInter int
	Workers            int
}

// DefaultPhasedOptions returns the tuning the solver ships with.
func DefaultPhasedOptions() PhasedOptions {
	return PhasedOptions{
		MaxAddTime:         6,
		MaxSubTime:         3,
		AddNewStreets:      true,
		MaxStreetsPerInter: 30,
		Workers:            1,
	}
}

// ShuffleOptions tunes the Shuffle improver.
//
// MinWaitTime – streets below this total wait time are not worth trying.
// MaxStreets  – how many of the worst streets to try per round.
// MaxShuffles – permutations tried per street (bounded by factorial).
// Seed        – RNG seed; 0 selects the fixed default seed.
type ShuffleOptions struct {
	MinWaitTime int
	MaxStreets  int
	MaxShuffles int
	Seed        int64
}

// DefaultShuffleOptions returns the tuning the solver ships with.
func DefaultShuffleOptions() ShuffleOptions {
	return ShuffleOptions{
		MinWaitTime: 10,
		MaxStreets:  10,
		MaxShuffles: 10,
	}
}

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// Arbitrary but stable, to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// boundedFactorial returns min(num!, max); used to size permutation
// budgets without overflowing.
func boundedFactorial(num, max int) int {
	fact := 1
	for n := num; n >= 2; n-- {
		fact *= n
		if fact > max {
			return max
		}
	}
	if fact > max {
		return max
	}

	return fact
}
