// Package construct defines the Scheduler interface and shared helpers.
package construct

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/greenwave/city"
	"github.com/katalvlaran/greenwave/schedule"
)

// Scheduler produces an initial schedule from a raw instance.
type Scheduler interface {
	// Schedule builds a fresh schedule for the instance. Implementations
	// are deterministic and leave the instance untouched.
	Schedule(inst *city.Instance) *schedule.Schedule
}

// Log is the package logger; replace it to redirect or silence progress
// output. Defaults to the logrus standard logger.
var Log logrus.FieldLogger = logrus.StandardLogger()

// crossedByCars returns, per street, how many cars must cross its light:
// every street of a path except the last (a car on its final street has
// no light left to cross).
func crossedByCars(inst *city.Instance) map[int]int {
	counts := make(map[int]int)
	for _, path := range inst.CarPaths {
		for _, streetID := range path[:len(path)-1] {
			counts[streetID]++
		}
	}

	return counts
}
