// Package schedule defines the schedule representation and the sentinel
// errors of its text codec.
package schedule

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/greenwave/city"
)

// Sentinel errors returned (wrapped in *ParseError) by Decode.
var (
	// ErrMissingLine indicates the input ended before the count line or
	// inside a block.
	ErrMissingLine = errors.New("schedule: missing input line")

	// ErrBadNumber indicates a non-integer where an integer is required,
	// or a street line that does not have exactly two fields.
	ErrBadNumber = errors.New("schedule: invalid number")

	// ErrUnknownStreet indicates a street name absent from the instance.
	ErrUnknownStreet = errors.New("schedule: unknown street")

	// ErrDuplicateStreet indicates a street listed twice in one block.
	ErrDuplicateStreet = errors.New("schedule: duplicate street in intersection")

	// ErrIDRange indicates an intersection id outside [0, NumIntersections).
	ErrIDRange = errors.New("schedule: intersection id out of range")

	// ErrWrongIntersection indicates a street listed under an intersection
	// that is not its end intersection.
	ErrWrongIntersection = errors.New("schedule: street does not end at intersection")

	// ErrBadGreenTime indicates a green time < 1 in the input.
	ErrBadGreenTime = errors.New("schedule: green time must be ≥ 1")
)

// ParseError reports a codec failure at a specific input line.
type ParseError struct {
	// Line is the 1-based line number at which decoding failed.
	Line int
	// Err is the underlying sentinel (possibly with extra context).
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the underlying sentinel to errors.Is / errors.As.
func (e *ParseError) Unwrap() error { return e.Err }

// Turn is one slot of an intersection's cyclic sequence: the street that
// is lit and the integer number of seconds it stays green.
type Turn struct {
	Street int
	Green  int
}

// Intersection carries one intersection's cyclic turn sequence and its
// derived cycle length. The zero value is a valid never-green intersection.
type Intersection struct {
	// Turns lists the green phases in cyclic order.
	Turns []Turn
	// Cycle is the sum of green times across Turns; 0 means never green.
	Cycle int
}

// Schedule maps intersection ids to their cyclic green-phase sequences.
// It keeps a reference to the read-only instance to resolve street names
// and end intersections; the instance itself is never mutated.
type Schedule struct {
	inst   *city.Instance
	inters map[int]*Intersection
}

// New returns an empty schedule for the given instance. Every intersection
// starts unscheduled (never green).
func New(inst *city.Instance) *Schedule {
	return &Schedule{
		inst:   inst,
		inters: make(map[int]*Intersection),
	}
}

// Instance returns the read-only instance this schedule belongs to.
func (s *Schedule) Instance() *city.Instance { return s.inst }
