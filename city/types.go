// Package city defines the instance model shared by all greenwave
// subsystems, together with the sentinel errors of its text parser.
package city

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped in *ParseError) by Parse.
var (
	// ErrMissingLine indicates the input ended before all declared street
	// or car lines were read, or the header line is absent entirely.
	ErrMissingLine = errors.New("city: missing input line")

	// ErrFieldCount indicates a line with the wrong number of fields.
	ErrFieldCount = errors.New("city: wrong field count")

	// ErrBadNumber indicates a field that must be an integer but is not,
	// or an integer outside its allowed range (e.g. a zero travel time).
	ErrBadNumber = errors.New("city: invalid number")

	// ErrUnknownStreet indicates a car path referencing a street name that
	// was never declared.
	ErrUnknownStreet = errors.New("city: unknown street")

	// ErrIDRange indicates a street endpoint outside [0, NumIntersections).
	ErrIDRange = errors.New("city: intersection id out of range")

	// ErrBrokenPath indicates consecutive path streets that do not connect:
	// the end intersection of one is not the start of the next.
	ErrBrokenPath = errors.New("city: disconnected car path")
)

// ParseError reports a parse failure at a specific input line.
// It wraps one of the package sentinels, so errors.Is works through it.
type ParseError struct {
	// Line is the 1-based line number at which parsing failed.
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

// Street is one directed road segment of the city.
//
// A street runs from intersection Start to intersection End and takes
// TravelTime seconds to traverse once a car has crossed the light at its
// start. Cars queue at the light sitting at the street's End.
type Street struct {
	// Name is the unique identifier used by the text formats.
	Name string
	// Start is the id of the intersection the street leaves.
	Start int
	// End is the id of the intersection the street enters; the traffic
	// light governing this street belongs to End.
	End int
	// TravelTime is the positive number of seconds needed to drive the
	// street end to end.
	TravelTime int
}

// Instance is the immutable description of one optimization problem.
//
// Invariants (established by Parse, assumed everywhere else):
//   - street names are unique;
//   - every street endpoint is a valid intersection id;
//   - consecutive streets of a car path connect end-to-start;
//   - every car path has length ≥ 1.
type Instance struct {
	// Duration is the simulation horizon D in seconds.
	Duration int
	// NumIntersections is the number of intersections in the city.
	NumIntersections int
	// Bonus is the fixed score B awarded for each car that arrives by D.
	Bonus int
	// Streets lists all streets in input order; a street's id is its index.
	Streets []Street
	// CarPaths lists, per car (id = index), the ordered street ids of its
	// journey. The car starts at time 0 at the end of its first street.
	CarPaths [][]int
}
