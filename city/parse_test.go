// Package city_test contains unit tests for the instance parser, covering
// the happy path, every sentinel error, and line-number reporting.
package city_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/greenwave/city"
)

// sample is the two-street, one-car instance used across tests:
// street a runs 0→1 in 1s, street b runs 1→0 in 2s, one car drives a b.
const sample = `6 2 2 1 1000
0 1 a 1
1 0 b 2
2 a b
`

func TestParse_Sample(t *testing.T) {
	inst, err := city.ParseString(sample)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if inst.Duration != 6 || inst.NumIntersections != 2 || inst.Bonus != 1000 {
		t.Fatalf("header mismatch: %+v", inst)
	}
	if len(inst.Streets) != 2 {
		t.Fatalf("expected 2 streets, got %d", len(inst.Streets))
	}
	if inst.Streets[0] != (city.Street{Name: "a", Start: 0, End: 1, TravelTime: 1}) {
		t.Fatalf("street 0 mismatch: %+v", inst.Streets[0])
	}
	if len(inst.CarPaths) != 1 || len(inst.CarPaths[0]) != 2 {
		t.Fatalf("car paths mismatch: %+v", inst.CarPaths)
	}
	if inst.CarPaths[0][0] != 0 || inst.CarPaths[0][1] != 1 {
		t.Fatalf("car path must reference streets by id: %+v", inst.CarPaths[0])
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
		line  int
	}{
		{"empty input", "", city.ErrMissingLine, 1},
		{"short header", "6 2 2\n", city.ErrFieldCount, 1},
		{"header not a number", "6 2 x 1 1000\n", city.ErrBadNumber, 1},
		{"missing street lines", "6 2 2 1 1000\n0 1 a 1\n", city.ErrMissingLine, 3},
		{"street field count", "6 2 1 0 1000\n0 1 a\n", city.ErrFieldCount, 2},
		{"street id out of range", "6 2 1 0 1000\n0 7 a 1\n", city.ErrIDRange, 2},
		{"zero travel time", "6 2 1 0 1000\n0 1 a 0\n", city.ErrBadNumber, 2},
		{"missing car lines", "6 2 1 1 1000\n0 1 a 1\n", city.ErrMissingLine, 3},
		{"unknown street", "6 2 1 1 1000\n0 1 a 1\n1 zzz\n", city.ErrUnknownStreet, 3},
		{"car field count", "6 2 1 1 1000\n0 1 a 1\n2 a\n", city.ErrFieldCount, 3},
		{"zero-length path", "6 2 1 1 1000\n0 1 a 1\n0\n", city.ErrBadNumber, 3},
		{"broken path", "6 2 2 1 1000\n0 1 a 1\n0 1 b 1\n2 a b\n", city.ErrBrokenPath, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := city.ParseString(tc.input)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			var perr *city.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if perr.Line != tc.line {
				t.Fatalf("expected line %d, got %d", tc.line, perr.Line)
			}
		})
	}
}
