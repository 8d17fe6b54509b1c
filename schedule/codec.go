package schedule

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/greenwave/city"
)

// Encode writes the schedule in the submission text format: a count line
// followed by one block per scheduled intersection. Blocks are emitted in
// ascending intersection id order so output is deterministic; empty
// intersections (cycle 0) are omitted since they carry no information.
func (s *Schedule) Encode(w io.Writer) error {
	ids := make([]int, 0, len(s.inters))
	for id, inter := range s.inters {
		if inter.Cycle > 0 {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(ids))
	for _, id := range ids {
		inter := s.inters[id]
		fmt.Fprintln(bw, id)
		fmt.Fprintln(bw, len(inter.Turns))
		for _, turn := range inter.Turns {
			fmt.Fprintln(bw, s.inst.Streets[turn.Street].Name, turn.Green)
		}
	}

	return bw.Flush()
}

// String renders the schedule in the submission text format.
func (s *Schedule) String() string {
	var b strings.Builder
	_ = s.Encode(&b)

	return b.String()
}

// Decode reads a schedule in the submission text format, validating it
// against the instance. Failures are reported as *ParseError carrying the
// offending 1-based line number and wrapping a package sentinel.
//
// Complexity: O(total input size · streets per intersection).
func Decode(inst *city.Instance, r io.Reader) (*Schedule, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0

	nextInt := func(what string) (int, error) {
		if !sc.Scan() {
			return 0, &ParseError{Line: line + 1, Err: fmt.Errorf("%w: expected %s", ErrMissingLine, what)}
		}
		line++
		n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err != nil {
			return 0, &ParseError{Line: line, Err: fmt.Errorf("%w: %s %q", ErrBadNumber, what, sc.Text())}
		}

		return n, nil
	}

	nameIndex := make(map[string]int, len(inst.Streets))
	for id, street := range inst.Streets {
		nameIndex[street.Name] = id
	}

	sched := New(inst)
	numBlocks, err := nextInt("intersection count")
	if err != nil {
		return nil, err
	}

	for b := 0; b < numBlocks; b++ {
		interID, err := nextInt("intersection id")
		if err != nil {
			return nil, err
		}
		if interID < 0 || interID >= inst.NumIntersections {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("%w: %d, want [0,%d)", ErrIDRange, interID, inst.NumIntersections)}
		}
		numTurns, err := nextInt("street count")
		if err != nil {
			return nil, err
		}

		seen := make(map[int]bool, numTurns)
		for i := 0; i < numTurns; i++ {
			if !sc.Scan() {
				return nil, &ParseError{Line: line + 1, Err: fmt.Errorf("%w: expected street line", ErrMissingLine)}
			}
			line++
			fields := strings.Fields(sc.Text())
			if len(fields) != 2 {
				return nil, &ParseError{Line: line, Err: fmt.Errorf("%w: street line must have 2 fields, got %d", ErrBadNumber, len(fields))}
			}
			streetID, ok := nameIndex[fields[0]]
			if !ok {
				return nil, &ParseError{Line: line, Err: fmt.Errorf("%w: %q", ErrUnknownStreet, fields[0])}
			}
			green, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, &ParseError{Line: line, Err: fmt.Errorf("%w: green time %q", ErrBadNumber, fields[1])}
			}
			if green < 1 {
				return nil, &ParseError{Line: line, Err: fmt.Errorf("%w: street %q has green time %d", ErrBadGreenTime, fields[0], green)}
			}
			if inst.Streets[streetID].End != interID {
				return nil, &ParseError{Line: line, Err: fmt.Errorf("%w: %q ends at %d, block is for %d", ErrWrongIntersection, fields[0], inst.Streets[streetID].End, interID)}
			}
			if seen[streetID] {
				return nil, &ParseError{Line: line, Err: fmt.Errorf("%w: %q", ErrDuplicateStreet, fields[0])}
			}
			seen[streetID] = true
			sched.AddStreet(interID, streetID, green)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, &ParseError{Line: line, Err: err}
	}

	return sched, nil
}
