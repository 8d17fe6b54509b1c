package city

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads an instance in the city text format from r.
//
// Layout:
//  1. Header line: D N_I N_S N_C B (five non-negative integers).
//  2. N_S street lines: start end name travel_time.
//  3. N_C car lines: L s_1 … s_L with streets referenced by name.
//
// Every failure is reported as a *ParseError with the offending 1-based
// line number, wrapping one of the package sentinels.
//
// Complexity: O(total input size).
func Parse(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0

	// nextLine advances to the following input line, tracking its number.
	nextLine := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++

		return sc.Text(), true
	}

	// 1) Header: exactly five integers.
	header, ok := nextLine()
	if !ok {
		return nil, &ParseError{Line: 1, Err: fmt.Errorf("%w: empty input", ErrMissingLine)}
	}
	fields, err := parseInts(strings.Fields(header), 5)
	if err != nil {
		return nil, &ParseError{Line: line, Err: err}
	}
	inst := &Instance{
		Duration:         fields[0],
		NumIntersections: fields[1],
		Bonus:            fields[4],
	}
	numStreets, numCars := fields[2], fields[3]

	// 2) Streets: build the name index as we go.
	nameIndex := make(map[string]int, numStreets)
	inst.Streets = make([]Street, 0, numStreets)
	for i := 0; i < numStreets; i++ {
		text, ok := nextLine()
		if !ok {
			return nil, &ParseError{Line: line + 1, Err: fmt.Errorf("%w: expected %d street lines, got %d", ErrMissingLine, numStreets, i)}
		}
		street, err := parseStreet(text, inst.NumIntersections)
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		nameIndex[street.Name] = i
		inst.Streets = append(inst.Streets, street)
	}

	// 3) Cars: resolve names to ids and check path continuity.
	inst.CarPaths = make([][]int, 0, numCars)
	for i := 0; i < numCars; i++ {
		text, ok := nextLine()
		if !ok {
			return nil, &ParseError{Line: line + 1, Err: fmt.Errorf("%w: expected %d car lines, got %d", ErrMissingLine, numCars, i)}
		}
		path, err := parseCarPath(text, nameIndex, inst.Streets)
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		inst.CarPaths = append(inst.CarPaths, path)
	}

	if err := sc.Err(); err != nil {
		return nil, &ParseError{Line: line, Err: err}
	}

	return inst, nil
}

// ParseString is a convenience wrapper around Parse for in-memory input.
func ParseString(s string) (*Instance, error) {
	return Parse(strings.NewReader(s))
}

// parseStreet decodes one "start end name travel_time" line.
func parseStreet(text string, numInters int) (Street, error) {
	fields := strings.Fields(text)
	if len(fields) != 4 {
		return Street{}, fmt.Errorf("%w: street line must have 4 fields, got %d", ErrFieldCount, len(fields))
	}
	nums, err := parseInts([]string{fields[0], fields[1], fields[3]}, 3)
	if err != nil {
		return Street{}, err
	}
	if nums[0] < 0 || nums[0] >= numInters || nums[1] < 0 || nums[1] >= numInters {
		return Street{}, fmt.Errorf("%w: street %q endpoints %d→%d, want [0,%d)", ErrIDRange, fields[2], nums[0], nums[1], numInters)
	}
	if nums[2] < 1 {
		return Street{}, fmt.Errorf("%w: street %q travel time %d, want ≥ 1", ErrBadNumber, fields[2], nums[2])
	}

	return Street{Name: fields[2], Start: nums[0], End: nums[1], TravelTime: nums[2]}, nil
}

// parseCarPath decodes one "L s_1 … s_L" line into street ids.
func parseCarPath(text string, nameIndex map[string]int, streets []Street) ([]int, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty car line", ErrFieldCount)
	}
	length, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: path length %q", ErrBadNumber, fields[0])
	}
	if length < 1 {
		return nil, fmt.Errorf("%w: path length %d, want ≥ 1", ErrBadNumber, length)
	}
	if len(fields)-1 != length {
		return nil, fmt.Errorf("%w: declared %d path streets, got %d", ErrFieldCount, length, len(fields)-1)
	}

	path := make([]int, 0, length)
	for _, name := range fields[1:] {
		id, ok := nameIndex[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStreet, name)
		}
		// Consecutive streets must connect end-to-start.
		if n := len(path); n > 0 && streets[path[n-1]].End != streets[id].Start {
			return nil, fmt.Errorf("%w: %q does not start where %q ends", ErrBrokenPath, name, streets[path[n-1]].Name)
		}
		path = append(path, id)
	}

	return path, nil
}

// parseInts parses exactly want integers from the given fields.
func parseInts(fields []string, want int) ([]int, error) {
	if len(fields) != want {
		return nil, fmt.Errorf("%w: want %d fields, got %d", ErrFieldCount, want, len(fields))
	}
	nums := make([]int, want)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadNumber, f)
		}
		nums[i] = n
	}

	return nums, nil
}
