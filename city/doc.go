// Package city provides the immutable description of a traffic-light
// optimization instance: the simulation horizon, the bonus awarded per
// arrived car, the directed street network, and the fixed set of car
// journeys.
//
// Overview:
//
//   - An Instance is built once per run (usually via Parse) and is then
//     shared read-only by every scheduler, simulator, and improver.
//   - Streets are identified by dense integer ids (their position in the
//     input file) and by unique names (used in the text formats).
//   - A car path is an ordered sequence of street ids; the car starts at
//     time 0 at the end of its first street, queued at that street's light.
//
// Key derived quantities:
//
//   - MinTravelTime(car): the time the car needs with every light green —
//     the sum of travel times of all streets after the first. Cars whose
//     minimum travel time exceeds the horizon can never score.
//   - MaxTheoreticalScore: the score if every car arrived as early as
//     physically possible; a cheap upper bound for progress reporting.
//
// Text format (one instance per file):
//
//	D N_I N_S N_C B          — horizon, intersections, streets, cars, bonus
//	<start> <end> <name> <t> — N_S street lines (ids 0-based, t ≥ 1)
//	L s_1 s_2 … s_L          — N_C car lines (L ≥ 1, streets by name)
//
// Error handling (sentinel):
//
//   - ErrMissingLine   if the input ends before all declared lines are read.
//   - ErrFieldCount    if a line has the wrong number of fields.
//   - ErrBadNumber     if an integer field does not parse.
//   - ErrUnknownStreet if a car path references an undeclared street name.
//   - ErrIDRange       if a street endpoint is outside [0, N_I).
//   - ErrBrokenPath    if consecutive path streets do not connect.
//
// All parse failures are reported as *ParseError carrying the 1-based line
// number and wrapping one of the sentinels above, so callers can test with
// errors.Is and still print an exact location.
package city
