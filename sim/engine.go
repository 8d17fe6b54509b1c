package sim

import (
	"sort"

	"github.com/katalvlaran/greenwave/city"
)

// carState tracks where a car is in its lifecycle.
type carState uint8

const (
	// stateWaiting: queued at a traffic light.
	stateWaiting carState = iota
	// stateReady: traveling down a street with remainTime > 0.
	stateReady
	// stateArrived: journey complete; no longer simulated.
	stateArrived
)

// car is the simulator-local runtime state of one journey.
type car struct {
	// remain holds the streets yet to finish, in reverse order: the last
	// element is the street currently traveled (while Ready) or the next
	// street to travel (while Waiting); finished streets are popped.
	remain []int
	// remainTime is the seconds left on the current street while Ready.
	remainTime int
	state      carState
}

// engine is the shared per-run state of both the scoring simulator and
// the reorder drivers: the fleet, the per-street FIFO queues, and the
// cars that arrived on the current tick.
type engine struct {
	inst *city.Instance
	cars []car
	// active lists not-yet-arrived car ids in ascending order; advance
	// compacts it in place, preserving order, so enqueues stay sorted.
	active []int
	// queues maps street id to the FIFO of waiting car ids; only
	// non-empty queues are present.
	queues map[int][]int
	// arrivedNow lists cars that arrived on the tick being processed.
	arrivedNow []int
}

// newEngine builds the fleet and performs the t = 0 placement: every car,
// in ascending id order, pops its first street and queues at that
// street's light. Cars whose path holds a single street have no lights
// left to cross and are recorded as tick-0 arrivals immediately.
func newEngine(inst *city.Instance) *engine {
	e := &engine{
		inst:   inst,
		cars:   make([]car, len(inst.CarPaths)),
		active: make([]int, 0, len(inst.CarPaths)),
		queues: make(map[int][]int),
	}
	for id, path := range inst.CarPaths {
		remain := make([]int, len(path))
		for i, streetID := range path {
			remain[len(path)-1-i] = streetID
		}
		// Pop the first street: the car starts at its end.
		first := remain[len(remain)-1]
		remain = remain[:len(remain)-1]
		e.cars[id] = car{remain: remain, state: stateWaiting}
		if len(remain) == 0 {
			e.cars[id].state = stateArrived
			e.arrivedNow = append(e.arrivedNow, id)

			continue
		}
		e.active = append(e.active, id)
		e.queues[first] = append(e.queues[first], id)
	}

	return e
}

// advance is phase 1 of a tick: every Ready car loses one second; a car
// finishing its street either arrives or joins the street's queue. Cars
// are visited in ascending id order so same-tick enqueues are ordered.
func (e *engine) advance() {
	e.arrivedNow = e.arrivedNow[:0]
	kept := e.active[:0]
	for _, id := range e.active {
		c := &e.cars[id]
		if c.state == stateReady {
			c.remainTime--
			if c.remainTime == 0 {
				// The street just finished is where the next light sits.
				finished := c.remain[len(c.remain)-1]
				c.remain = c.remain[:len(c.remain)-1]
				if len(c.remain) == 0 {
					c.state = stateArrived
					e.arrivedNow = append(e.arrivedNow, id)

					continue
				}
				c.state = stateWaiting
				e.queues[finished] = append(e.queues[finished], id)
			}
		}
		kept = append(kept, id)
	}
	e.active = kept
}

// cross admits the head car of the street's queue through its light: the
// car peeks its next street and starts traveling it on the next tick.
// The queue must be non-empty.
func (e *engine) cross(streetID int) {
	q := e.queues[streetID]
	carID := q[0]
	if len(q) == 1 {
		delete(e.queues, streetID)
	} else {
		e.queues[streetID] = q[1:]
	}
	c := &e.cars[carID]
	next := c.remain[len(c.remain)-1]
	c.remainTime = e.inst.Streets[next].TravelTime
	c.state = stateReady
}

// queuedStreets returns the streets with waiting cars in ascending id
// order — the scoring simulator's fixed queue-service order.
func (e *engine) queuedStreets() []int {
	streets := make([]int, 0, len(e.queues))
	for streetID := range e.queues {
		streets = append(streets, streetID)
	}
	sort.Ints(streets)

	return streets
}

// busiestStreets returns the streets with waiting cars in descending
// queue-length order, ties broken by ascending street id — the reorder
// engine's queue-service order, biasing it toward committing the busiest
// streets first.
func (e *engine) busiestStreets() []int {
	streets := e.queuedStreets()
	sort.SliceStable(streets, func(i, j int) bool {
		return len(e.queues[streets[i]]) > len(e.queues[streets[j]])
	})

	return streets
}
