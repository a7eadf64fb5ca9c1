package parse

// Driver is a single driver's state for the current tick, mutated only at
// tick boundaries by Parser and immutable within the tick (spec.md §3).
type Driver struct {
	ID   string
	Lng  float64
	Lat  float64
	Cell string
}

// Request is a single ride request for the current tick, immutable
// within the tick (spec.md §3).
type Request struct {
	ID        string
	StartCell string
	EndCell   string
	RequestTS int64
	FinishTS  int64
	DayOfWeek int
	Reward    float64
}

// Candidate is a (driver, request) pairing with its pickup distance and
// ETA (spec.md §3: "distance ≥ 0", "eta ≥ 0").
type Candidate struct {
	DriverID  string
	RequestID string
	Distance  float64
	ETA       float64
}

// Tick is the parsed, ready-to-dispatch view of one observation batch:
// drivers and requests keyed by id, and candidates grouped by request id.
type Tick struct {
	Drivers    map[string]Driver
	Requests   map[string]Request
	Candidates map[string][]Candidate
}

// RepositionTick is the parsed view of one reposition observation.
type RepositionTick struct {
	Timestamp int64
	DayOfWeek int
	Drivers   []IdleDriver
}

// IdleDriver is one driver awaiting a reposition destination.
type IdleDriver struct {
	DriverID string
	Cell     string
}
