package pathfinder

import (
	"errors"
	"strings"
)

var (
	ErrNilGraph        = errors.New("pathfinder: graph is nil")
	ErrStationNotFound = errors.New("pathfinder: station not found")
)

// Unreachable is the cost reported when no path exists.
const Unreachable = -1

// PathSeparator joins station ids when a path is printed.
const PathSeparator = " -> "

// Time-mode cost model: every hop pays a fixed dwell overhead plus a
// per-kilometre running time. Units are seconds.
const (
	DwellCost = 120
	CostPerKM = 40
)

// Mode selects how connection weights are turned into search costs.
type Mode int

const (
	Distance Mode = iota
	Time
)

func (m Mode) String() string {
	switch m {
	case Distance:
		return "distance"
	case Time:
		return "time"
	default:
		return "unknown"
	}
}

// EdgeCost converts a connection weight into the cost paid in mode m.
func EdgeCost(m Mode, weight int) int {
	if m == Time {
		return DwellCost + CostPerKM*weight
	}
	return weight
}

// Result is the outcome of a single search. When no path exists Cost is
// Unreachable and Path is empty.
type Result struct {
	Mode Mode
	Path []string
	Cost int
}

func (r Result) Reachable() bool {
	return r.Cost != Unreachable
}

// Hops is the number of connections travelled.
func (r Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Minutes converts a time-mode cost to whole minutes, truncating.
func (r Result) Minutes() int {
	if !r.Reachable() {
		return 0
	}
	return r.Cost / 60
}

func (r Result) String() string {
	return strings.Join(r.Path, PathSeparator)
}
