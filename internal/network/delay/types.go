package delay

import (
	"errors"
	"fmt"
)

var (
	ErrNilGraph        = errors.New("delay: graph is nil")
	ErrStationNotFound = errors.New("delay: station not found")
	ErrInvalidOption   = errors.New("delay: invalid option")
)

const (
	DefaultMaxHops      = 3
	DefaultHopIncrement = 3
)

// Options controls how far a delay spreads and how much each hop adds.
type Options struct {
	MaxHops      int
	HopIncrement int

	err error
}

type Option func(*Options)

func DefaultOptions() Options {
	return Options{
		MaxHops:      DefaultMaxHops,
		HopIncrement: DefaultHopIncrement,
	}
}

// WithMaxHops limits the spread to n connections from the origin. Zero
// disables spreading.
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max hops %d", ErrInvalidOption, n)
			return
		}
		o.MaxHops = n
	}
}

// WithHopIncrement sets the minutes added per hop.
func WithHopIncrement(minutes int) Option {
	return func(o *Options) {
		if minutes < 0 {
			o.err = fmt.Errorf("%w: hop increment %d", ErrInvalidOption, minutes)
			return
		}
		o.HopIncrement = minutes
	}
}

// Impact is the delay recorded at one affected station.
type Impact struct {
	Station string
	Added   int // minutes above the initial delay
	Total   int
	Hops    int // length of the spread path that produced Total
}

// Report lists every station a disruption reached, origin excluded.
type Report struct {
	Origin       string
	InitialDelay int
	Impacts      []Impact
}

// Lookup returns the impact recorded for station, if any.
func (r *Report) Lookup(station string) (Impact, bool) {
	for _, im := range r.Impacts {
		if im.Station == station {
			return im, true
		}
	}
	return Impact{}, false
}
