// Package delay simulates how a disruption at one station spreads through
// its neighbourhood.
//
// Spreading is topological: each hop adds a fixed number of minutes
// regardless of track length, up to a hop limit. A station keeps the worst
// delay any spread path produced for it, and a station whose figure got
// worse spreads again from its new value. Spread paths are simple, so a
// delay never bounces back through a station it already passed.
package delay

import (
	"fmt"
	"sort"

	"github.com/metronav/internal/network/graph"
)

// Propagate spreads initialDelay minutes outward from origin.
func Propagate(g *graph.Graph, origin string, initialDelay int, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasStation(origin) {
		return nil, fmt.Errorf("%w: %q", ErrStationNotFound, origin)
	}

	s := &spreader{
		g:       g,
		opts:    o,
		delays:  map[string]int{origin: initialDelay},
		hops:    map[string]int{origin: 0},
		pending: []wave{{station: origin, delay: initialDelay, path: []string{origin}}},
	}
	s.run()

	return s.report(origin, initialDelay), nil
}

// wave is one queued spread step. path holds the stations it came through,
// origin first.
type wave struct {
	station string
	delay   int
	path    []string
}

func (w wave) level() int {
	return len(w.path) - 1
}

func (w wave) passed(station string) bool {
	for _, p := range w.path {
		if p == station {
			return true
		}
	}
	return false
}

type spreader struct {
	g       *graph.Graph
	opts    Options
	delays  map[string]int
	hops    map[string]int
	pending []wave
}

func (s *spreader) run() {
	for len(s.pending) > 0 {
		cur := s.pending[0]
		s.pending = s.pending[1:]

		if cur.level() >= s.opts.MaxHops {
			continue
		}

		for _, e := range s.g.Neighbors(cur.station) {
			if cur.passed(e.To) {
				continue
			}
			next := cur.delay + s.opts.HopIncrement
			if recorded, ok := s.delays[e.To]; ok && next <= recorded {
				continue
			}

			path := make([]string, len(cur.path), len(cur.path)+1)
			copy(path, cur.path)
			path = append(path, e.To)

			s.delays[e.To] = next
			s.hops[e.To] = len(path) - 1
			s.pending = append(s.pending, wave{station: e.To, delay: next, path: path})
		}
	}
}

func (s *spreader) report(origin string, initialDelay int) *Report {
	r := &Report{Origin: origin, InitialDelay: initialDelay}
	for station, total := range s.delays {
		if station == origin {
			continue
		}
		r.Impacts = append(r.Impacts, Impact{
			Station: station,
			Added:   total - initialDelay,
			Total:   total,
			Hops:    s.hops[station],
		})
	}
	sort.Slice(r.Impacts, func(i, j int) bool {
		if r.Impacts[i].Hops != r.Impacts[j].Hops {
			return r.Impacts[i].Hops < r.Impacts[j].Hops
		}
		return r.Impacts[i].Station < r.Impacts[j].Station
	})
	return r
}
