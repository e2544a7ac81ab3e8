// Package pathfinder finds the cheapest route between two stations.
//
// The search is Dijkstra with a lazy priority queue: improved entries are
// pushed again and stale ones fall through the strict-improvement check.
// Connection weights are converted to costs by the selected Mode before
// they are summed, so the same graph answers both distance and time
// questions.
package pathfinder

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/metronav/internal/network/graph"
)

// ShortestPath returns the cheapest route from source to destination under
// mode. A missing route is not an error: the result's Cost is Unreachable.
func ShortestPath(g *graph.Graph, source, destination string, mode Mode) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.HasStation(source) {
		return Result{}, fmt.Errorf("%w: %q", ErrStationNotFound, source)
	}
	if !g.HasStation(destination) {
		return Result{}, fmt.Errorf("%w: %q", ErrStationNotFound, destination)
	}

	s := &search{
		g:    g,
		mode: mode,
		dist: make(map[string]int, g.Len()),
		prev: make(map[string]string, g.Len()),
	}
	return s.run(source, destination), nil
}

// search holds the mutable state of one ShortestPath call.
type search struct {
	g    *graph.Graph
	mode Mode
	dist map[string]int
	prev map[string]string
	pq   frontier
	seq  int
}

func (s *search) run(source, destination string) Result {
	s.dist[source] = 0
	s.push(source, 0)

	for s.pq.Len() > 0 {
		cur := heap.Pop(&s.pq).(*entry)

		if cur.station == destination {
			return Result{Mode: s.mode, Path: s.backtrack(source, destination), Cost: cur.cost}
		}
		if cur.cost > s.best(cur.station) {
			continue
		}

		for _, e := range s.g.Neighbors(cur.station) {
			cost := cur.cost + EdgeCost(s.mode, e.Weight)
			if cost >= s.best(e.To) {
				continue
			}
			s.dist[e.To] = cost
			s.prev[e.To] = cur.station
			s.push(e.To, cost)
		}
	}

	return Result{Mode: s.mode, Cost: Unreachable}
}

func (s *search) best(station string) int {
	if d, ok := s.dist[station]; ok {
		return d
	}
	return math.MaxInt
}

func (s *search) push(station string, cost int) {
	heap.Push(&s.pq, &entry{station: station, cost: cost, seq: s.seq})
	s.seq++
}

func (s *search) backtrack(source, destination string) []string {
	var path []string
	for at := destination; ; at = s.prev[at] {
		path = append(path, at)
		if at == source {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// entry is a frontier item. seq breaks cost ties in push order.
type entry struct {
	station string
	cost    int
	seq     int
}

type frontier []*entry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*entry)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
