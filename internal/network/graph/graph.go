// Package graph holds the station network as an undirected weighted
// adjacency map.
//
// The graph is append-only: stations and connections are added while the
// topology is loaded and never removed. Once built it is only read, so the
// query packages share a single *Graph without locking.
package graph

import "sort"

// Edge is one direction of a connection as seen from a station.
type Edge struct {
	To     string
	Weight int
}

// Connection is an undirected edge reported once, with From < To.
type Connection struct {
	From   string
	To     string
	Weight int
}

type Graph struct {
	adjacency map[string]map[string]int
}

func New() *Graph {
	return &Graph{adjacency: make(map[string]map[string]int)}
}

// AddStation inserts id with no neighbors. Adding an existing station is a
// no-op and returns false.
func (g *Graph) AddStation(id string) bool {
	if _, ok := g.adjacency[id]; ok {
		return false
	}
	g.adjacency[id] = make(map[string]int)
	return true
}

// AddConnection links a and b in both directions. It returns false and
// leaves the graph untouched when an endpoint is missing, a == b, the pair
// is already connected or weight is not positive.
func (g *Graph) AddConnection(a, b string, weight int) bool {
	if a == b || weight <= 0 {
		return false
	}
	na, ok := g.adjacency[a]
	if !ok {
		return false
	}
	nb, ok := g.adjacency[b]
	if !ok {
		return false
	}
	if _, exists := na[b]; exists {
		return false
	}

	na[b] = weight
	nb[a] = weight
	return true
}

func (g *Graph) HasStation(id string) bool {
	_, ok := g.adjacency[id]
	return ok
}

// Len returns the number of stations.
func (g *Graph) Len() int {
	return len(g.adjacency)
}

// Stations returns every station id in ascending order.
func (g *Graph) Stations() []string {
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Neighbors returns the edges leaving id sorted by neighbor name, or nil
// for an unknown station.
func (g *Graph) Neighbors(id string) []Edge {
	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil
	}

	edges := make([]Edge, 0, len(nbrs))
	for to, w := range nbrs {
		edges = append(edges, Edge{To: to, Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })
	return edges
}

// Weight returns the weight of the a–b connection.
func (g *Graph) Weight(a, b string) (int, bool) {
	w, ok := g.adjacency[a][b]
	return w, ok
}

// Connections lists every connection once, ordered by (From, To).
func (g *Graph) Connections() []Connection {
	var conns []Connection
	for from, nbrs := range g.adjacency {
		for to, w := range nbrs {
			if from < to {
				conns = append(conns, Connection{From: from, To: to, Weight: w})
			}
		}
	}
	sort.Slice(conns, func(i, j int) bool {
		if conns[i].From != conns[j].From {
			return conns[i].From < conns[j].From
		}
		return conns[i].To < conns[j].To
	})
	return conns
}
