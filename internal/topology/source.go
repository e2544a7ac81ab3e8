// Package topology loads a station network from one of several sources and
// builds the immutable graph the query packages work on.
package topology

import (
	"context"
	"errors"
	"fmt"

	"github.com/metronav/internal/common/logger"
	"github.com/metronav/internal/network/graph"
	"github.com/metronav/pkg/metro/models"
)

var ErrEmptyTopology = errors.New("topology declares no stations")

// Source yields the ordered station and connection stream of a network.
type Source interface {
	Name() string
	Load(ctx context.Context) (*models.Topology, error)
}

// staticSource serves a topology held in memory.
type staticSource struct {
	name string
	topo *models.Topology
}

// NewStaticSource wraps an in-memory topology.
func NewStaticSource(name string, topo *models.Topology) Source {
	return &staticSource{name: name, topo: topo}
}

func (s *staticSource) Name() string { return s.name }

func (s *staticSource) Load(ctx context.Context) (*models.Topology, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.topo, nil
}

// Network is a built, read-only station graph and where it came from.
type Network struct {
	Name    string
	Source  string
	Graph   *graph.Graph
	Ignored int // connections rejected by the graph
}

// Build loads src and inserts its stations, then its connections, into a
// new graph. Malformed connections are skipped and logged; they never fail
// the build.
func Build(ctx context.Context, src Source, log logger.Logger) (*Network, error) {
	topo, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading topology from %s: %w", src.Name(), err)
	}
	if topo.IsEmpty() {
		return nil, fmt.Errorf("loading topology from %s: %w", src.Name(), ErrEmptyTopology)
	}

	g := graph.New()
	for _, name := range topo.Stations {
		if !g.AddStation(name) {
			log.Debug("Duplicate station ignored", "station", name)
		}
	}

	ignored := 0
	for _, c := range topo.Connections {
		if g.AddConnection(c.From, c.To, c.DistanceKM) {
			continue
		}
		ignored++
		log.Warn("Connection ignored",
			"from", c.From,
			"to", c.To,
			"distance_km", c.DistanceKM,
			"reason", rejectionReason(g, c))
	}

	log.Info("Topology built",
		"source", src.Name(),
		"network", topo.Name,
		"stations", g.Len(),
		"connections", len(topo.Connections)-ignored,
		"ignored", ignored)

	return &Network{Name: topo.Name, Source: src.Name(), Graph: g, Ignored: ignored}, nil
}

// rejectionReason explains why g refused c.
func rejectionReason(g *graph.Graph, c models.Connection) string {
	switch {
	case !g.HasStation(c.From) || !g.HasStation(c.To):
		return "unknown station"
	case c.From == c.To:
		return "self loop"
	case c.DistanceKM <= 0:
		return "non-positive distance"
	default:
		return "duplicate connection"
	}
}
