package topology

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metronav/internal/common/logger"
	"github.com/metronav/pkg/metro/models"
)

type failingSource struct{}

func (failingSource) Name() string { return "failing" }

func (failingSource) Load(context.Context) (*models.Topology, error) {
	return nil, errors.New("unreachable store")
}

func TestBuildBuiltin(t *testing.T) {
	n, err := Build(context.Background(), Builtin(), logger.Nop())
	require.NoError(t, err)
	g := n.Graph

	assert.Equal(t, BuiltinName, n.Name)
	assert.Equal(t, "builtin", n.Source)
	assert.Zero(t, n.Ignored)
	assert.Equal(t, 20, g.Len())
	assert.Len(t, g.Connections(), 19)

	w, ok := g.Weight("New Delhi~YO", "Rajiv Chowk~BY")
	assert.True(t, ok)
	assert.Equal(t, 1, w)
}

func TestBuildSkipsMalformedConnections(t *testing.T) {
	topo := &models.Topology{
		Name:     "test",
		Stations: []string{"A", "B", "C", "A"},
		Connections: []models.Connection{
			{From: "A", To: "B", DistanceKM: 4},
			{From: "B", To: "A", DistanceKM: 9},
			{From: "A", To: "A", DistanceKM: 1},
			{From: "A", To: "Z", DistanceKM: 2},
			{From: "B", To: "C", DistanceKM: 0},
		},
	}
	var buf bytes.Buffer
	log := logger.NewWithWriters(zerolog.DebugLevel, &buf)

	n, err := Build(context.Background(), NewStaticSource("memory", topo), log)
	require.NoError(t, err)
	g := n.Graph

	assert.Equal(t, 4, n.Ignored)
	assert.Equal(t, 3, g.Len())
	require.Len(t, g.Connections(), 1)
	w, _ := g.Weight("A", "B")
	assert.Equal(t, 4, w)

	out := buf.String()
	assert.Equal(t, 4, strings.Count(out, "Connection ignored"))
	assert.Contains(t, out, "duplicate connection")
	assert.Contains(t, out, "self loop")
	assert.Contains(t, out, "unknown station")
	assert.Contains(t, out, "non-positive distance")
}

func TestBuildEmptyTopology(t *testing.T) {
	_, err := Build(context.Background(), NewStaticSource("memory", &models.Topology{}), logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyTopology)
}

func TestBuildWrapsLoadError(t *testing.T) {
	_, err := Build(context.Background(), failingSource{}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failing")
}

func TestStaticSourceHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Builtin().Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

const sampleCSV = `from,to,distance
# blue line
Noida Sector 62~B,Botanical Garden~B,8
Botanical Garden~B, Yamuna Bank~B ,10
Depot~X,,
`

func TestParseCSV(t *testing.T) {
	topo, err := ParseCSV(context.Background(), strings.NewReader(sampleCSV), "sample")
	require.NoError(t, err)

	assert.Equal(t, "sample", topo.Name)
	assert.Equal(t, []string{"Noida Sector 62~B", "Botanical Garden~B", "Yamuna Bank~B", "Depot~X"}, topo.Stations)
	assert.Equal(t, []models.Connection{
		{From: "Noida Sector 62~B", To: "Botanical Garden~B", DistanceKM: 8},
		{From: "Botanical Garden~B", To: "Yamuna Bank~B", DistanceKM: 10},
	}, topo.Connections)
}

func TestParseCSVErrors(t *testing.T) {
	tests := map[string]string{
		"missing column": "from,to\nA,B\n",
		"bad distance":   "from,to,distance\nA,B,far\n",
		"empty from":     "from,to,distance\n,B,3\n",
		"no header":      "",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCSV(context.Background(), strings.NewReader(input), "bad")
			assert.Error(t, err)
		})
	}
}

func TestCSVSourceLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blue-line.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	src := NewCSVSource(path, logger.Nop())
	n, err := Build(context.Background(), src, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "csv:"+path, src.Name())
	assert.Equal(t, "blue-line", n.Name)
	assert.Equal(t, 4, n.Graph.Len())
	assert.Len(t, n.Graph.Connections(), 2)

	_, err = NewCSVSource(filepath.Join(t.TempDir(), "missing.csv"), logger.Nop()).Load(context.Background())
	assert.Error(t, err)
}

func TestAssemble(t *testing.T) {
	conns := []models.Connection{{From: "A", To: "B", DistanceKM: 3}}
	topo := assemble("db", []string{"A", "B", "B"}, conns)

	assert.Equal(t, "db", topo.Name)
	assert.Equal(t, []string{"A", "B"}, topo.Stations)
	assert.Equal(t, conns, topo.Connections)
}

func TestSchemaDeclaresTables(t *testing.T) {
	for _, table := range []string{"metro.networks", "metro.stations", "metro.connections"} {
		assert.Contains(t, Schema(), table)
	}
}
