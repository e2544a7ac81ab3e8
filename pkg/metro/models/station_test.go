package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStationName(t *testing.T) {
	name := ParseStationName("Rajiv Chowk~BY")

	assert.Equal(t, "Rajiv Chowk~BY", name.ID)
	assert.Equal(t, "Rajiv Chowk", name.Display)
	assert.Equal(t, []Line{Blue, Yellow}, name.Lines)
	assert.Equal(t, "Blue/Yellow", name.LineNames())
	assert.True(t, name.IsInterchange())
}

func TestParseStationNameWithoutLines(t *testing.T) {
	name := ParseStationName("Central")

	assert.Equal(t, "Central", name.Display)
	assert.Empty(t, name.Lines)
	assert.False(t, name.IsInterchange())
}

func TestUnknownLineCode(t *testing.T) {
	name := ParseStationName("Depot~X")

	assert.Equal(t, "Unknown", name.LineNames())
}

func TestTopologyAddStationDeduplicates(t *testing.T) {
	var topo Topology
	topo.AddStation("A")
	topo.AddStation("B")
	topo.AddStation("A")

	assert.Equal(t, []string{"A", "B"}, topo.Stations)
	assert.False(t, topo.IsEmpty())
	assert.True(t, (*Topology)(nil).IsEmpty())
}
