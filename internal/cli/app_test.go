package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metronav/internal/common/logger"
	"github.com/metronav/internal/network/delay"
	"github.com/metronav/internal/network/graph"
	"github.com/metronav/internal/network/resolver"
	"github.com/metronav/internal/topology"
)

func runScript(t *testing.T, g *graph.Graph, script string, opts ...Option) string {
	t.Helper()

	var out bytes.Buffer
	app := New(g, resolver.New(g.Stations()), logger.Nop(), strings.NewReader(script), &out, opts...)
	require.NoError(t, app.Run(context.Background()))
	return out.String()
}

func builtinGraph(t *testing.T) *graph.Graph {
	t.Helper()

	n, err := topology.Build(context.Background(), topology.Builtin(), logger.Nop())
	require.NoError(t, err)
	return n.Graph
}

func TestShortestDistanceCommand(t *testing.T) {
	out := runScript(t, builtinGraph(t), "3\nnoida\n1\nigi\n1\n6\n")

	assert.Contains(t, out, "Did you mean:\n1. Noida Sector 62~B\n")
	assert.Contains(t, out, "Shortest Distance: 42 KM\n")
	assert.Contains(t, out, "Estimated Fare: Rs 60\n")
	assert.Contains(t, out, "Path: Noida Sector 62~B -> Botanical Garden~B -> Yamuna Bank~B -> Rajiv Chowk~BY"+
		" -> New Delhi~YO -> Shivaji Stadium~O -> DDS Campus~O -> IGI Airport~O\n")
	assert.Contains(t, out, "Exiting...")
}

func TestShortestTimeCommand(t *testing.T) {
	out := runScript(t, builtinGraph(t), "4\nnoida\n1\nigi\n1\n6\n")

	// 7 hops over 42 km: (7*120 + 40*42) / 60
	assert.Contains(t, out, "Shortest Time: 42 minutes\n")
}

func TestSimulateDelayCommand(t *testing.T) {
	out := runScript(t, builtinGraph(t), "5\nrajiv\n1\n4\n6\n")

	assert.Contains(t, out, "Real-Time Delay Propagation from: Rajiv Chowk~BY (+4 mins)")
	assert.Contains(t, out, " → AIIMS~Y : +3 min (Total: 7 mins)\n")
	assert.Contains(t, out, " → Saket~Y : +6 min (Total: 10 mins)\n")
	assert.Contains(t, out, " → Huda City Center~Y : +9 min (Total: 13 mins)\n")
	assert.NotContains(t, out, " → Rajiv Chowk~BY")
	assert.NotContains(t, out, " → IGI Airport~O", "four hops away")
}

func TestSimulateDelayHonoursOptions(t *testing.T) {
	out := runScript(t, builtinGraph(t), "5\nrajiv\n1\n4\n6\n", WithDelayOptions(delay.WithMaxHops(1)))

	assert.Contains(t, out, " → AIIMS~Y : +3 min (Total: 7 mins)\n")
	assert.NotContains(t, out, " → Saket~Y")
}

func TestSimulateDelayReportsOptionError(t *testing.T) {
	out := runScript(t, builtinGraph(t), "5\nrajiv\n1\n4\n6\n", WithDelayOptions(delay.WithMaxHops(-1)))

	assert.Contains(t, out, "Delay simulation failed.\n")
	assert.NotContains(t, out, "Station not found!")
	assert.Contains(t, out, "Exiting...")
}

func TestSimulateDelayRejectsBadMinutes(t *testing.T) {
	out := runScript(t, builtinGraph(t), "5\nrajiv\n1\n-3\n6\n")

	assert.Contains(t, out, "Invalid delay.")
	assert.NotContains(t, out, "Affected Stations")
}

func TestInvalidSelection(t *testing.T) {
	out := runScript(t, builtinGraph(t), "3\nnoida\n9\n6\n")

	assert.Contains(t, out, "Invalid choice.")
	assert.NotContains(t, out, "Shortest Distance: ")
	assert.Contains(t, out, "Exiting...")
}

func TestInvalidMenuOption(t *testing.T) {
	out := runScript(t, builtinGraph(t), "9\nabc\n1\n6\n")

	assert.Equal(t, 2, strings.Count(out, "Invalid option. Try again."))
	assert.Contains(t, out, "Available Metro Stations:")
	assert.Contains(t, out, "Exiting...")
}

func TestListAndMap(t *testing.T) {
	out := runScript(t, builtinGraph(t), "1\n2\n")

	assert.Contains(t, out, "1. AIIMS~Y (Yellow)\n")
	assert.Contains(t, out, "Rajiv Chowk~BY (Blue/Yellow)\n")
	assert.Contains(t, out, "New Delhi~YO -> Chandni Chowk~Y(2) Rajiv Chowk~BY(1) Shivaji Stadium~O(2) \n")
	assert.NotContains(t, out, "Exiting...", "input ended without choosing exit")
}

func TestAutoCompleteSingleStation(t *testing.T) {
	g := graph.New()
	g.AddStation("Solo")

	out := runScript(t, g, "3\nso\nsolo\n6\n", WithNetworkName("Test"))

	assert.Contains(t, out, "WELCOME TO THE TEST APP")
	assert.Equal(t, 2, strings.Count(out, "Auto-completed to: Solo\n"))
	assert.Contains(t, out, "Shortest Distance: 0 KM\n")
	assert.Contains(t, out, "Estimated Fare: Rs 10\n")
	assert.Contains(t, out, "Path: Solo\n")
}

func TestNoPath(t *testing.T) {
	g := graph.New()
	g.AddStation("A")
	g.AddStation("B")

	out := runScript(t, g, "3\na\n1\nb\n1\n6\n")

	assert.Contains(t, out, "No path found.")
}

func TestEmptyNetwork(t *testing.T) {
	out := runScript(t, graph.New(), "3\nanything\n6\n")

	assert.Contains(t, out, "No station matches your input. Try again.")
}

func TestRunStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	g := builtinGraph(t)
	app := New(g, resolver.New(g.Stations()), logger.Nop(), pr, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := app.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
