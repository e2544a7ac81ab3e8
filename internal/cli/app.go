// Package cli is the interactive menu in front of the network queries.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/metronav/internal/common/logger"
	"github.com/metronav/internal/network/delay"
	"github.com/metronav/internal/network/graph"
	"github.com/metronav/internal/network/resolver"
)

const (
	choiceList = iota + 1
	choiceMap
	choiceDistance
	choiceTime
	choiceDelay
	choiceExit
)

type Option func(*App)

// WithNetworkName sets the name shown in the welcome banner.
func WithNetworkName(name string) Option {
	return func(a *App) {
		a.network = name
	}
}

// WithDelayOptions passes options through to every delay simulation.
func WithDelayOptions(opts ...delay.Option) Option {
	return func(a *App) {
		a.delayOpts = append(a.delayOpts, opts...)
	}
}

type App struct {
	graph     *graph.Graph
	resolver  *resolver.Resolver
	delayOpts []delay.Option
	network   string
	logger    logger.Logger

	in  io.Reader
	out io.Writer

	lines <-chan string
}

func New(g *graph.Graph, r *resolver.Resolver, log logger.Logger, in io.Reader, out io.Writer, opts ...Option) *App {
	a := &App{
		graph:    g,
		resolver: r,
		network:  "Metro",
		logger:   log,
		in:       in,
		out:      out,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run shows the menu until the user exits, input ends or ctx is cancelled.
// Only cancellation is reported as an error.
func (a *App) Run(ctx context.Context) error {
	stop := make(chan struct{})
	defer close(stop)
	a.lines = scanLines(a.in, stop)

	fmt.Fprintf(a.out, "\n**** WELCOME TO THE %s APP ****\n", strings.ToUpper(a.network))
	for {
		fmt.Fprint(a.out, "\n1. List All Stations\n2. Show Metro Map\n3. Get Shortest Distance"+
			"\n4. Get Shortest Time\n5. Simulate Delay Propagation\n6. Exit\nEnter your choice: ")

		line, err := a.readLine(ctx)
		if err != nil {
			return a.finish(err)
		}
		choice, convErr := strconv.Atoi(line)
		if convErr != nil {
			choice = 0
		}
		a.logger.Debug("Menu choice", "choice", line)

		switch choice {
		case choiceList:
			a.listStations()
		case choiceMap:
			a.showMap()
		case choiceDistance:
			err = a.shortestDistance(ctx)
		case choiceTime:
			err = a.shortestTime(ctx)
		case choiceDelay:
			err = a.simulateDelay(ctx)
		case choiceExit:
			fmt.Fprintln(a.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid option. Try again.")
		}
		if err != nil {
			return a.finish(err)
		}
	}
}

func (a *App) finish(err error) error {
	if errors.Is(err, io.EOF) {
		a.logger.Debug("Input closed")
		return nil
	}
	return err
}

// scanLines feeds input lines to a channel until in ends or stop closes.
func scanLines(in io.Reader, stop <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
	}()
	return lines
}

func (a *App) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-a.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

// resolveStation prompts for a station and returns its id. ok is false
// when the input could not be resolved; the menu then carries on.
func (a *App) resolveStation(ctx context.Context, prompt string) (station string, ok bool, err error) {
	fmt.Fprint(a.out, prompt)
	query, err := a.readLine(ctx)
	if err != nil {
		return "", false, err
	}

	res, err := a.resolver.Resolve(query)
	if err != nil {
		a.logger.Warn("Station resolution failed", "query", query, "error", err)
		fmt.Fprintln(a.out, "No station matches your input. Try again.")
		return "", false, nil
	}

	if !res.NeedsSelection {
		fmt.Fprintf(a.out, "Auto-completed to: %s\n", res.Selected)
		return res.Selected, true, nil
	}

	fmt.Fprintln(a.out, "Did you mean:")
	for i, c := range res.Candidates {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, c.Station)
	}
	fmt.Fprintf(a.out, "Enter choice (1-%d): ", len(res.Candidates))

	line, err := a.readLine(ctx)
	if err != nil {
		return "", false, err
	}
	index, convErr := strconv.Atoi(line)
	if convErr != nil {
		index = 0
	}
	station, selErr := res.Select(index)
	if selErr != nil {
		a.logger.Warn("Invalid candidate selection", "query", query, "selection", line)
		fmt.Fprintln(a.out, "Invalid choice.")
		return "", false, nil
	}

	a.logger.Debug("Station resolved", "query", query, "station", station)
	return station, true, nil
}

// resolvePair resolves a source and a destination station.
func (a *App) resolvePair(ctx context.Context) (src, dest string, ok bool, err error) {
	src, ok, err = a.resolveStation(ctx, "Enter source (partial/full): ")
	if err != nil || !ok {
		return "", "", false, err
	}
	dest, ok, err = a.resolveStation(ctx, "Enter destination (partial/full): ")
	if err != nil || !ok {
		return "", "", false, err
	}
	return src, dest, true, nil
}
