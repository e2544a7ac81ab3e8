package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/metronav/internal/fare"
	"github.com/metronav/internal/network/delay"
	"github.com/metronav/internal/network/pathfinder"
	"github.com/metronav/pkg/metro/models"
)

func (a *App) listStations() {
	fmt.Fprintln(a.out, "\nAvailable Metro Stations:")
	for i, id := range a.resolver.Stations() {
		name := models.ParseStationName(id)
		if len(name.Lines) == 0 {
			fmt.Fprintf(a.out, "%d. %s\n", i+1, id)
			continue
		}
		fmt.Fprintf(a.out, "%d. %s (%s)\n", i+1, id, name.LineNames())
	}
	fmt.Fprintln(a.out)
}

func (a *App) showMap() {
	fmt.Fprintf(a.out, "\n%s Map:\n", a.network)
	for _, id := range a.graph.Stations() {
		fmt.Fprintf(a.out, "%s -> ", id)
		for _, e := range a.graph.Neighbors(id) {
			fmt.Fprintf(a.out, "%s(%d) ", e.To, e.Weight)
		}
		fmt.Fprintln(a.out)
	}
}

func (a *App) route(ctx context.Context, mode pathfinder.Mode) (pathfinder.Result, bool, error) {
	src, dest, ok, err := a.resolvePair(ctx)
	if err != nil || !ok {
		return pathfinder.Result{}, false, err
	}

	res, err := pathfinder.ShortestPath(a.graph, src, dest, mode)
	if err != nil {
		a.logger.Error("Route search failed", "from", src, "to", dest, "mode", mode.String(), "error", err)
		fmt.Fprintln(a.out, "No path found.")
		return pathfinder.Result{}, false, nil
	}
	if !res.Reachable() {
		a.logger.Info("No route between stations", "from", src, "to", dest, "mode", mode.String())
		fmt.Fprintln(a.out, "No path found.")
		return res, false, nil
	}

	a.logger.Debug("Route found",
		"from", src,
		"to", dest,
		"mode", mode.String(),
		"cost", res.Cost,
		"hops", res.Hops())
	return res, true, nil
}

func (a *App) shortestDistance(ctx context.Context) error {
	res, ok, err := a.route(ctx, pathfinder.Distance)
	if err != nil || !ok {
		return err
	}

	fmt.Fprintf(a.out, "Shortest Distance: %d KM\n", res.Cost)
	fmt.Fprintf(a.out, "Estimated Fare: Rs %d\n", fare.Calculate(res.Cost))
	fmt.Fprintf(a.out, "Path: %s\n", res)
	return nil
}

func (a *App) shortestTime(ctx context.Context) error {
	res, ok, err := a.route(ctx, pathfinder.Time)
	if err != nil || !ok {
		return err
	}

	fmt.Fprintf(a.out, "Shortest Time: %d minutes\n", res.Minutes())
	fmt.Fprintf(a.out, "Path: %s\n", res)
	return nil
}

func (a *App) simulateDelay(ctx context.Context) error {
	a.listStations()
	origin, ok, err := a.resolveStation(ctx, "Enter station with delay (partial/full): ")
	if err != nil || !ok {
		return err
	}

	fmt.Fprint(a.out, "Enter delay in minutes: ")
	line, err := a.readLine(ctx)
	if err != nil {
		return err
	}
	minutes, convErr := strconv.Atoi(line)
	if convErr != nil || minutes < 0 {
		fmt.Fprintln(a.out, "Invalid delay.")
		return nil
	}

	report, err := delay.Propagate(a.graph, origin, minutes, a.delayOpts...)
	if err != nil {
		a.logger.Error("Delay simulation failed", "station", origin, "error", err)
		if errors.Is(err, delay.ErrStationNotFound) {
			fmt.Fprintln(a.out, "Station not found!")
		} else {
			fmt.Fprintln(a.out, "Delay simulation failed.")
		}
		return nil
	}

	a.logger.Info("Delay simulated",
		"station", origin,
		"delay_minutes", minutes,
		"affected", len(report.Impacts))

	fmt.Fprintf(a.out, "\nReal-Time Delay Propagation from: %s (+%d mins)\n", report.Origin, report.InitialDelay)
	fmt.Fprintln(a.out, "\nAffected Stations:")
	if len(report.Impacts) == 0 {
		fmt.Fprintln(a.out, " (none)")
	}
	for _, im := range report.Impacts {
		fmt.Fprintf(a.out, " → %s : +%d min (Total: %d mins)\n", im.Station, im.Added, im.Total)
	}
	fmt.Fprintln(a.out)
	return nil
}
