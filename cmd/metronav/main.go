package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/metronav/internal/cli"
	"github.com/metronav/internal/common/config"
	"github.com/metronav/internal/common/db"
	"github.com/metronav/internal/common/logger"
	"github.com/metronav/internal/network/delay"
	"github.com/metronav/internal/network/resolver"
	"github.com/metronav/internal/topology"
)

func main() {
	printSchema := flag.Bool("schema", false, "print the Postgres schema of the network tables and exit")
	flag.Parse()

	if *printSchema {
		fmt.Print(topology.Schema())
		return
	}

	// A missing .env is fine, everything has a default
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic("Failed to load .env file: " + err.Error())
	}

	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = logger.ParseLogLevel(cfg.Logging.Level)
	logCfg.FilePath = cfg.Logging.FilePath
	logCfg.Console = cfg.Logging.Console
	log := logger.New(logCfg)

	log.Info("metronav starting",
		"version", "1.0.0",
		"log_level", cfg.Logging.Level,
		"topology_source", cfg.Topology.Source)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("Shutdown signal received")
		cancel()
	}()

	src, closeSource, err := openSource(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to open topology source", "error", err)
	}
	network, err := topology.Build(ctx, src, log.With("component", "topology"))
	closeSource()
	if err != nil {
		log.Fatal("Failed to build network", "error", err)
	}

	stations := resolver.New(network.Graph.Stations(), resolver.WithCacheSize(cfg.Resolver.CacheSize))
	app := cli.New(network.Graph, stations, log.With("component", "cli"), os.Stdin, os.Stdout,
		cli.WithNetworkName(network.Name),
		cli.WithDelayOptions(
			delay.WithMaxHops(cfg.Delay.MaxHops),
			delay.WithHopIncrement(cfg.Delay.HopIncrement),
		),
	)

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Session ended with error", "error", err)
		os.Exit(1)
	}

	log.Info("metronav stopped")
}

// openSource returns the configured topology source and a func releasing
// whatever it holds open.
func openSource(ctx context.Context, cfg *config.Config, log logger.Logger) (topology.Source, func(), error) {
	switch cfg.Topology.Source {
	case config.SourceCSV:
		return topology.NewCSVSource(cfg.Topology.File, log), func() {}, nil
	case config.SourceHTTP:
		return topology.NewHTTPSource(cfg.Topology.URL, log), func() {}, nil
	case config.SourcePostgres:
		connectCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
		defer cancel()

		database, err := db.New(connectCtx, cfg.Database.ConnectionString(), log)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		closeDB := func() {
			if err := database.Close(); err != nil {
				log.Warn("Failed to close database", "error", err)
			}
		}
		return topology.NewPostgresSource(database, log), closeDB, nil
	default:
		return topology.Builtin(), func() {}, nil
	}
}
