package topology

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/metronav/internal/common/db"
	"github.com/metronav/internal/common/logger"
	"github.com/metronav/pkg/metro/models"
)

//go:embed schema.sql
var schema string

// Schema returns the DDL of the tables PostgresSource reads.
func Schema() string {
	return schema
}

// PostgresSource reads the active network from the metro schema.
type PostgresSource struct {
	db       *db.DB
	versions *db.NetworkVersions
	logger   logger.Logger
}

func NewPostgresSource(database *db.DB, logger logger.Logger) *PostgresSource {
	return &PostgresSource{
		db:       database,
		versions: db.NewNetworkVersions(database),
		logger:   logger,
	}
}

func (s *PostgresSource) Name() string {
	return "postgres"
}

func (s *PostgresSource) Load(ctx context.Context) (*models.Topology, error) {
	network, err := s.versions.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting active network: %w", err)
	}

	stations, err := s.stations(ctx, network.NetworkID)
	if err != nil {
		return nil, err
	}
	connections, err := s.connections(ctx, network.NetworkID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Loaded network from database",
		"network_id", network.NetworkID,
		"name", network.Name,
		"stations", len(stations),
		"connections", len(connections))

	return assemble(network.Name, stations, connections), nil
}

func (s *PostgresSource) stations(ctx context.Context, networkID int) ([]string, error) {
	rows, err := s.db.Conn().QueryContext(ctx, `
		SELECT name FROM metro.stations
		WHERE network_id = $1
		ORDER BY position, name`, networkID)
	if err != nil {
		return nil, fmt.Errorf("querying stations: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning station: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stations: %w", err)
	}
	return names, nil
}

func (s *PostgresSource) connections(ctx context.Context, networkID int) ([]models.Connection, error) {
	rows, err := s.db.Conn().QueryContext(ctx, `
		SELECT station_a, station_b, distance_km FROM metro.connections
		WHERE network_id = $1
		ORDER BY position`, networkID)
	if err != nil {
		return nil, fmt.Errorf("querying connections: %w", err)
	}
	defer rows.Close()

	var conns []models.Connection
	for rows.Next() {
		var c models.Connection
		if err := rows.Scan(&c.From, &c.To, &c.DistanceKM); err != nil {
			return nil, fmt.Errorf("scanning connection: %w", err)
		}
		conns = append(conns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating connections: %w", err)
	}
	return conns, nil
}

// assemble turns query rows into a topology. Station rows are
// authoritative: connection endpoints are not declared implicitly, so a
// connection to an undeclared station is later dropped by Build.
func assemble(name string, stations []string, conns []models.Connection) *models.Topology {
	topo := &models.Topology{Name: name, Connections: conns}
	for _, s := range stations {
		topo.AddStation(s)
	}
	return topo
}
