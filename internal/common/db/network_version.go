package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/metronav/pkg/metro/models"
)

var ErrNoActiveNetwork = errors.New("no active network in database")

// NetworkVersions reads the metro.networks table. Exactly one row is
// expected to carry is_active = true.
type NetworkVersions struct {
	db *DB
}

func NewNetworkVersions(db *DB) *NetworkVersions {
	return &NetworkVersions{db: db}
}

func (nv *NetworkVersions) Active(ctx context.Context) (*models.NetworkVersion, error) {
	query := `
		SELECT network_id, name, updated_at, is_active
		FROM metro.networks
		WHERE is_active = true
		ORDER BY updated_at DESC
		LIMIT 1
	`

	version, err := scanNetworkVersion(nv.db.conn.QueryRowContext(ctx, query))
	if errors.Is(err, ErrNoActiveNetwork) {
		nv.db.logger.Warn("No active network found in database")
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	nv.db.logger.Debug("Found active network",
		"network_id", version.NetworkID,
		"name", version.Name,
		"updated_at", version.UpdatedAt)

	return version, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanNetworkVersion reads one metro.networks row. An empty result maps to
// ErrNoActiveNetwork.
func scanNetworkVersion(row rowScanner) (*models.NetworkVersion, error) {
	var version models.NetworkVersion
	err := row.Scan(
		&version.NetworkID,
		&version.Name,
		&version.UpdatedAt,
		&version.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoActiveNetwork
	}
	if err != nil {
		return nil, fmt.Errorf("querying active network: %w", err)
	}
	return &version, nil
}
