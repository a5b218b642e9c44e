// Package persistence selects the robot entity store for the configured
// driver and decorates it with tracing and store metrics.
package persistence

import (
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/robot-service/internal/adapters/persistence/boltstore"
	"github.com/jsamuelsen11/robot-service/internal/adapters/persistence/memstore"
	"github.com/jsamuelsen11/robot-service/internal/adapters/persistence/sqlstore"
	"github.com/jsamuelsen11/robot-service/internal/platform/config"
	"github.com/jsamuelsen11/robot-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/robot-service/internal/ports"
)

// Open opens the store named by cfg.Driver. The result is instrumented;
// metrics may be nil to skip metric recording.
func Open(cfg *config.StoreConfig, logger *slog.Logger, metrics *telemetry.Metrics) (ports.RobotStore, error) {
	var (
		store ports.RobotStore
		err   error
	)

	switch cfg.Driver {
	case config.DriverSQLite, config.DriverPostgres:
		store, err = sqlstore.Open(cfg, logger)
	case config.DriverBolt:
		store, err = boltstore.Open(cfg)
	case config.DriverMemory:
		store, err = memstore.New()
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	return Instrument(store, cfg.Driver, metrics), nil
}
