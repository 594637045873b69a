// Package storage provides ports.SnapshotStore implementations: an in-memory
// map, one file per snapshot, and a SQLite table.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sahilbrid/nyaay-saathi/internal/platform/config"
	"github.com/sahilbrid/nyaay-saathi/internal/ports"
)

// Store is a snapshot store that also reports its health and owns resources
// that must be released on shutdown.
type Store interface {
	ports.SnapshotStore
	ports.HealthChecker
	Close() error
}

const checkerName = "storage"

// Open builds the store selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (Store, error) {
	logger.InfoContext(ctx, "opening snapshot store",
		slog.String("driver", cfg.Driver),
		slog.String("path", cfg.Path),
	)

	switch cfg.Driver {
	case config.StorageMemory, "":
		return NewMemory(), nil
	case config.StorageFile:
		return NewFile(cfg.Path)
	case config.StorageSQLite:
		return OpenSQLite(ctx, cfg.Path, cfg.BusyTimeout)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
