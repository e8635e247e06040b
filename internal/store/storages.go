package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lacnutry/internal/config"
	"github.com/MKhiriev/lacnutry/internal/logger"
)

// NewKeyValueStorage opens the backend selected by cfg.DB.Driver. SQL
// backends are migrated before being returned.
func NewKeyValueStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (KeyValueStorage, error) {
	log.Info().Str("driver", cfg.DB.Driver).Msg("creating key-value storage...")

	switch cfg.DB.Driver {
	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		return migrated(db, log)
	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return migrated(db, log)
	case config.DriverFile:
		return NewFileKeyValueStorage(cfg.Files.Path, log)
	case config.DriverMemory, "":
		return NewMemoryKeyValueStorage(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DB.Driver)
	}
}

func migrated(db *DB, log *logger.Logger) (KeyValueStorage, error) {
	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return NewSQLKeyValueStorage(db, log), nil
}
