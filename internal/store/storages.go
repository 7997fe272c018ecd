package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-items-client/internal/config"
	"github.com/MKhiriev/go-items-client/internal/logger"
)

// NewTokenStore initialises the credential token store selected by cfg:
//   - empty DSN: an in-memory store;
//   - otherwise: a SQLite store at cfg.DSN, created and migrated on demand.
//
// Returns an error if the database cannot be opened or migrated.
func NewTokenStore(ctx context.Context, cfg config.ClientSession, logger *logger.Logger) (TokenStore, error) {
	if cfg.DSN == "" {
		logger.Debug().Msg("using in-memory token store")
		return NewMemoryTokenStore(), nil
	}

	logger.Info().Str("dsn", cfg.DSN).Msg("opening sqlite token store...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLiteTokenStore(db, logger), nil
}
