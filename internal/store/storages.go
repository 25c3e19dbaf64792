package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-account-service/internal/config"
	"github.com/MKhiriev/go-account-service/internal/logger"
)

// Storages groups all repositories into a single value that can be passed
// around the service layer. Currently it holds only [AccountRepository];
// additional repositories can be added here as the feature set grows.
type Storages struct {
	AccountRepository AccountRepository
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens a database connection, choosing the driver from the DSN:
//     a "postgres://" or "postgresql://" URI selects pgx, any other value
//     is treated as a SQLite file path.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to a fresh
//     [AccountRepository].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := connect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("database migration error: %w", err)
	}

	return &Storages{
		AccountRepository: NewAccountRepository(db, logger),
	}, nil
}

func connect(ctx context.Context, cfg config.DB, logger *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, logger)
	case cfg.DSN != "":
		return NewConnectSQLite(ctx, cfg, logger)
	default:
		return nil, ErrUnsupportedDSN
	}
}
