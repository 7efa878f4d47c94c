package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/connectome-neuprint/neuprint-go/internal/config"
	"github.com/connectome-neuprint/neuprint-go/internal/logger"
)

// NewHistoryStorage opens the history backend named by cfg.HistoryDSN and
// applies migrations:
//   - empty DSN: history disabled, a no-op repository is returned;
//   - postgres:// or postgresql:// URL: PostgreSQL through pgx;
//   - anything else without a scheme: a SQLite file path.
func NewHistoryStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (HistoryRepository, error) {
	dsn := strings.TrimSpace(cfg.HistoryDSN)
	if dsn == "" {
		log.Debug().Msg("query history disabled")
		return NewNoopHistoryRepository(), nil
	}

	var (
		db  *DB
		err error
	)
	switch {
	case isPostgresDSN(dsn):
		db, err = NewConnectPostgres(ctx, dsn, log)
	case strings.Contains(dsn, "://"):
		scheme, _, _ := strings.Cut(dsn, "://")
		return nil, fmt.Errorf("%w: scheme %q", ErrUnsupportedDSN, scheme)
	default:
		db, err = NewConnectSQLite(ctx, dsn, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating history database: %w", err)
	}

	return NewHistoryRepository(db, log), nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
