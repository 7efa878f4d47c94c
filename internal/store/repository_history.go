package store

import (
	"context"
	"fmt"
	"time"

	"github.com/connectome-neuprint/neuprint-go/internal/logger"
	"github.com/connectome-neuprint/neuprint-go/models"
)

const historyTable = "query_history"

var historyColumns = []string{
	"id",
	"server",
	"query",
	"format",
	"row_count",
	"status",
	"error",
	"duration_ms",
	"created_at",
}

// historyRepository is the SQL implementation of [HistoryRepository]. The same
// code serves PostgreSQL and SQLite; only the placeholder style differs.
type historyRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewHistoryRepository constructs a [HistoryRepository] backed by db.
func NewHistoryRepository(db *DB, log *logger.Logger) HistoryRepository {
	log.Debug().Str("dialect", db.dialect).Msg("creating history repository")
	return &historyRepository{
		db:     db,
		logger: log,
	}
}

// Save inserts entry. Durations are stored with millisecond precision and
// timestamps in UTC.
//
// Error handling:
//   - unique or primary key violation → [ErrHistoryEntryExists].
//   - zero affected rows → [ErrHistoryEntryNotSaved].
func (r *historyRepository) Save(ctx context.Context, entry models.HistoryEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert(historyTable).
		Columns(historyColumns...).
		Values(
			entry.ID,
			entry.Server,
			entry.Query,
			entry.Format,
			entry.RowCount,
			entry.Status,
			entry.Error,
			entry.Duration.Milliseconds(),
			entry.CreatedAt.UTC(),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.Save").Msg("error inserting history entry")
		if isUniqueViolation(err) {
			return ErrHistoryEntryExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return ErrHistoryEntryNotSaved
	}

	return nil
}

// List returns the most recent entries first.
func (r *historyRepository) List(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder().
		Select(historyColumns...).
		From(historyTable).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.List").Msg("error querying history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.HistoryEntry, 0)
	for rows.Next() {
		var (
			entry      models.HistoryEntry
			durationMS int64
		)
		if err = rows.Scan(
			&entry.ID,
			&entry.Server,
			&entry.Query,
			&entry.Format,
			&entry.RowCount,
			&entry.Status,
			&entry.Error,
			&durationMS,
			&entry.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*historyRepository.List").Msg("error scanning history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entry.Duration = time.Duration(durationMS) * time.Millisecond
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// Clear deletes every entry.
func (r *historyRepository) Clear(ctx context.Context) (int64, error) {
	query, args, err := r.db.builder().Delete(historyTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*historyRepository.Clear").Msg("error clearing history")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	// some drivers cannot report affected rows; the delete itself succeeded
	removed, _ := res.RowsAffected()
	return removed, nil
}

// Close closes the database.
func (r *historyRepository) Close() error {
	return r.db.Close()
}

