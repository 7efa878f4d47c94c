package store

import (
	"context"

	"github.com/connectome-neuprint/neuprint-go/models"
)

// HistoryRepository persists the custom queries issued by the CLI.
type HistoryRepository interface {
	// Save stores a new entry.
	Save(ctx context.Context, entry models.HistoryEntry) error
	// List returns at most limit entries, newest first. A limit of zero or
	// less returns every entry.
	List(ctx context.Context, limit int) ([]models.HistoryEntry, error)
	// Clear removes every entry and returns how many were removed.
	Clear(ctx context.Context) (int64, error)
	// Close releases the underlying connection.
	Close() error
}
