package store

import (
	"context"

	"github.com/connectome-neuprint/neuprint-go/models"
)

// noopHistoryRepository is used when history is disabled.
type noopHistoryRepository struct{}

// NewNoopHistoryRepository returns a [HistoryRepository] that stores nothing.
func NewNoopHistoryRepository() HistoryRepository {
	return noopHistoryRepository{}
}

func (noopHistoryRepository) Save(context.Context, models.HistoryEntry) error { return nil }

func (noopHistoryRepository) List(context.Context, int) ([]models.HistoryEntry, error) {
	return []models.HistoryEntry{}, nil
}

func (noopHistoryRepository) Clear(context.Context) (int64, error) { return 0, nil }

func (noopHistoryRepository) Close() error { return nil }
