package service

//go:generate mockgen -source=interfaces.go -destination=../mock/query_service_mock.go -package=mock

import (
	"context"

	"github.com/connectome-neuprint/neuprint-go/models"
	"github.com/connectome-neuprint/neuprint-go/pkg/neuprint"
)

// NeuPrintAPI is the part of *neuprint.Client used by [QueryService].
type NeuPrintAPI interface {
	Server() string
	FetchHelp(ctx context.Context) (any, error)
	FetchVersion(ctx context.Context) (any, error)
	FetchAvailable(ctx context.Context) (any, error)
	FetchDatabase(ctx context.Context) (any, error)
	FetchDatasets(ctx context.Context) (any, error)
	FetchCustom(ctx context.Context, cypher string, format neuprint.Format) (*neuprint.Result, error)
}

// HistoryRepository stores the custom queries issued through [QueryService].
type HistoryRepository interface {
	Save(ctx context.Context, entry models.HistoryEntry) error
	List(ctx context.Context, limit int) ([]models.HistoryEntry, error)
	Clear(ctx context.Context) (int64, error)
}
