package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/connectome-neuprint/neuprint-go/internal/logger"
	"github.com/connectome-neuprint/neuprint-go/internal/utils"
	"github.com/connectome-neuprint/neuprint-go/models"
	"github.com/connectome-neuprint/neuprint-go/pkg/neuprint"
)

// MetaEndpoint names one of the fixed metadata endpoints.
type MetaEndpoint string

const (
	MetaHelp      MetaEndpoint = "help"
	MetaVersion   MetaEndpoint = "version"
	MetaAvailable MetaEndpoint = "available"
	MetaDatabase  MetaEndpoint = "database"
	MetaDatasets  MetaEndpoint = "datasets"
)

// QueryService runs neuPrint requests for the CLI and keeps a history of the
// custom queries it issued.
type QueryService struct {
	api     NeuPrintAPI
	history HistoryRepository
	logger  *logger.Logger

	now   func() time.Time
	newID func() string
}

// NewQueryService wires api and history together. history may only be nil
// when the service is used for [QueryService.Meta]; use a no-op repository to
// disable recording.
func NewQueryService(api NeuPrintAPI, history HistoryRepository, log *logger.Logger) *QueryService {
	return &QueryService{
		api:     api,
		history: history,
		logger:  log,
		now:     time.Now,
		newID:   utils.NewTimeOrderedID,
	}
}

// Meta fetches one of the metadata documents.
func (s *QueryService) Meta(ctx context.Context, endpoint MetaEndpoint) (any, error) {
	switch endpoint {
	case MetaHelp:
		return s.api.FetchHelp(ctx)
	case MetaVersion:
		return s.api.FetchVersion(ctx)
	case MetaAvailable:
		return s.api.FetchAvailable(ctx)
	case MetaDatabase:
		return s.api.FetchDatabase(ctx)
	case MetaDatasets:
		return s.api.FetchDatasets(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, endpoint)
	}
}

// Custom runs a cypher query and records the outcome in the history.
//
// Queries rejected locally (unsupported format) are not recorded. A failure
// to record is logged and never returned.
func (s *QueryService) Custom(ctx context.Context, cypher string, format neuprint.Format) (*neuprint.Result, error) {
	start := s.now()
	res, err := s.api.FetchCustom(ctx, cypher, format)
	if errors.Is(err, neuprint.ErrInvalidArgument) {
		return nil, err
	}

	entry := models.HistoryEntry{
		ID:        s.newID(),
		Server:    s.api.Server(),
		Query:     cypher,
		Format:    format.String(),
		Duration:  s.now().Sub(start),
		CreatedAt: start,
	}

	if err != nil {
		entry.Error = err.Error()
		var reqErr *neuprint.RequestError
		if errors.As(err, &reqErr) {
			entry.Status = reqErr.StatusCode
		}
	} else {
		entry.RowCount = rowCount(res)
	}

	s.record(ctx, entry)

	return res, err
}

// History returns at most limit recorded queries, newest first.
func (s *QueryService) History(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	entries, err := s.history.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing query history: %w", err)
	}
	return entries, nil
}

// ClearHistory removes every recorded query.
func (s *QueryService) ClearHistory(ctx context.Context) (int64, error) {
	removed, err := s.history.Clear(ctx)
	if err != nil {
		return 0, fmt.Errorf("error clearing query history: %w", err)
	}
	return removed, nil
}

func (s *QueryService) record(ctx context.Context, entry models.HistoryEntry) {
	if err := s.history.Save(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Str("id", entry.ID).Msg("could not record query history")
	}
}

// rowCount counts the rows of a result. JSON results are counted when they
// carry the usual "data" array.
func rowCount(res *neuprint.Result) int {
	if res == nil {
		return 0
	}
	if res.Table != nil {
		return res.Table.Len()
	}

	doc, ok := res.JSON.(map[string]any)
	if !ok {
		return 0
	}
	data, ok := doc["data"].([]any)
	if !ok {
		return 0
	}
	return len(data)
}
