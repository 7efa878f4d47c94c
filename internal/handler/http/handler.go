package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/connectome-neuprint/neuprint-go/internal/logger"
)

// TokenIssuer is the issuer claim of tokens minted for the sandbox.
const TokenIssuer = "neuprint-sandbox"

type Handler struct {
	fixtures *Fixtures
	signKey  string

	metrics *metrics
	logger  *logger.Logger
}

// NewHandler serves fixtures. When signKey is not empty, bearer tokens must
// be HS256 tokens signed with it; otherwise any bearer token is accepted.
func NewHandler(fixtures *Fixtures, signKey string, logger *logger.Logger) *Handler {
	logger.Info().Bool("verify_tokens", signKey != "").Int("queries", len(fixtures.Queries)).Msg("http handler created")
	return &Handler{
		fixtures: fixtures,
		signKey:  signKey,
		metrics:  newMetrics(prometheus.NewRegistry()),
		logger:   logger,
	}
}
