package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/connectome-neuprint/neuprint-go/models"
)

// QueryFixture is the canned answer to one cypher query. A non-zero Status
// makes the sandbox fail the query with that status and Error as message.
type QueryFixture struct {
	Cypher  string   `json:"cypher"`
	Columns []string `json:"columns,omitempty"`
	Data    [][]any  `json:"data,omitempty"`
	Status  int      `json:"status,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func (q QueryFixture) response() models.CustomResponse {
	resp := models.CustomResponse{Columns: q.Columns, Data: q.Data}
	if resp.Columns == nil {
		resp.Columns = []string{}
	}
	if resp.Data == nil {
		resp.Data = [][]any{}
	}
	return resp
}

// Fixtures holds everything the sandbox serves.
type Fixtures struct {
	Help      any
	Version   any
	Available any
	Database  any
	Datasets  any

	// Queries is keyed by the cypher text with surrounding whitespace removed.
	Queries map[string]QueryFixture
	// Default answers every query not found in Queries.
	Default QueryFixture
}

// Lookup returns the fixture for cypher, or the default one.
func (f *Fixtures) Lookup(cypher string) QueryFixture {
	if q, ok := f.Queries[strings.TrimSpace(cypher)]; ok {
		return q
	}
	return f.Default
}

// fixtureFile is the on-disk shape read by LoadFixtures. Missing sections keep
// the built-in defaults.
type fixtureFile struct {
	Help      any            `json:"help"`
	Version   any            `json:"version"`
	Available any            `json:"available"`
	Database  any            `json:"database"`
	Datasets  any            `json:"datasets"`
	Queries   []QueryFixture `json:"queries"`
	Default   *QueryFixture  `json:"default"`
}

// LoadFixtures reads a fixture file on top of [DefaultFixtures].
func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading fixtures: %w", err)
	}

	var file fixtureFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error decoding fixtures: %w", err)
	}

	f := DefaultFixtures()
	for dst, src := range map[*any]any{
		&f.Help:      file.Help,
		&f.Version:   file.Version,
		&f.Available: file.Available,
		&f.Database:  file.Database,
		&f.Datasets:  file.Datasets,
	} {
		if src != nil {
			*dst = src
		}
	}

	if file.Default != nil {
		if err := file.Default.validate(); err != nil {
			return nil, fmt.Errorf("%w: default: %w", ErrInvalidFixture, err)
		}
		f.Default = *file.Default
	}

	for i, q := range file.Queries {
		key := strings.TrimSpace(q.Cypher)
		if key == "" {
			return nil, fmt.Errorf("%w: query %d has no cypher", ErrInvalidFixture, i)
		}
		if err := q.validate(); err != nil {
			return nil, fmt.Errorf("%w: query %d: %w", ErrInvalidFixture, i, err)
		}
		f.Queries[key] = q
	}

	return f, nil
}

func (q QueryFixture) validate() error {
	if q.Status != 0 {
		if q.Status < http.StatusBadRequest || q.Status > 599 {
			return fmt.Errorf("status %d is not an error status", q.Status)
		}
		return nil
	}

	for i, row := range q.Data {
		if len(row) != len(q.Columns) {
			return fmt.Errorf("row %d has %d values, want %d", i, len(row), len(q.Columns))
		}
	}
	return nil
}

// DefaultFixtures returns a small hemibrain-like data set.
func DefaultFixtures() *Fixtures {
	return &Fixtures{
		Help: map[string]any{
			"title":       "neuPrint sandbox",
			"description": "Canned responses for local development. POST or GET /api/custom/custom with {\"cypher\": ...}.",
		},
		Version: map[string]any{"Version": "0.1.0-sandbox"},
		Available: []any{
			"/api/available",
			"/api/help",
			"/api/version",
			"/api/dbmeta/database",
			"/api/dbmeta/datasets",
			"/api/custom/custom",
		},
		Database: map[string]any{
			"Location":    "sandbox://fixtures",
			"Description": "in-memory fixtures",
		},
		Datasets: map[string]any{
			"hemibrain:v1.2.1": map[string]any{
				"last-mod":       "2021-05-13 00:00:00",
				"uuid":           "a89eb3af216a46cdba81204d8f954786",
				"ROIs":           []any{"AB(L)", "AB(R)", "CA(L)", "CA(R)", "EB", "FB", "PB"},
				"superLevelROIs": []any{"CX", "MB(+ACA)(R)", "LX(R)"},
			},
		},
		Queries: map[string]QueryFixture{
			"MATCH (n:Neuron) RETURN count(n)": {
				Cypher:  "MATCH (n:Neuron) RETURN count(n)",
				Columns: []string{"count(n)"},
				Data:    [][]any{{3.0}},
			},
		},
		Default: QueryFixture{
			Columns: []string{"bodyId", "type", "instance", "pre", "post"},
			Data: [][]any{
				{5813105172.0, "MBON01", "MBON01(y5B'2a)_R", 1384.0, 8234.0},
				{424789697.0, "KCg-m", "KCg-m_R", 214.0, 1063.0},
				{1008024276.0, "EPG", "EPG(PB08)_L7", 512.0, 2210.0},
			},
		},
	}
}
