// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package neuprint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/connectome-neuprint/neuprint-go/models"
)

// Endpoint paths relative to the server URL.
const (
	PathHelp      = "/api/help"
	PathVersion   = "/api/version"
	PathAvailable = "/api/available"
	PathDatabase  = "/api/dbmeta/database"
	PathDatasets  = "/api/dbmeta/datasets"
	PathCustom    = "/api/custom/custom"
)

// RequestIDHeader carries a random id on every request so client and server
// logs can be correlated.
const RequestIDHeader = "X-Request-Id"

// Client talks to one neuPrint server with one bearer token.
//
// Default headers are fixed in [New]. A Client may be shared between
// goroutines; it performs no retries.
type Client struct {
	server string
	token  string

	http   *resty.Client
	logger zerolog.Logger
}

// Result is the outcome of [Client.FetchCustom]. Exactly one of JSON and
// Table is set, matching Format.
type Result struct {
	Format Format
	JSON   any
	Table  *Table
}

// New validates the credential and the server address and prepares the HTTP
// session. It performs no network I/O.
//
// An empty token falls back to the NEUPRINT_APPLICATION_CREDENTIALS
// environment variable (see [ResolveToken] and [WithLookupEnv]).
func New(server, token string, opts ...Option) (*Client, error) {
	s := defaultSettings()
	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return nil, err
		}
	}

	resolved, err := ResolveToken(token, s.lookup)
	if err != nil {
		return nil, err
	}

	baseURL, err := NormalizeServer(server)
	if err != nil {
		return nil, err
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(resolved).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", s.userAgent).
		SetAllowGetMethodPayload(true)

	if s.timeout > 0 {
		httpClient.SetTimeout(s.timeout)
	}
	if s.transport != nil {
		httpClient.SetTransport(s.transport)
	}

	return &Client{
		server: baseURL,
		token:  resolved,
		http:   httpClient,
		logger: s.logger,
	}, nil
}

// Server returns the normalized server URL.
func (c *Client) Server() string {
	return c.server
}

// Claims decodes the client's token. See [ParseTokenClaims].
func (c *Client) Claims() (TokenClaims, error) {
	return ParseTokenClaims(c.token)
}

// FetchHelp returns the server's API description.
func (c *Client) FetchHelp(ctx context.Context) (any, error) {
	return c.fetchDocument(ctx, PathHelp)
}

// FetchVersion returns the server version document.
func (c *Client) FetchVersion(ctx context.Context) (any, error) {
	return c.fetchDocument(ctx, PathVersion)
}

// FetchAvailable returns the list of available API endpoints.
func (c *Client) FetchAvailable(ctx context.Context) (any, error) {
	return c.fetchDocument(ctx, PathAvailable)
}

// FetchDatabase returns metadata about the backing graph database.
func (c *Client) FetchDatabase(ctx context.Context) (any, error) {
	return c.fetchDocument(ctx, PathDatabase)
}

// FetchDatasets returns the datasets hosted by the server.
func (c *Client) FetchDatasets(ctx context.Context) (any, error) {
	return c.fetchDocument(ctx, PathDatasets)
}

// FetchCustom runs a cypher query through the custom endpoint.
//
// The format is checked before anything is sent; an unsupported value yields
// [ErrInvalidArgument]. With [FormatTable] a response missing "columns" or
// "data" yields [ErrProtocol].
func (c *Client) FetchCustom(ctx context.Context, cypher string, format Format) (*Result, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("%w: unsupported format %q (want %q or %q)", ErrInvalidArgument, format, FormatJSON, FormatTable)
	}

	body := models.CustomRequest{Cypher: cypher}

	if format == FormatJSON {
		var doc any
		if err := c.fetchJSON(ctx, PathCustom, body, &doc); err != nil {
			return nil, err
		}
		return &Result{Format: FormatJSON, JSON: doc}, nil
	}

	var resp models.CustomResponse
	if err := c.fetchJSON(ctx, PathCustom, body, &resp); err != nil {
		return nil, err
	}
	table, err := tableFromResponse(resp)
	if err != nil {
		return nil, err
	}
	return &Result{Format: FormatTable, Table: table}, nil
}

// FetchCustomJSON is FetchCustom with [FormatJSON].
func (c *Client) FetchCustomJSON(ctx context.Context, cypher string) (any, error) {
	res, err := c.FetchCustom(ctx, cypher, FormatJSON)
	if err != nil {
		return nil, err
	}
	return res.JSON, nil
}

// FetchCustomTable is FetchCustom with [FormatTable].
func (c *Client) FetchCustomTable(ctx context.Context, cypher string) (*Table, error) {
	res, err := c.FetchCustom(ctx, cypher, FormatTable)
	if err != nil {
		return nil, err
	}
	return res.Table, nil
}

func (c *Client) fetchDocument(ctx context.Context, path string) (any, error) {
	var doc any
	if err := c.fetchJSON(ctx, path, nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *Client) fetchJSON(ctx context.Context, path string, body, out any) error {
	raw, err := c.fetchRaw(ctx, path, body)
	if err != nil {
		return err
	}

	// numbers stay json.Number so body ids above 2^53 keep every digit
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err = dec.Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s response: %w", ErrProtocol, path, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: decode %s response: trailing data", ErrProtocol, path)
	}
	return nil
}

func (c *Client) fetchRaw(ctx context.Context, path string, body any) ([]byte, error) {
	requestID := uuid.NewString()

	req := c.http.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID)
	if body != nil {
		req.SetBody(body)
	}

	start := time.Now()
	resp, err := req.Get(path)
	elapsed := time.Since(start)

	if err != nil {
		observeRequest(path, "error", elapsed)
		c.logger.Debug().
			Err(err).
			Str("path", path).
			Str("request_id", requestID).
			Dur("duration", elapsed).
			Msg("neuprint request failed")
		return nil, fmt.Errorf("%w: GET %s%s: %w", ErrTransport, c.server, path, err)
	}

	observeRequest(path, strconv.Itoa(resp.StatusCode()), elapsed)
	c.logger.Debug().
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Int("size", len(resp.Body())).
		Dur("duration", elapsed).
		Msg("neuprint request")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}
