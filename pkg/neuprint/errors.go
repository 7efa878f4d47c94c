// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package neuprint

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Error categories. Every error returned by this package matches exactly one
// of them (or is a [*RequestError]) via [errors.Is].
var (
	// ErrConfiguration is returned by [New] when the credential is missing or
	// malformed, or when the server URL uses an insecure or unknown scheme.
	ErrConfiguration = errors.New("neuprint: configuration error")

	// ErrInvalidArgument is returned when a caller passes an unsupported
	// value, e.g. an unknown result format. No request is sent.
	ErrInvalidArgument = errors.New("neuprint: invalid argument")

	// ErrProtocol is returned when a successful response cannot be decoded
	// or lacks the fields the result shape requires.
	ErrProtocol = errors.New("neuprint: unexpected response")

	// ErrTransport wraps DNS, connection, TLS and timeout failures.
	ErrTransport = errors.New("neuprint: transport error")
)

// Status sentinels matched by [*RequestError] through [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// RequestError reports a non-2xx response from the neuPrint server.
type RequestError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *RequestError) Error() string {
	if e == nil {
		return "<nil>"
	}
	body := strings.TrimSpace(string(e.Body))
	if body == "" {
		body = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("neuprint: %s %s: http %d: %s", e.Method, e.URL, e.StatusCode, body)
}

// Is lets errors.Is(err, ErrUnauthorized) and friends work on status codes.
func (e *RequestError) Is(target error) bool {
	if e == nil {
		return false
	}
	return statusSentinel(e.StatusCode) == target
}

func statusSentinel(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return nil
	}
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &RequestError{
		Method:     resp.Request.Method,
		URL:        resp.Request.URL,
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}
}

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}
