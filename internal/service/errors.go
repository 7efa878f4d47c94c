package service

import "errors"

var (
	// ErrUnknownEndpoint is returned by [QueryService.Meta] for an endpoint
	// name it does not know.
	ErrUnknownEndpoint = errors.New("unknown metadata endpoint")
)
