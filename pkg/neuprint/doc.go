// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package neuprint is a client for the neuPrint connectome query service.
//
// A [Client] is created once with [New] from a server address and a bearer
// token, then reused for any number of requests:
//
//	c, err := neuprint.New("neuprint.janelia.org", "")
//	if err != nil {
//		return err
//	}
//	table, err := c.FetchCustomTable(ctx, "MATCH (n:Neuron) RETURN n.bodyId LIMIT 5")
//
// An empty token is read from the NEUPRINT_APPLICATION_CREDENTIALS
// environment variable. Only https servers are accepted.
//
// Errors are classified by [ErrConfiguration], [ErrInvalidArgument],
// [ErrProtocol], [ErrTransport] and the [*RequestError] type for non-2xx
// responses.
//
//go:generate mockgen -destination=mock/round_tripper_mock.go -package=mock net/http RoundTripper
package neuprint
