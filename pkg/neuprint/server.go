// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package neuprint

import "strings"

const (
	schemeSeparator = "://"
	httpsPrefix     = "https://"
	httpPrefix      = "http://"
)

// NormalizeServer returns the absolute https URL of a neuPrint server.
//
// A bare host ("neuprint.janelia.org") gets an https:// prefix. Plain http and
// any other scheme are rejected with [ErrConfiguration]. The address is
// otherwise left untouched.
func NormalizeServer(server string) (string, error) {
	switch {
	case !strings.Contains(server, schemeSeparator):
		return httpsPrefix + server, nil
	case strings.HasPrefix(server, httpPrefix):
		return "", configErrorf("insecure scheme rejected: server must be https, not http (%q)", server)
	case !strings.HasPrefix(server, httpsPrefix):
		scheme, _, _ := strings.Cut(server, schemeSeparator)
		return "", configErrorf("unknown protocol: %s", scheme)
	default:
		return server, nil
	}
}
