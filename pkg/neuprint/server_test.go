// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package neuprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeServer(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{name: "bare host", input: "neuprint.janelia.org", want: "https://neuprint.janelia.org"},
		{name: "host and port", input: "localhost:11000", want: "https://localhost:11000"},
		{name: "bare host with path", input: "example.org/neuprint", want: "https://example.org/neuprint"},
		{name: "https kept as-is", input: "https://neuprint.janelia.org", want: "https://neuprint.janelia.org"},
		{name: "https trailing slash kept", input: "https://neuprint.janelia.org/", want: "https://neuprint.janelia.org/"},
		{name: "http rejected", input: "http://neuprint.janelia.org", wantErr: "insecure scheme rejected"},
		{name: "ftp rejected", input: "ftp://neuprint.janelia.org", wantErr: "unknown protocol: ftp"},
		{name: "bolt rejected", input: "bolt://db:7687", wantErr: "unknown protocol: bolt"},
		{name: "uppercase HTTPS treated as unknown", input: "HTTPS://example.org", wantErr: "unknown protocol: HTTPS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeServer(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrConfiguration)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_ServerNormalization(t *testing.T) {
	c, err := New("neuprint.janelia.org", "tok")
	require.NoError(t, err)
	assert.Equal(t, "https://neuprint.janelia.org", c.Server())

	_, err = New("http://neuprint.janelia.org", "tok")
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = New("gopher://neuprint.janelia.org", "tok")
	require.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "gopher")
}

func TestNew_CredentialChecksRunFirst(t *testing.T) {
	_, err := New("neuprint.janelia.org", "", WithLookupEnv(lookupFrom(nil)))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "no credential available")
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New("neuprint.janelia.org", "tok", WithTransport(nil))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = New("neuprint.janelia.org", "tok", WithLookupEnv(nil))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = New("neuprint.janelia.org", "tok", WithTimeout(-1))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
