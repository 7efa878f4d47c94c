package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	tests := []struct {
		name        string
		info        AppBuildInfo
		wantVersion string
		wantDate    string
		wantCommit  string
		wantAgent   string
	}{
		{
			name:        "stamped",
			info:        NewAppBuildInfo("v1.2.3", "2026-05-01", "abc123"),
			wantVersion: "v1.2.3",
			wantDate:    "2026-05-01",
			wantCommit:  "abc123",
			wantAgent:   "neuprint-go/v1.2.3",
		},
		{
			name:        "zero value",
			info:        AppBuildInfo{},
			wantVersion: NotAvailable,
			wantDate:    NotAvailable,
			wantCommit:  NotAvailable,
			wantAgent:   "neuprint-go/N/A",
		},
		{
			name:        "partially stamped",
			info:        NewAppBuildInfo("v0.1.0", "", ""),
			wantVersion: "v0.1.0",
			wantDate:    NotAvailable,
			wantCommit:  NotAvailable,
			wantAgent:   "neuprint-go/v0.1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantVersion, tt.info.BuildVersion())
			assert.Equal(t, tt.wantDate, tt.info.BuildDate())
			assert.Equal(t, tt.wantCommit, tt.info.BuildCommit())
			assert.Equal(t, tt.wantAgent, tt.info.UserAgent())
		})
	}
}
