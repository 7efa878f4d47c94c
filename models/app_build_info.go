// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotAvailable stands in for build metadata the linker did not set.
const NotAvailable = "N/A"

// AppBuildInfo is the version, date and commit stamped into the neuprint and
// neuprint-sandbox binaries with -ldflags "-X main.buildVersion=...".
//
// The CLI prints it from the build-info command and sends the version in its
// User-Agent; the sandbox logs it once at startup. A zero value is valid and
// reports every field as [NotAvailable].
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo wraps the linker-provided strings. Empty strings are kept
// as-is and reported as [NotAvailable] by the accessors.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.version) }

func (a AppBuildInfo) BuildDate() string { return orNotAvailable(a.date) }

func (a AppBuildInfo) BuildCommit() string { return orNotAvailable(a.commit) }

// UserAgent is the User-Agent header value the neuprint client sends.
func (a AppBuildInfo) UserAgent() string {
	return "neuprint-go/" + a.BuildVersion()
}

func orNotAvailable(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}
