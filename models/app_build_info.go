// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const buildInfoNotAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected by linker flags.
// Missing values are reported as "N/A".
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo], replacing empty values with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// Response converts the build info to its JSON representation.
func (a AppBuildInfo) Response() VersionResponse {
	return VersionResponse{Version: a.Version, Date: a.Date, Commit: a.Commit}
}

func orNotAvailable(v string) string {
	if v == "" {
		return buildInfoNotAvailable
	}
	return v
}
