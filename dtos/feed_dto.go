// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package dtos

// ChangeItemDTO is one element of the streamed change feed.
// c: collection, a: action, d: document.
type ChangeItemDTO struct {
	Collection string         `json:"c"`
	Action     string         `json:"a"`
	Document   map[string]any `json:"d"`
}

// ServiceStatusDTO describes one service api version.
type ServiceStatusDTO struct {
	Version     int    `json:"version"`
	Supported   bool   `json:"supported"`
	Recommended bool   `json:"recommended"`
	Format      string `json:"format"`
	Endpoint    string `json:"endpoint"`
	EOL         string `json:"eol,omitempty"`
}
