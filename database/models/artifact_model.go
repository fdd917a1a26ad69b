// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/vulncat/database"
)

// Artifact carries the combined checksums of one submitted file and owns the
// fingerprint describing its contents.
type Artifact struct {
	TrackedModel
	Checksums database.JSONB     `gorm:"type:jsonb" json:"checksums"`
	Metadata  database.JSONBList `gorm:"type:jsonb" json:"metadata"`

	FingerprintID uuid.UUID   `gorm:"type:uuid" json:"fingerprint"`
	Fingerprint   Fingerprint `gorm:"foreignKey:FingerprintID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (a Artifact) TableName() string {
	return "artifacts"
}

func (a Artifact) ChecksumSHA512() string {
	if v, ok := a.Checksums["sha512"].(string); ok {
		return v
	}
	return ""
}

func (a Artifact) FeedDocument(includeRefs bool) map[string]any {
	doc := map[string]any{
		"checksums": map[string]any(a.Checksums),
		"metadata":  []map[string]any(a.Metadata),
	}
	if includeRefs {
		doc["fingerprint"] = a.FingerprintID.String()
	}
	return doc
}
