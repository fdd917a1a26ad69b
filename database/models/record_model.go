// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/vulncat/database"
	"github.com/lib/pq"
)

// Record is the published catalog entry sync clients consume: the CVEs a
// submitted artifact is affected by, plus its coordinates.
type Record struct {
	TrackedModel
	Coordinates database.JSONB `gorm:"type:jsonb" json:"coordinates"`
	CVEs        pq.StringArray `gorm:"column:cves;type:text[];not null" json:"cves"`
	Filename    *string        `gorm:"type:text" json:"filename,omitempty"`

	ArtifactID uuid.UUID `gorm:"type:uuid" json:"artifact"`
	Artifact   Artifact  `gorm:"foreignKey:ArtifactID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (r Record) TableName() string {
	return "records"
}

func (r Record) FeedDocument(includeRefs bool) map[string]any {
	doc := map[string]any{
		"coordinates": map[string]any(r.Coordinates),
		"cves":        []string(r.CVEs),
	}
	if r.Filename != nil {
		doc["filename"] = *r.Filename
	}
	if includeRefs {
		doc["artifact"] = r.ArtifactID.String()
	}
	return doc
}
