// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"github.com/google/uuid"
)

// Removal is the tombstone left behind whenever a tracked entity is deleted.
// It is immutable once written: sync clients use it to detect removals, so a
// delete that does not produce one is a correctness bug.
type Removal struct {
	TrackedModel
	OID        uuid.UUID `gorm:"type:uuid;not null" json:"oid"`
	Collection string    `gorm:"type:text;not null" json:"collection"`
	// Hash carries the sha512 checksum of the deleted entity when it had
	// one. Older sync clients match removals by checksum instead of id.
	Hash *string `gorm:"type:text" json:"hash,omitempty"`
}

func (r Removal) TableName() string {
	return "removals"
}

func (r Removal) FeedDocument(includeRefs bool) map[string]any {
	doc := map[string]any{
		"oid":        r.OID.String(),
		"collection": r.Collection,
	}
	if r.Hash != nil {
		doc["hash"] = *r.Hash
	}
	return doc
}

// NewRemoval builds the tombstone for a tracked entity that is about to be
// deleted.
func NewRemoval(entity TrackedEntity) Removal {
	removal := Removal{
		TrackedModel: TrackedModel{Group: entity.GetGroup()},
		OID:          entity.GetID(),
		Collection:   entity.TableName(),
	}

	if checksummed, ok := entity.(Checksummed); ok {
		if hash := checksummed.ChecksumSHA512(); hash != "" {
			removal.Hash = &hash
		}
	}

	return removal
}
