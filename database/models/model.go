// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"time"

	"github.com/google/uuid"
)

type Model struct {
	ID        uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m Model) GetID() uuid.UUID {
	return m.ID
}

// TrackedModel is embedded by every entity that participates in the
// incremental change feed. gorm sets CreatedAt and UpdatedAt to the same
// value on insert and bumps UpdatedAt on every later save, so
// CreatedAt == UpdatedAt exactly until the first update.
type TrackedModel struct {
	ID        uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	Group     string    `gorm:"column:group_name;type:text;not null" json:"group"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"modified"`
}

func (m TrackedModel) GetID() uuid.UUID {
	return m.ID
}

func (m TrackedModel) GetGroup() string {
	return m.Group
}

func (m TrackedModel) GetCreatedAt() time.Time {
	return m.CreatedAt
}

func (m TrackedModel) GetUpdatedAt() time.Time {
	return m.UpdatedAt
}

// TrackedEntity is implemented by Fingerprint, Artifact, Record and Removal.
// Deleting a tracked entity must leave a Removal tombstone behind - the
// tracked repositories enforce that.
type TrackedEntity interface {
	TableName() string
	GetID() uuid.UUID
	GetGroup() string
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
	// FeedDocument returns the wire representation of the entity for the
	// change feed. Reference fields are dropped when includeRefs is false.
	FeedDocument(includeRefs bool) map[string]any
}

// Checksummed is implemented by entities that carry per-algorithm checksums.
// The sha512 checksum ends up on tombstones for older sync clients.
type Checksummed interface {
	ChecksumSHA512() string
}
