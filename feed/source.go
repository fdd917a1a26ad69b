// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

// Package feed implements the incremental change feed: per-collection
// cursors with one-item lookahead, a k-way time-ordered merge over them and
// the classification of every emitted entity as add, update or removal.
package feed

import (
	"github.com/l3montree-dev/vulncat/database/models"
)

// Source is one collection's filtered change sequence: entities of a single
// group modified after the watermark, ordered ascending by creation time.
// The tracked repositories implement it on top of a streamed row scan.
type Source interface {
	Collection() string
	// Count returns the total number of entities the sequence will yield.
	// It must be callable before the first Next.
	Count() (int64, error)
	// Next returns the next entity, or nil once the sequence is exhausted.
	Next() (models.TrackedEntity, error)
	Close() error
}
