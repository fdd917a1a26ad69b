// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package feed

import (
	"time"

	"github.com/l3montree-dev/vulncat/database/models"
)

// Merger combines the change cursors of several collections into one
// globally time-ordered sequence. The sequence is lazy, finite and single
// pass: consuming it fully drains every cursor exactly once.
type Merger struct {
	since   time.Time
	cursors []*Cursor
	total   int64
}

// NewMerger opens one cursor per source. The source order is the tie break:
// when two cursors peek at the same merge key, the first-listed one wins.
func NewMerger(since time.Time, sources ...Source) (*Merger, error) {
	m := &Merger{since: since}

	for _, source := range sources {
		cursor, err := NewCursor(source)
		if err != nil {
			m.Close() // nolint:errcheck // already failing
			return nil, err
		}
		m.cursors = append(m.cursors, cursor)
		m.total += cursor.Count()
	}

	return m, nil
}

func (m *Merger) Since() time.Time {
	return m.since
}

// TotalCount is the sum of all cursor counts, fixed at construction time.
func (m *Merger) TotalCount() int64 {
	return m.total
}

// Next returns the entity with the smallest merge key across all active
// cursors, or nil once every cursor is exhausted.
func (m *Merger) Next() (models.TrackedEntity, error) {
	var best *Cursor
	var bestKey time.Time

	for _, cursor := range m.cursors {
		entity, err := cursor.Peek()
		if err != nil {
			return nil, err
		}
		if entity == nil {
			continue
		}

		key := m.mergeKey(entity)
		if best == nil || key.Before(bestKey) {
			best = cursor
			bestKey = key
		}
	}

	if best == nil {
		return nil, nil
	}
	return best.Advance()
}

// mergeKey orders an entity within the merged feed. Entities created after
// the watermark sort by creation time so additions appear in creation order;
// entities that predate the watermark and were only touched since sort by
// their modification time instead.
func (m *Merger) mergeKey(entity models.TrackedEntity) time.Time {
	if entity.GetCreatedAt().After(m.since) {
		return entity.GetCreatedAt()
	}
	return entity.GetUpdatedAt()
}

func (m *Merger) Close() error {
	var firstErr error
	for _, cursor := range m.cursors {
		if err := cursor.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
