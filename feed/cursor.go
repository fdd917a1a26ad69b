// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package feed

import (
	"github.com/l3montree-dev/vulncat/database/models"
	"github.com/pkg/errors"
)

// ErrCursorExhausted is returned by Advance when the cursor has no elements
// left. Callers are expected to check Peek first.
var ErrCursorExhausted = errors.New("cursor exhausted")

// Cursor wraps a Source with a one-item lookahead.
type Cursor struct {
	source Source
	total  int64

	peeked models.TrackedEntity
	done   bool
}

// NewCursor opens a cursor over the source. The count is computed once here
// and stays fixed while the cursor drains - the streaming serializer needs
// the full count before it has seen the whole sequence.
func NewCursor(source Source) (*Cursor, error) {
	total, err := source.Count()
	if err != nil {
		return nil, errors.Wrapf(err, "could not count %s changes", source.Collection())
	}

	return &Cursor{source: source, total: total}, nil
}

// Peek returns the next element without consuming it. It is idempotent: the
// looked-ahead element is cached until Advance consumes it. A nil entity
// means the cursor is exhausted.
func (c *Cursor) Peek() (models.TrackedEntity, error) {
	if c.done {
		return nil, nil
	}
	if c.peeked != nil {
		return c.peeked, nil
	}

	entity, err := c.source.Next()
	if err != nil {
		return nil, err
	}
	if entity == nil {
		c.done = true
		return nil, nil
	}

	c.peeked = entity
	return c.peeked, nil
}

// Advance consumes and returns the peeked element, fetching one first if
// nothing is cached. It fails on an exhausted cursor.
func (c *Cursor) Advance() (models.TrackedEntity, error) {
	entity, err := c.Peek()
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, ErrCursorExhausted
	}

	c.peeked = nil
	return entity, nil
}

// Count returns the total number of elements the underlying sequence yields.
// It does not shrink as elements are consumed.
func (c *Cursor) Count() int64 {
	return c.total
}

// Collection returns the name of the underlying collection.
func (c *Cursor) Collection() string {
	return c.source.Collection()
}

func (c *Cursor) Close() error {
	return c.source.Close()
}
