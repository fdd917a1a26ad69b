// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package feed

import (
	"testing"
	"time"

	"github.com/l3montree-dev/vulncat/database/models"
	"github.com/stretchr/testify/assert"
)

func TestCursor(t *testing.T) {
	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("peek is idempotent", func(t *testing.T) {
		source := &sliceSource{collection: "fingerprints", entities: []models.TrackedEntity{
			fingerprintAt(base, base),
			fingerprintAt(base.Add(time.Minute), base.Add(time.Minute)),
		}}
		cursor, err := NewCursor(source)
		assert.NoError(t, err)

		first, err := cursor.Peek()
		assert.NoError(t, err)
		again, err := cursor.Peek()
		assert.NoError(t, err)
		assert.Equal(t, first.GetID(), again.GetID())

		advanced, err := cursor.Advance()
		assert.NoError(t, err)
		assert.Equal(t, first.GetID(), advanced.GetID())
	})

	t.Run("count is fixed while draining", func(t *testing.T) {
		source := &sliceSource{collection: "fingerprints", entities: []models.TrackedEntity{
			fingerprintAt(base, base),
			fingerprintAt(base.Add(time.Minute), base.Add(time.Minute)),
		}}
		cursor, err := NewCursor(source)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), cursor.Count())

		_, err = cursor.Advance()
		assert.NoError(t, err)
		assert.Equal(t, int64(2), cursor.Count())
	})

	t.Run("peek on exhausted cursor returns nil", func(t *testing.T) {
		cursor, err := NewCursor(&sliceSource{collection: "records"})
		assert.NoError(t, err)

		entity, err := cursor.Peek()
		assert.NoError(t, err)
		assert.Nil(t, entity)
	})

	t.Run("advance on exhausted cursor fails", func(t *testing.T) {
		cursor, err := NewCursor(&sliceSource{collection: "records"})
		assert.NoError(t, err)

		_, err = cursor.Advance()
		assert.ErrorIs(t, err, ErrCursorExhausted)
	})

	t.Run("count error surfaces at construction", func(t *testing.T) {
		_, err := NewCursor(&sliceSource{collection: "records", countErr: errCount})
		assert.Error(t, err)
	})

	t.Run("close reaches the source", func(t *testing.T) {
		source := &sliceSource{collection: "records"}
		cursor, err := NewCursor(source)
		assert.NoError(t, err)
		assert.NoError(t, cursor.Close())
		assert.True(t, source.closed)
	})
}
