// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package feed

import (
	"testing"
	"time"

	"github.com/l3montree-dev/vulncat/database/models"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	since := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		entity   models.TrackedEntity
		expected Action
	}{
		{
			name:     "created after watermark is an addition",
			entity:   fingerprintAt(since.Add(time.Hour), since.Add(2*time.Hour)),
			expected: ActionAdd,
		},
		{
			name:     "never modified since creation is an addition",
			entity:   fingerprintAt(since.Add(-time.Hour), since.Add(-time.Hour)),
			expected: ActionAdd,
		},
		{
			name:     "predates watermark and was touched since is an update",
			entity:   recordAt(since.Add(-24*time.Hour), since.Add(time.Hour)),
			expected: ActionUpdate,
		},
		{
			name:     "tombstone is a removal",
			entity:   removalAt(since.Add(-time.Hour), since.Add(time.Hour)),
			expected: ActionRemove,
		},
		{
			name:     "tombstone created after watermark is still a removal",
			entity:   removalAt(since.Add(time.Hour), since.Add(time.Hour)),
			expected: ActionRemove,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.entity, since))
		})
	}
}
