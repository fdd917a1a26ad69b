// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package feed

import (
	"time"

	"github.com/l3montree-dev/vulncat/database/models"
)

type Action string

const (
	ActionAdd    Action = "A"
	ActionUpdate Action = "U"
	ActionRemove Action = "R"
)

// Classify labels an entity relative to the merge watermark. The order of
// checks matters: a tombstone is a removal unconditionally, even when its own
// creation postdates the watermark.
func Classify(entity models.TrackedEntity, since time.Time) Action {
	if _, ok := entity.(models.Removal); ok {
		return ActionRemove
	}
	if entity.GetCreatedAt().Equal(entity.GetUpdatedAt()) || entity.GetCreatedAt().After(since) {
		return ActionAdd
	}
	return ActionUpdate
}
