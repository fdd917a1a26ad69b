// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/vulncat/database/models"
	"github.com/l3montree-dev/vulncat/feed"
	"gorm.io/gorm"
)

// trackedRepository extends the generic gorm repository for entities that
// participate in the change feed: it exposes the per-collection change
// source and makes every delete write its tombstone.
type trackedRepository[T models.TrackedEntity] struct {
	*GormRepository[uuid.UUID, T]
	db *gorm.DB
}

func newTrackedRepository[T models.TrackedEntity](db *gorm.DB) *trackedRepository[T] {
	return &trackedRepository[T]{
		GormRepository: newGormRepository[uuid.UUID, T](db),
		db:             db,
	}
}

func (r *trackedRepository[T]) ChangeSource(group string, since time.Time) feed.Source {
	return newChangeSource[T](r.db, group, since)
}

// DeleteWithTombstone removes the entity and creates its Removal within the
// same transaction. The contract assumes the entity is live; deleting the
// same id twice writes two tombstones.
func (r *trackedRepository[T]) DeleteWithTombstone(tx *gorm.DB, entity T) error {
	run := func(tx *gorm.DB) error {
		if err := tx.Delete(&entity).Error; err != nil {
			return err
		}
		removal := models.NewRemoval(entity)
		return tx.Create(&removal).Error
	}

	if tx != nil {
		return run(tx)
	}
	return r.Transaction(run)
}
