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

// removalRepository reads tombstones. Removals are written by the tracked
// repositories as part of deletes and are immutable afterwards, so there is
// no update or delete surface here.
type removalRepository struct {
	*GormRepository[uuid.UUID, models.Removal]
	db *gorm.DB
}

func NewRemovalRepository(db *gorm.DB) *removalRepository {
	return &removalRepository{
		GormRepository: newGormRepository[uuid.UUID, models.Removal](db),
		db:             db,
	}
}

func (r *removalRepository) ChangeSource(group string, since time.Time) feed.Source {
	return newChangeSource[models.Removal](r.db, group, since)
}

func (r *removalRepository) GetByOID(oid uuid.UUID) ([]models.Removal, error) {
	var removals []models.Removal
	err := r.db.Where("oid = ?", oid).Find(&removals).Error
	if err != nil {
		return nil, err
	}

	return removals, nil
}
