// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"github.com/l3montree-dev/vulncat/database/models"
	"gorm.io/gorm"
)

type recordRepository struct {
	*trackedRepository[models.Record]
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) *recordRepository {
	return &recordRepository{
		trackedRepository: newTrackedRepository[models.Record](db),
		db:                db,
	}
}

func (r *recordRepository) GetByGroup(group string) ([]models.Record, error) {
	var records []models.Record
	err := r.db.Where("group_name = ?", group).Order("created_at DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *recordRepository) GetByCVE(cve string) ([]models.Record, error) {
	var records []models.Record
	err := r.db.Where("? = ANY(cves)", cve).Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}
