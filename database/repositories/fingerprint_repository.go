// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"github.com/l3montree-dev/vulncat/database/models"
	"gorm.io/gorm"
)

type fingerprintRepository struct {
	*trackedRepository[models.Fingerprint]
	db *gorm.DB
}

func NewFingerprintRepository(db *gorm.DB) *fingerprintRepository {
	return &fingerprintRepository{
		trackedRepository: newTrackedRepository[models.Fingerprint](db),
		db:                db,
	}
}

// Create derives the fingerprint uuid before inserting. The uuid is a pure
// function of the file digests and must never go stale.
func (r *fingerprintRepository) Create(tx *gorm.DB, fingerprint *models.Fingerprint) error {
	fingerprint.DeriveUUID()
	return r.trackedRepository.Create(tx, fingerprint)
}

// Update re-derives the uuid, mirroring Create.
func (r *fingerprintRepository) Update(tx *gorm.DB, fingerprint *models.Fingerprint) error {
	fingerprint.DeriveUUID()
	return r.trackedRepository.Update(tx, fingerprint)
}

func (r *fingerprintRepository) Save(tx *gorm.DB, fingerprint *models.Fingerprint) error {
	fingerprint.DeriveUUID()
	return r.trackedRepository.Save(tx, fingerprint)
}

func (r *fingerprintRepository) FindByUUID(uuid string) (models.Fingerprint, error) {
	var fingerprint models.Fingerprint
	err := r.db.Where("uuid = ?", uuid).First(&fingerprint).Error
	return fingerprint, err
}
