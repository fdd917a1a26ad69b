// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/vulncat/database/models"
	"gorm.io/gorm"
)

type artifactRepository struct {
	*trackedRepository[models.Artifact]
	db *gorm.DB
}

func NewArtifactRepository(db *gorm.DB) *artifactRepository {
	return &artifactRepository{
		trackedRepository: newTrackedRepository[models.Artifact](db),
		db:                db,
	}
}

func (r *artifactRepository) GetByFingerprintID(fingerprintID uuid.UUID) ([]models.Artifact, error) {
	var artifacts []models.Artifact
	err := r.db.Where("fingerprint_id = ?", fingerprintID).Find(&artifacts).Error
	if err != nil {
		return nil, err
	}

	return artifacts, nil
}

func (r *artifactRepository) GetByChecksum(algorithm, checksum string) ([]models.Artifact, error) {
	var artifacts []models.Artifact
	err := r.db.Where("checksums ->> ? = ?", algorithm, checksum).Find(&artifacts).Error
	if err != nil {
		return nil, err
	}

	return artifacts, nil
}
