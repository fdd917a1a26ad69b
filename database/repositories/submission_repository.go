// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/vulncat/database/models"
	"gorm.io/gorm"
)

type stagedSubmissionRepository struct {
	*GormRepository[uuid.UUID, models.StagedSubmission]
	db *gorm.DB
}

func NewStagedSubmissionRepository(db *gorm.DB) *stagedSubmissionRepository {
	return &stagedSubmissionRepository{
		GormRepository: newGormRepository[uuid.UUID, models.StagedSubmission](db),
		db:             db,
	}
}

func (r *stagedSubmissionRepository) GetBySubmitter(submitter string) ([]models.StagedSubmission, error) {
	var submissions []models.StagedSubmission
	err := r.db.Where("submitter = ?", submitter).Order("created_at DESC").Find(&submissions).Error
	if err != nil {
		return nil, err
	}

	return submissions, nil
}

func (r *stagedSubmissionRepository) GetByApproval(approval models.ApprovalStatus) ([]models.StagedSubmission, error) {
	var submissions []models.StagedSubmission
	err := r.db.Where("approval = ?", approval).Order("created_at ASC").Find(&submissions).Error
	if err != nil {
		return nil, err
	}

	return submissions, nil
}

// TransitionApproval is the compare and swap guard of the promotion
// pipeline: the update only sticks when the stored state is still one of the
// expected ones, so two concurrent promoters cannot both claim the row.
func (r *stagedSubmissionRepository) TransitionApproval(tx *gorm.DB, id uuid.UUID, from []models.ApprovalStatus, to models.ApprovalStatus) (bool, error) {
	res := r.GetDB(tx).Model(&models.StagedSubmission{}).
		Where("id = ? AND approval IN ?", id, from).
		Update("approval", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

type approvedSubmissionRepository struct {
	*GormRepository[uuid.UUID, models.ApprovedSubmission]
	db *gorm.DB
}

func NewApprovedSubmissionRepository(db *gorm.DB) *approvedSubmissionRepository {
	return &approvedSubmissionRepository{
		GormRepository: newGormRepository[uuid.UUID, models.ApprovedSubmission](db),
		db:             db,
	}
}

func (r *approvedSubmissionRepository) GetByRecordID(recordID uuid.UUID) (models.ApprovedSubmission, error) {
	var submission models.ApprovedSubmission
	err := r.db.Where("record_id = ?", recordID).First(&submission).Error
	return submission, err
}
