// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package dtos

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/vulncat/database"
	"github.com/l3montree-dev/vulncat/database/models"
)

type SubmissionCreateRequest struct {
	Source   string `json:"source"`
	Filename string `json:"filename"`
	Group    string `json:"group" validate:"required"`

	Coordinates map[string]any `json:"coordinates"`
	CVEs        []string       `json:"cves" validate:"dive,startswith=CVE-"`
	Checksums   map[string]any `json:"checksums"`
	Metadata    map[string]any `json:"metadata"`
	Files       map[string]any `json:"files"`
}

func (r SubmissionCreateRequest) ToModel(submitter string) models.StagedSubmission {
	return models.StagedSubmission{
		Submitter:   submitter,
		Source:      r.Source,
		Filename:    r.Filename,
		Group:       r.Group,
		Coordinates: database.JSONB(r.Coordinates),
		CVEs:        r.CVEs,
		Checksums:   database.JSONB(r.Checksums),
		Metadata:    database.JSONB(r.Metadata),
		Files:       database.JSONB(r.Files),
	}
}

type SubmissionDeclineRequest struct {
	Reason string `json:"reason"`
}

type SubmissionDTO struct {
	ID        uuid.UUID          `json:"id"`
	Created   time.Time          `json:"created"`
	Modified  time.Time          `json:"modified"`
	Submitter string             `json:"submitter"`
	Filename  string             `json:"filename"`
	Group     string             `json:"group"`
	CVEs      []string           `json:"cves"`
	Approval  string             `json:"approval"`
	Comments  models.CommentList `json:"comments"`
}

func SubmissionToDTO(submission models.StagedSubmission) SubmissionDTO {
	return SubmissionDTO{
		ID:        submission.ID,
		Created:   submission.CreatedAt,
		Modified:  submission.UpdatedAt,
		Submitter: submission.Submitter,
		Filename:  submission.Filename,
		Group:     submission.Group,
		CVEs:      submission.CVEs,
		Approval:  string(submission.Approval),
		Comments:  submission.Comments,
	}
}
