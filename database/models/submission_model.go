// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/vulncat/database"
	"github.com/lib/pq"
)

type ApprovalStatus string

const (
	ApprovalRequested       ApprovalStatus = "REQUESTED"
	ApprovalPendingApproval ApprovalStatus = "PENDING_APPROVAL"
	ApprovalApproved        ApprovalStatus = "APPROVED"
	ApprovalDeclined        ApprovalStatus = "DECLINED"
	ApprovalInDatabase      ApprovalStatus = "IN_DATABASE"
	ApprovalInvalid         ApprovalStatus = "INVALID"
)

// Terminal reports whether no further transition may leave the state.
func (s ApprovalStatus) Terminal() bool {
	return s == ApprovalDeclined || s == ApprovalInDatabase || s == ApprovalInvalid
}

// StagedSubmission is an untrusted, partially validated submission. It is
// owned by the submitter until it is promoted into the canonical catalog or
// rejected, and it is deleted on both outcomes. Staged deletions do not leave
// tombstones behind - only published entities do.
type StagedSubmission struct {
	Model
	Submitter string `gorm:"type:text" json:"submitter"`
	Source    string `gorm:"type:text" json:"source"`
	Filename  string `gorm:"type:text" json:"filename"`
	Group     string `gorm:"column:group_name;type:text" json:"group"`

	Coordinates database.JSONB `gorm:"type:jsonb" json:"coordinates"`
	CVEs        pq.StringArray `gorm:"column:cves;type:text[]" json:"cves"`
	Checksums   database.JSONB `gorm:"type:jsonb" json:"checksums"`
	Metadata    database.JSONB `gorm:"type:jsonb" json:"metadata"`
	// Files is the candidate fingerprint. It stays unpublished until
	// promotion transfers it to a canonical Fingerprint.
	Files database.JSONB `gorm:"type:jsonb" json:"files"`

	Comments CommentList    `gorm:"type:jsonb" json:"comments"`
	Approval ApprovalStatus `gorm:"type:text;default:'REQUESTED'" json:"approval"`
}

func (s StagedSubmission) TableName() string {
	return "staged_submissions"
}

// AutoComment appends a pipeline-generated note to the submission.
func (s *StagedSubmission) AutoComment(message string) {
	s.Comments = s.Comments.Append(CommentAutoAuthor, message)
}

// Comment appends a user-authored note to the submission.
func (s *StagedSubmission) Comment(author, message string) {
	s.Comments = s.Comments.Append(author, message)
}

// CandidateFingerprint builds the unpublished fingerprint from the staged
// files.
func (s StagedSubmission) CandidateFingerprint() Fingerprint {
	return Fingerprint{
		TrackedModel: TrackedModel{Group: s.Group},
		Files:        s.Files,
	}
}

// ApprovedSubmission is the append-only audit record written when a staged
// submission is promoted. It keeps the full comment history and references
// the record the promotion produced. It is never deleted.
type ApprovedSubmission struct {
	Model
	Submitter string         `gorm:"type:text" json:"submitter"`
	CVEs      pq.StringArray `gorm:"column:cves;type:text[]" json:"cves"`
	Comments  CommentList    `gorm:"type:jsonb" json:"comments"`
	Approval  ApprovalStatus `gorm:"type:text" json:"approval"`

	RecordID uuid.UUID `gorm:"type:uuid;not null" json:"record"`
	Record   Record    `gorm:"foreignKey:RecordID" json:"-"`
}

func (s ApprovedSubmission) TableName() string {
	return "approved_submissions"
}
