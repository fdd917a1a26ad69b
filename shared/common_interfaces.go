// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/vulncat/database/models"
	"github.com/l3montree-dev/vulncat/feed"
	"github.com/l3montree-dev/vulncat/utils"
)

// The tracked repositories deliberately do not embed the generic Repository
// interface: a catalog entity must never be deleted without its tombstone,
// so the only delete they expose is DeleteWithTombstone.

type FingerprintRepository interface {
	Create(tx DB, fingerprint *models.Fingerprint) error
	Read(id uuid.UUID) (models.Fingerprint, error)
	Update(tx DB, fingerprint *models.Fingerprint) error
	Save(tx DB, fingerprint *models.Fingerprint) error
	Transaction(fn func(tx DB) error) error
	DeleteWithTombstone(tx DB, fingerprint models.Fingerprint) error
	ChangeSource(group string, since time.Time) feed.Source
	FindByUUID(uuid string) (models.Fingerprint, error)
}

type ArtifactRepository interface {
	Create(tx DB, artifact *models.Artifact) error
	Read(id uuid.UUID) (models.Artifact, error)
	Update(tx DB, artifact *models.Artifact) error
	Save(tx DB, artifact *models.Artifact) error
	Transaction(fn func(tx DB) error) error
	DeleteWithTombstone(tx DB, artifact models.Artifact) error
	ChangeSource(group string, since time.Time) feed.Source
	GetByFingerprintID(fingerprintID uuid.UUID) ([]models.Artifact, error)
	GetByChecksum(algorithm, checksum string) ([]models.Artifact, error)
}

type RecordRepository interface {
	Create(tx DB, record *models.Record) error
	Read(id uuid.UUID) (models.Record, error)
	Update(tx DB, record *models.Record) error
	Save(tx DB, record *models.Record) error
	Transaction(fn func(tx DB) error) error
	DeleteWithTombstone(tx DB, record models.Record) error
	ChangeSource(group string, since time.Time) feed.Source
	GetByGroup(group string) ([]models.Record, error)
	GetByCVE(cve string) ([]models.Record, error)
}

// RemovalRepository is read only: tombstones are written by the tracked
// repositories as a side effect of deletes and are immutable afterwards.
type RemovalRepository interface {
	Read(id uuid.UUID) (models.Removal, error)
	All() ([]models.Removal, error)
	ChangeSource(group string, since time.Time) feed.Source
	GetByOID(oid uuid.UUID) ([]models.Removal, error)
}

type StagedSubmissionRepository interface {
	utils.Repository[uuid.UUID, models.StagedSubmission, DB]
	GetBySubmitter(submitter string) ([]models.StagedSubmission, error)
	GetByApproval(approval models.ApprovalStatus) ([]models.StagedSubmission, error)
	// TransitionApproval atomically moves the stored approval state from one
	// of the given states to the target. It reports false when the row is not
	// in any of them, which makes it usable as a single-writer guard.
	TransitionApproval(tx DB, id uuid.UUID, from []models.ApprovalStatus, to models.ApprovalStatus) (bool, error)
}

type ApprovedSubmissionRepository interface {
	Create(tx DB, submission *models.ApprovedSubmission) error
	Read(id uuid.UUID) (models.ApprovedSubmission, error)
	All() ([]models.ApprovedSubmission, error)
	GetByRecordID(recordID uuid.UUID) (models.ApprovedSubmission, error)
}

type AccountRepository interface {
	utils.Repository[uuid.UUID, models.Account, DB]
	FindByUsername(username string) (models.Account, error)
}

// TrustService answers whether a submitter may bypass manual approval.
type TrustService interface {
	IsTrusted(username string) (bool, error)
}

// SourceFileStore removes staged upload files. Removal failures are
// reported, never fatal - the pipeline records them as audit comments.
type SourceFileStore interface {
	Remove(path string) error
}

// Fingerprinter wraps the external hashing tool that turns a staged archive
// into file path -> sha512 digest pairs.
type Fingerprinter interface {
	Fingerprint(ctx context.Context, group, source string) (map[string]string, error)
}

type FeedService interface {
	NewMerger(group string, since time.Time) (*feed.Merger, error)
}

type SubmissionService interface {
	Create(submission *models.StagedSubmission) error
	Read(id uuid.UUID) (models.StagedSubmission, error)
	Save(submission *models.StagedSubmission) error
	Approve(id uuid.UUID, moderator string) (models.StagedSubmission, error)
	Decline(id uuid.UUID, moderator, reason string) (models.StagedSubmission, error)
	ProcessSource(id uuid.UUID)
}
