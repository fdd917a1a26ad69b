// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/l3montree-dev/vulncat/database"
	"github.com/l3montree-dev/vulncat/database/models"
	"github.com/l3montree-dev/vulncat/shared"
	"github.com/l3montree-dev/vulncat/utils"
	"github.com/pkg/errors"
)

// submissionMetadataFilename marks metadata that came in through the
// submission pipeline rather than from an artifact scan.
const submissionMetadataFilename = "vulncat.submission"

// ErrPromotionConflict is returned when a submission reaches the promotion
// path while it also passes full validation. Promotion of fully valid
// submissions needs an explicit moderator decision on the complete data, so
// the pipeline marks such submissions INVALID instead of pushing them.
var ErrPromotionConflict = errors.New("cannot autopush a fully valid submission, marked invalid")

type SubmissionService struct {
	stagedRepository      shared.StagedSubmissionRepository
	approvedRepository    shared.ApprovedSubmissionRepository
	fingerprintRepository shared.FingerprintRepository
	artifactRepository    shared.ArtifactRepository
	recordRepository      shared.RecordRepository

	trustService  shared.TrustService
	sourceFiles   shared.SourceFileStore
	fingerprinter shared.Fingerprinter

	utils.FireAndForgetSynchronizer
}

func NewSubmissionService(
	stagedRepository shared.StagedSubmissionRepository,
	approvedRepository shared.ApprovedSubmissionRepository,
	fingerprintRepository shared.FingerprintRepository,
	artifactRepository shared.ArtifactRepository,
	recordRepository shared.RecordRepository,
	trustService shared.TrustService,
	sourceFiles shared.SourceFileStore,
	fingerprinter shared.Fingerprinter,
	synchronizer utils.FireAndForgetSynchronizer,
) *SubmissionService {
	return &SubmissionService{
		stagedRepository:          stagedRepository,
		approvedRepository:        approvedRepository,
		fingerprintRepository:     fingerprintRepository,
		artifactRepository:        artifactRepository,
		recordRepository:          recordRepository,
		trustService:              trustService,
		sourceFiles:               sourceFiles,
		fingerprinter:             fingerprinter,
		FireAndForgetSynchronizer: synchronizer,
	}
}

// Create stages a fresh submission. Every submission enters the pipeline as
// REQUESTED regardless of what the caller set.
func (s *SubmissionService) Create(submission *models.StagedSubmission) error {
	submission.Approval = models.ApprovalRequested
	return s.stagedRepository.Create(nil, submission)
}

func (s *SubmissionService) Read(id uuid.UUID) (models.StagedSubmission, error) {
	return s.stagedRepository.Read(id)
}

// ready checks whether the submission carries everything the catalog needs.
// The first missing piece is recorded as an auto comment so the audit trail
// explains why a submission did not move.
func (s *SubmissionService) ready(submission *models.StagedSubmission) bool {
	reason := ""
	switch {
	case strings.TrimSpace(submission.Group) == "":
		reason = "no group specified"
	case len(submission.CVEs) == 0:
		reason = "no cves provided"
	case len(submission.Files) == 0:
		reason = "no fingerprint provided"
	case len(submission.Checksums) == 0:
		reason = "no checksums provided"
	default:
		return true
	}

	slog.Debug("submission not ready for promotion", "submission", submission.ID.String(), "reason", reason)
	submission.AutoComment(reason)
	return false
}

// autoPromotionEligible decides whether a save may skip manual approval. Only
// non-terminal, not yet fully valid submissions from trusted submitters
// qualify.
func (s *SubmissionService) autoPromotionEligible(submission *models.StagedSubmission, ready bool) (bool, error) {
	if submission.Approval != models.ApprovalRequested && submission.Approval != models.ApprovalPendingApproval {
		return false, nil
	}
	if ready {
		return false, nil
	}
	if submission.Submitter == "" {
		return false, nil
	}

	trusted, err := s.trustService.IsTrusted(submission.Submitter)
	if err != nil {
		return false, errors.Wrap(err, "could not check submitter trust")
	}
	if !trusted {
		return false, nil
	}

	submission.AutoComment("trusted submitter")
	return true, nil
}

// Save runs the promotion state machine on every persist attempt. The
// readiness verdict is computed exactly once per save so eligibility and the
// promotion guard agree and the audit trail gets at most one note per check.
func (s *SubmissionService) Save(submission *models.StagedSubmission) error {
	ready := s.ready(submission)

	eligible, err := s.autoPromotionEligible(submission, ready)
	if err != nil {
		return err
	}

	if submission.Approval == models.ApprovalApproved || eligible {
		if ready {
			submission.Approval = models.ApprovalInvalid
			submission.AutoComment("cannot autopush a fully valid submission")
			if err := s.stagedRepository.Save(nil, submission); err != nil {
				return err
			}
			return ErrPromotionConflict
		}
		return s.promote(submission)
	}

	return s.stagedRepository.Save(nil, submission)
}

// promotableStates are the approval states a promotion may start from.
var promotableStates = []models.ApprovalStatus{
	models.ApprovalRequested,
	models.ApprovalPendingApproval,
	models.ApprovalApproved,
}

// promote moves a staged submission into the canonical catalog. The claim at
// the top is a compare and swap on the stored approval state, so concurrent
// saves of the same submission cannot double promote. The store writes after
// it happen sequentially without a surrounding transaction, so a failure
// halfway leaves already created entities behind. Such partial promotions are
// surfaced loudly for manual reconciliation instead of being rolled back.
func (s *SubmissionService) promote(submission *models.StagedSubmission) error {
	claimed, err := s.stagedRepository.TransitionApproval(nil, submission.ID, promotableStates, models.ApprovalInDatabase)
	if err != nil {
		return s.promotionFailure(submission, "claim", err)
	}
	if !claimed {
		return errors.Errorf("submission %s was already claimed for promotion", submission.ID)
	}

	fingerprint := submission.CandidateFingerprint()
	if err := s.fingerprintRepository.Create(nil, &fingerprint); err != nil {
		return s.promotionFailure(submission, "fingerprint", err)
	}

	artifact := models.Artifact{
		TrackedModel:  models.TrackedModel{Group: submission.Group},
		Checksums:     submission.Checksums,
		Metadata:      submissionMetadata(submission),
		FingerprintID: fingerprint.ID,
	}
	if err := s.artifactRepository.Create(nil, &artifact); err != nil {
		return s.promotionFailure(submission, "artifact", err)
	}

	record := models.Record{
		TrackedModel: models.TrackedModel{Group: submission.Group},
		Coordinates:  submission.Coordinates,
		CVEs:         submission.CVEs,
		Filename:     utils.EmptyThenNil(submission.Filename),
		ArtifactID:   artifact.ID,
	}
	if err := s.recordRepository.Create(nil, &record); err != nil {
		return s.promotionFailure(submission, "record", err)
	}

	comments := submission.Comments.Append(models.CommentAutoAuthor, "moved to database")
	if submission.Source != "" {
		if err := s.sourceFiles.Remove(submission.Source); err != nil {
			slog.Warn("could not remove submission source file", "submission", submission.ID.String(), "source", submission.Source, "err", err)
			comments = comments.Append(models.CommentAutoAuthor, "source file deletion failed")
		} else {
			comments = comments.Append(models.CommentAutoAuthor, "source file deleted")
		}
	}

	approved := models.ApprovedSubmission{
		Submitter: submission.Submitter,
		CVEs:      submission.CVEs,
		Comments:  comments,
		Approval:  models.ApprovalInDatabase,
		RecordID:  record.ID,
	}
	if err := s.approvedRepository.Create(nil, &approved); err != nil {
		return s.promotionFailure(submission, "approved submission", err)
	}

	// staging rows are not part of the published catalog, their deletion
	// leaves no tombstone
	if err := s.stagedRepository.Delete(nil, submission.ID); err != nil {
		return s.promotionFailure(submission, "staged cleanup", err)
	}

	submission.Approval = models.ApprovalInDatabase
	submission.Comments = comments
	slog.Info("submission promoted", "submission", submission.ID.String(), "record", record.ID.String(), "group", submission.Group)
	return nil
}

func (s *SubmissionService) promotionFailure(submission *models.StagedSubmission, step string, err error) error {
	wrapped := errors.Wrapf(err, "promotion of submission %s failed at step %s", submission.ID, step)
	slog.Error("partial promotion failure, manual reconciliation required", "submission", submission.ID.String(), "step", step, "err", err)
	sentry.CaptureException(wrapped)
	return wrapped
}

// Approve marks a submission force-approved by a moderator and immediately
// runs the pipeline, which promotes it when it is not also fully valid.
func (s *SubmissionService) Approve(id uuid.UUID, moderator string) (models.StagedSubmission, error) {
	submission, err := s.stagedRepository.Read(id)
	if err != nil {
		return submission, err
	}
	if submission.Approval.Terminal() {
		return submission, errors.Errorf("submission %s is already %s", id, submission.Approval)
	}

	submission.Approval = models.ApprovalApproved
	submission.Comment(moderator, "approved")
	err = s.Save(&submission)
	return submission, err
}

// Decline rejects a submission and removes it from staging along with its
// uploaded source file.
func (s *SubmissionService) Decline(id uuid.UUID, moderator, reason string) (models.StagedSubmission, error) {
	submission, err := s.stagedRepository.Read(id)
	if err != nil {
		return submission, err
	}
	if submission.Approval.Terminal() {
		return submission, errors.Errorf("submission %s is already %s", id, submission.Approval)
	}

	submission.Approval = models.ApprovalDeclined
	if reason == "" {
		reason = "declined"
	}
	submission.Comment(moderator, reason)
	slog.Info("submission declined", "submission", id.String(), "moderator", moderator, "reason", reason)

	if err := s.sourceFiles.Remove(submission.Source); err != nil {
		slog.Warn("could not remove declined submission source file", "submission", id.String(), "source", submission.Source, "err", err)
	}
	if err := s.stagedRepository.Delete(nil, submission.ID); err != nil {
		return submission, err
	}
	return submission, nil
}

// ProcessSource hashes the uploaded source archive in the background and
// feeds the result back through the pipeline.
func (s *SubmissionService) ProcessSource(id uuid.UUID) {
	s.FireAndForget(func() {
		if err := s.processSource(id); err != nil {
			slog.Error("could not fingerprint submission source", "submission", id.String(), "err", err)
			sentry.CaptureException(err)
		}
	})
}

func (s *SubmissionService) processSource(id uuid.UUID) error {
	submission, err := s.stagedRepository.Read(id)
	if err != nil {
		return errors.Wrap(err, "could not load submission for hashing")
	}

	if len(submission.Files) > 0 {
		submission.AutoComment("fingerprint already exists, skipping hashing")
		return s.stagedRepository.Save(nil, &submission)
	}
	if submission.Source == "" {
		submission.AutoComment("source file not found")
		return s.stagedRepository.Save(nil, &submission)
	}

	files, err := s.fingerprinter.Fingerprint(context.Background(), submission.Group, submission.Source)
	if err != nil {
		submission.AutoComment("hashing failed: " + err.Error())
		return s.stagedRepository.Save(nil, &submission)
	}

	fileDoc := make(database.JSONB, len(files))
	for path, digest := range files {
		fileDoc[path] = digest
	}
	submission.Files = fileDoc
	submission.Approval = models.ApprovalPendingApproval
	submission.AutoComment("auto hash entry added")

	// trusted submitters may auto promote right here
	return s.Save(&submission)
}

func submissionMetadata(submission *models.StagedSubmission) database.JSONBList {
	if len(submission.Metadata) == 0 {
		return database.JSONBList{}
	}
	return database.JSONBList{{
		"properties": map[string]any(submission.Metadata),
		"filename":   submissionMetadataFilename,
	}}
}
