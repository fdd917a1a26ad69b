// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/vulncat/database/models"
	"github.com/l3montree-dev/vulncat/feed"
	"github.com/l3montree-dev/vulncat/shared"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type fakeStagedRepository struct {
	items map[uuid.UUID]models.StagedSubmission
}

func newFakeStagedRepository() *fakeStagedRepository {
	return &fakeStagedRepository{items: map[uuid.UUID]models.StagedSubmission{}}
}

func (r *fakeStagedRepository) Create(tx shared.DB, s *models.StagedSubmission) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.items[s.ID] = *s
	return nil
}

func (r *fakeStagedRepository) Read(id uuid.UUID) (models.StagedSubmission, error) {
	s, ok := r.items[id]
	if !ok {
		return s, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *fakeStagedRepository) Update(tx shared.DB, s *models.StagedSubmission) error {
	return r.Save(tx, s)
}

func (r *fakeStagedRepository) Save(tx shared.DB, s *models.StagedSubmission) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.items[s.ID] = *s
	return nil
}

func (r *fakeStagedRepository) Delete(tx shared.DB, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeStagedRepository) All() ([]models.StagedSubmission, error) {
	out := make([]models.StagedSubmission, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeStagedRepository) List(ids []uuid.UUID) ([]models.StagedSubmission, error) {
	var out []models.StagedSubmission
	for _, id := range ids {
		if s, ok := r.items[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeStagedRepository) Transaction(fn func(tx shared.DB) error) error {
	return fn(nil)
}

func (r *fakeStagedRepository) GetDB(tx shared.DB) shared.DB {
	return tx
}

func (r *fakeStagedRepository) GetBySubmitter(submitter string) ([]models.StagedSubmission, error) {
	var out []models.StagedSubmission
	for _, s := range r.items {
		if s.Submitter == submitter {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeStagedRepository) TransitionApproval(tx shared.DB, id uuid.UUID, from []models.ApprovalStatus, to models.ApprovalStatus) (bool, error) {
	s, ok := r.items[id]
	if !ok {
		return false, nil
	}
	for _, state := range from {
		if s.Approval == state {
			s.Approval = to
			r.items[id] = s
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeStagedRepository) GetByApproval(approval models.ApprovalStatus) ([]models.StagedSubmission, error) {
	var out []models.StagedSubmission
	for _, s := range r.items {
		if s.Approval == approval {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeApprovedRepository struct {
	items map[uuid.UUID]models.ApprovedSubmission
}

func newFakeApprovedRepository() *fakeApprovedRepository {
	return &fakeApprovedRepository{items: map[uuid.UUID]models.ApprovedSubmission{}}
}

func (r *fakeApprovedRepository) Create(tx shared.DB, s *models.ApprovedSubmission) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.items[s.ID] = *s
	return nil
}

func (r *fakeApprovedRepository) Read(id uuid.UUID) (models.ApprovedSubmission, error) {
	s, ok := r.items[id]
	if !ok {
		return s, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *fakeApprovedRepository) All() ([]models.ApprovedSubmission, error) {
	out := make([]models.ApprovedSubmission, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeApprovedRepository) GetByRecordID(recordID uuid.UUID) (models.ApprovedSubmission, error) {
	for _, s := range r.items {
		if s.RecordID == recordID {
			return s, nil
		}
	}
	return models.ApprovedSubmission{}, gorm.ErrRecordNotFound
}

type fakeFingerprintRepository struct {
	items     map[uuid.UUID]models.Fingerprint
	createErr error
}

func newFakeFingerprintRepository() *fakeFingerprintRepository {
	return &fakeFingerprintRepository{items: map[uuid.UUID]models.Fingerprint{}}
}

func (r *fakeFingerprintRepository) Create(tx shared.DB, f *models.Fingerprint) error {
	if r.createErr != nil {
		return r.createErr
	}
	f.DeriveUUID()
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.items[f.ID] = *f
	return nil
}

func (r *fakeFingerprintRepository) Read(id uuid.UUID) (models.Fingerprint, error) {
	f, ok := r.items[id]
	if !ok {
		return f, gorm.ErrRecordNotFound
	}
	return f, nil
}

func (r *fakeFingerprintRepository) Update(tx shared.DB, f *models.Fingerprint) error {
	return r.Create(tx, f)
}

func (r *fakeFingerprintRepository) Save(tx shared.DB, f *models.Fingerprint) error {
	return r.Create(tx, f)
}

func (r *fakeFingerprintRepository) Transaction(fn func(tx shared.DB) error) error {
	return fn(nil)
}

func (r *fakeFingerprintRepository) DeleteWithTombstone(tx shared.DB, f models.Fingerprint) error {
	delete(r.items, f.ID)
	return nil
}

func (r *fakeFingerprintRepository) ChangeSource(group string, since time.Time) feed.Source {
	return nil
}

func (r *fakeFingerprintRepository) FindByUUID(u string) (models.Fingerprint, error) {
	for _, f := range r.items {
		if f.UUID == u {
			return f, nil
		}
	}
	return models.Fingerprint{}, gorm.ErrRecordNotFound
}

type fakeArtifactRepository struct {
	items     map[uuid.UUID]models.Artifact
	createErr error
}

func newFakeArtifactRepository() *fakeArtifactRepository {
	return &fakeArtifactRepository{items: map[uuid.UUID]models.Artifact{}}
}

func (r *fakeArtifactRepository) Create(tx shared.DB, a *models.Artifact) error {
	if r.createErr != nil {
		return r.createErr
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.items[a.ID] = *a
	return nil
}

func (r *fakeArtifactRepository) Read(id uuid.UUID) (models.Artifact, error) {
	a, ok := r.items[id]
	if !ok {
		return a, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *fakeArtifactRepository) Update(tx shared.DB, a *models.Artifact) error {
	return r.Create(tx, a)
}

func (r *fakeArtifactRepository) Save(tx shared.DB, a *models.Artifact) error {
	return r.Create(tx, a)
}

func (r *fakeArtifactRepository) Transaction(fn func(tx shared.DB) error) error {
	return fn(nil)
}

func (r *fakeArtifactRepository) DeleteWithTombstone(tx shared.DB, a models.Artifact) error {
	delete(r.items, a.ID)
	return nil
}

func (r *fakeArtifactRepository) ChangeSource(group string, since time.Time) feed.Source {
	return nil
}

func (r *fakeArtifactRepository) GetByFingerprintID(fingerprintID uuid.UUID) ([]models.Artifact, error) {
	var out []models.Artifact
	for _, a := range r.items {
		if a.FingerprintID == fingerprintID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeArtifactRepository) GetByChecksum(algorithm, checksum string) ([]models.Artifact, error) {
	var out []models.Artifact
	for _, a := range r.items {
		if v, ok := a.Checksums[algorithm].(string); ok && v == checksum {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeRecordRepository struct {
	items     map[uuid.UUID]models.Record
	createErr error
}

func newFakeRecordRepository() *fakeRecordRepository {
	return &fakeRecordRepository{items: map[uuid.UUID]models.Record{}}
}

func (r *fakeRecordRepository) Create(tx shared.DB, rec *models.Record) error {
	if r.createErr != nil {
		return r.createErr
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	r.items[rec.ID] = *rec
	return nil
}

func (r *fakeRecordRepository) Read(id uuid.UUID) (models.Record, error) {
	rec, ok := r.items[id]
	if !ok {
		return rec, gorm.ErrRecordNotFound
	}
	return rec, nil
}

func (r *fakeRecordRepository) Update(tx shared.DB, rec *models.Record) error {
	return r.Create(tx, rec)
}

func (r *fakeRecordRepository) Save(tx shared.DB, rec *models.Record) error {
	return r.Create(tx, rec)
}

func (r *fakeRecordRepository) Transaction(fn func(tx shared.DB) error) error {
	return fn(nil)
}

func (r *fakeRecordRepository) DeleteWithTombstone(tx shared.DB, rec models.Record) error {
	delete(r.items, rec.ID)
	return nil
}

func (r *fakeRecordRepository) ChangeSource(group string, since time.Time) feed.Source {
	return nil
}

func (r *fakeRecordRepository) GetByGroup(group string) ([]models.Record, error) {
	var out []models.Record
	for _, rec := range r.items {
		if rec.Group == group {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeRecordRepository) GetByCVE(cve string) ([]models.Record, error) {
	var out []models.Record
	for _, rec := range r.items {
		for _, c := range rec.CVEs {
			if c == cve {
				out = append(out, rec)
			}
		}
	}
	return out, nil
}

type fakeTrustService struct {
	trusted map[string]bool
	err     error
}

func (s *fakeTrustService) IsTrusted(username string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.trusted[username], nil
}

type fakeFileStore struct {
	removed []string
	err     error
}

func (s *fakeFileStore) Remove(path string) error {
	if s.err != nil {
		return s.err
	}
	if path != "" {
		s.removed = append(s.removed, path)
	}
	return nil
}

type fakeFingerprinter struct {
	files map[string]string
	err   error
}

func (f *fakeFingerprinter) Fingerprint(ctx context.Context, group, source string) (map[string]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.files, nil
}

var errStore = errors.New("store unavailable")
