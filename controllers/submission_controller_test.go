// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/vulncat/database/models"
	"github.com/l3montree-dev/vulncat/dtos"
	"github.com/l3montree-dev/vulncat/services"
	"github.com/l3montree-dev/vulncat/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type stubSubmissionService struct {
	created    *models.StagedSubmission
	processed  []uuid.UUID
	submission models.StagedSubmission
	err        error
}

func (s *stubSubmissionService) Create(submission *models.StagedSubmission) error {
	submission.ID = uuid.New()
	s.created = submission
	return s.err
}

func (s *stubSubmissionService) Read(id uuid.UUID) (models.StagedSubmission, error) {
	return s.submission, s.err
}

func (s *stubSubmissionService) Save(submission *models.StagedSubmission) error {
	return s.err
}

func (s *stubSubmissionService) Approve(id uuid.UUID, moderator string) (models.StagedSubmission, error) {
	return s.submission, s.err
}

func (s *stubSubmissionService) Decline(id uuid.UUID, moderator, reason string) (models.StagedSubmission, error) {
	return s.submission, s.err
}

func (s *stubSubmissionService) ProcessSource(id uuid.UUID) {
	s.processed = append(s.processed, id)
}

func newSubmissionContext(method, body, username string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if username != "" {
		shared.SetUsername(c, username)
	}
	return c, rec
}

func TestSubmissionControllerCreate(t *testing.T) {
	t.Run("stages the submission and starts hashing", func(t *testing.T) {
		service := &stubSubmissionService{}
		controller := NewSubmissionController(service, nil)

		payload := `{"group": "java", "cves": ["CVE-2025-0001"], "source": "/uploads/struts.jar"}`
		c, rec := newSubmissionContext(http.MethodPost, payload, "alice")

		assert.NoError(t, controller.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		if assert.NotNil(t, service.created) {
			assert.Equal(t, "alice", service.created.Submitter)
			assert.Equal(t, "java", service.created.Group)
			assert.Equal(t, []uuid.UUID{service.created.ID}, service.processed)
		}
	})

	t.Run("rejects a payload without a group", func(t *testing.T) {
		controller := NewSubmissionController(&stubSubmissionService{}, nil)
		c, _ := newSubmissionContext(http.MethodPost, `{"cves": ["CVE-2025-0001"]}`, "alice")

		err := controller.Create(c)
		var httpErr *echo.HTTPError
		if assert.ErrorAs(t, err, &httpErr) {
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		}
	})

	t.Run("rejects malformed cve identifiers", func(t *testing.T) {
		controller := NewSubmissionController(&stubSubmissionService{}, nil)
		c, _ := newSubmissionContext(http.MethodPost, `{"group": "java", "cves": ["2025-0001"]}`, "alice")

		err := controller.Create(c)
		var httpErr *echo.HTTPError
		if assert.ErrorAs(t, err, &httpErr) {
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		}
	})

	t.Run("requires an authenticated submitter", func(t *testing.T) {
		controller := NewSubmissionController(&stubSubmissionService{}, nil)
		c, _ := newSubmissionContext(http.MethodPost, `{"group": "java"}`, "")

		err := controller.Create(c)
		var httpErr *echo.HTTPError
		if assert.ErrorAs(t, err, &httpErr) {
			assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		}
	})
}

func TestSubmissionControllerModeration(t *testing.T) {
	withID := func(c echo.Context, id uuid.UUID) echo.Context {
		c.SetParamNames("submissionID")
		c.SetParamValues(id.String())
		return c
	}

	t.Run("approve returns the updated submission", func(t *testing.T) {
		service := &stubSubmissionService{submission: models.StagedSubmission{Approval: models.ApprovalInDatabase}}
		controller := NewSubmissionController(service, nil)

		c, rec := newSubmissionContext(http.MethodPost, "", "mod")
		assert.NoError(t, controller.Approve(withID(c, uuid.New())))
		assert.Equal(t, http.StatusOK, rec.Code)

		var dto dtos.SubmissionDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
		assert.Equal(t, string(models.ApprovalInDatabase), dto.Approval)
	})

	t.Run("approve maps a promotion conflict to 409", func(t *testing.T) {
		service := &stubSubmissionService{
			submission: models.StagedSubmission{Approval: models.ApprovalInvalid},
			err:        services.ErrPromotionConflict,
		}
		controller := NewSubmissionController(service, nil)

		c, rec := newSubmissionContext(http.MethodPost, "", "mod")
		assert.NoError(t, controller.Approve(withID(c, uuid.New())))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("approve of a missing submission is a 404", func(t *testing.T) {
		service := &stubSubmissionService{err: gorm.ErrRecordNotFound}
		controller := NewSubmissionController(service, nil)

		c, _ := newSubmissionContext(http.MethodPost, "", "mod")
		err := controller.Approve(withID(c, uuid.New()))

		var httpErr *echo.HTTPError
		if assert.ErrorAs(t, err, &httpErr) {
			assert.Equal(t, http.StatusNotFound, httpErr.Code)
		}
	})

	t.Run("decline forwards the reason", func(t *testing.T) {
		service := &stubSubmissionService{submission: models.StagedSubmission{Approval: models.ApprovalDeclined}}
		controller := NewSubmissionController(service, nil)

		c, rec := newSubmissionContext(http.MethodPost, `{"reason": "not a vulnerability"}`, "mod")
		assert.NoError(t, controller.Decline(withID(c, uuid.New())))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects an invalid submission id", func(t *testing.T) {
		controller := NewSubmissionController(&stubSubmissionService{}, nil)

		c, _ := newSubmissionContext(http.MethodPost, "", "mod")
		c.SetParamNames("submissionID")
		c.SetParamValues("not-a-uuid")

		err := controller.Approve(c)
		var httpErr *echo.HTTPError
		if assert.ErrorAs(t, err, &httpErr) {
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		}
	})
}
