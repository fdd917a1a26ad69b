// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/l3montree-dev/vulncat/database/models"
	"github.com/l3montree-dev/vulncat/dtos"
	"github.com/l3montree-dev/vulncat/services"
	"github.com/l3montree-dev/vulncat/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SubmissionController struct {
	submissionService shared.SubmissionService
	stagedRepository  shared.StagedSubmissionRepository
}

func NewSubmissionController(submissionService shared.SubmissionService, stagedRepository shared.StagedSubmissionRepository) *SubmissionController {
	return &SubmissionController{
		submissionService: submissionService,
		stagedRepository:  stagedRepository,
	}
}

// Create stages a new submission and kicks off source hashing in the
// background. The submitter is taken from the authenticated context, never
// from the payload.
func (c *SubmissionController) Create(ctx shared.Context) error {
	var req dtos.SubmissionCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	username, err := shared.GetUsername(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	submission := req.ToModel(username)
	if err := c.submissionService.Create(&submission); err != nil {
		return errors.Wrap(err, "could not stage submission")
	}

	c.submissionService.ProcessSource(submission.ID)

	return ctx.JSON(http.StatusCreated, dtos.SubmissionToDTO(submission))
}

func (c *SubmissionController) Read(ctx shared.Context) error {
	id, err := uuid.Parse(ctx.Param("submissionID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid submission id").WithInternal(err)
	}

	submission, err := c.submissionService.Read(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "submission not found")
		}
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.SubmissionToDTO(submission))
}

// List returns staged submissions, optionally filtered by approval state via
// the "approval" query parameter.
func (c *SubmissionController) List(ctx shared.Context) error {
	var (
		submissions []models.StagedSubmission
		err         error
	)

	if approval := ctx.QueryParam("approval"); approval != "" {
		submissions, err = c.stagedRepository.GetByApproval(models.ApprovalStatus(approval))
	} else {
		submissions, err = c.stagedRepository.All()
	}
	if err != nil {
		return err
	}

	result := make([]dtos.SubmissionDTO, 0, len(submissions))
	for _, submission := range submissions {
		result = append(result, dtos.SubmissionToDTO(submission))
	}
	return ctx.JSON(http.StatusOK, result)
}

func (c *SubmissionController) Approve(ctx shared.Context) error {
	id, err := uuid.Parse(ctx.Param("submissionID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid submission id").WithInternal(err)
	}
	moderator, err := shared.GetUsername(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	submission, err := c.submissionService.Approve(id, moderator)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "submission not found")
		}
		if errors.Is(err, services.ErrPromotionConflict) {
			return ctx.JSON(http.StatusConflict, dtos.SubmissionToDTO(submission))
		}
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.SubmissionToDTO(submission))
}

func (c *SubmissionController) Decline(ctx shared.Context) error {
	id, err := uuid.Parse(ctx.Param("submissionID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid submission id").WithInternal(err)
	}
	moderator, err := shared.GetUsername(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req dtos.SubmissionDeclineRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload").WithInternal(err)
	}

	submission, err := c.submissionService.Decline(id, moderator, req.Reason)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "submission not found")
		}
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.SubmissionToDTO(submission))
}
