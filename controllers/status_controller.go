// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"net/http"

	"github.com/l3montree-dev/vulncat/dtos"
	"github.com/l3montree-dev/vulncat/shared"
)

type StatusController struct{}

func NewStatusController() *StatusController {
	return &StatusController{}
}

func (c *StatusController) Status(ctx shared.Context) error {
	return ctx.JSON(http.StatusOK, []dtos.ServiceStatusDTO{
		{
			Version:     3,
			Supported:   true,
			Recommended: true,
			Format:      "json",
			Endpoint:    "/api/v3/",
		},
	})
}
