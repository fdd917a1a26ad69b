// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"net/http"

	"github.com/l3montree-dev/vulncat/feed"
	"github.com/l3montree-dev/vulncat/shared"
	"github.com/labstack/echo/v4"
)

type FeedController struct {
	feedService shared.FeedService
}

func NewFeedController(feedService shared.FeedService) *FeedController {
	return &FeedController{feedService: feedService}
}

// Updates streams every change in the group since the given watermark as one
// JSON document. The response is written incrementally, items leave the
// server as the merge produces them.
func (c *FeedController) Updates(ctx shared.Context) error {
	group := ctx.Param("group")
	since, err := feed.ParseSince(ctx.Param("since"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid since watermark, expected YYYY-MM-DDTHH:MM:SS").WithInternal(err)
	}

	merger, err := c.feedService.NewMerger(group, since)
	if err != nil {
		return err
	}
	defer merger.Close()

	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	resp.WriteHeader(http.StatusOK)

	// the published feed is denormalized: reference ids are internal and
	// never leave the service
	return feed.WriteStream(resp, merger, false)
}
