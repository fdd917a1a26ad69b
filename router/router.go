// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package router

import (
	"github.com/l3montree-dev/vulncat/controllers"
	"github.com/l3montree-dev/vulncat/shared"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Register wires all handlers under /api/v3. Authentication happens in the
// proxy in front of this service, the username middleware only lifts its
// header onto the context.
func Register(e *echo.Echo, feedController *controllers.FeedController, statusController *controllers.StatusController, submissionController *controllers.SubmissionController) {
	apiV3 := e.Group("/api/v3", shared.UsernameMiddleware())

	registerServiceRoutes(apiV3, feedController, statusController)
	registerSubmissionRoutes(apiV3, submissionController)
}

func registerServiceRoutes(server shared.Server, feedController *controllers.FeedController, statusController *controllers.StatusController) {
	server.GET("/status/", statusController.Status)
	server.GET("/update/:group/:since/", feedController.Updates)
	// empty watermark means everything
	server.GET("/update/:group/", feedController.Updates)
}

func registerSubmissionRoutes(server shared.Server, submissionController *controllers.SubmissionController) {
	submissions := server.Group("/submission")
	submissions.POST("/", submissionController.Create)
	submissions.GET("/", submissionController.List)
	submissions.GET("/:submissionID/", submissionController.Read)
	submissions.POST("/:submissionID/approve/", submissionController.Approve)
	submissions.POST("/:submissionID/decline/", submissionController.Decline)
}

var Module = fx.Options(
	fx.Invoke(Register),
)
