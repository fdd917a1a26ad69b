// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(NewFeedController),
	fx.Provide(NewStatusController),
	fx.Provide(NewSubmissionController),
)
