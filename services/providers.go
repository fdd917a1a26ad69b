// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"github.com/l3montree-dev/vulncat/shared"
	"github.com/l3montree-dev/vulncat/utils"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(utils.NewFireAndForgetSynchronizer),
	fx.Provide(NewSourceFileStore),
	fx.Provide(NewFingerprinter),
	fx.Provide(fx.Annotate(NewTrustService, fx.As(new(shared.TrustService)))),
	fx.Provide(fx.Annotate(NewFeedService, fx.As(new(shared.FeedService)))),
	fx.Provide(fx.Annotate(NewSubmissionService, fx.As(new(shared.SubmissionService)))),
)
