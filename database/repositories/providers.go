// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"github.com/l3montree-dev/vulncat/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewFingerprintRepository, fx.As(new(shared.FingerprintRepository)))),
	fx.Provide(fx.Annotate(NewArtifactRepository, fx.As(new(shared.ArtifactRepository)))),
	fx.Provide(fx.Annotate(NewRecordRepository, fx.As(new(shared.RecordRepository)))),
	fx.Provide(fx.Annotate(NewRemovalRepository, fx.As(new(shared.RemovalRepository)))),
	fx.Provide(fx.Annotate(NewStagedSubmissionRepository, fx.As(new(shared.StagedSubmissionRepository)))),
	fx.Provide(fx.Annotate(NewApprovedSubmissionRepository, fx.As(new(shared.ApprovedSubmissionRepository)))),
	fx.Provide(fx.Annotate(NewAccountRepository, fx.As(new(shared.AccountRepository)))),
)
