// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"time"

	"github.com/l3montree-dev/vulncat/feed"
	"github.com/l3montree-dev/vulncat/shared"
)

type FeedService struct {
	removalRepository     shared.RemovalRepository
	fingerprintRepository shared.FingerprintRepository
	artifactRepository    shared.ArtifactRepository
	recordRepository      shared.RecordRepository
}

func NewFeedService(removalRepository shared.RemovalRepository, fingerprintRepository shared.FingerprintRepository, artifactRepository shared.ArtifactRepository, recordRepository shared.RecordRepository) *FeedService {
	return &FeedService{
		removalRepository:     removalRepository,
		fingerprintRepository: fingerprintRepository,
		artifactRepository:    artifactRepository,
		recordRepository:      recordRepository,
	}
}

// NewMerger opens the change feed over all tracked collections. Removals
// come first in the source list so merge-key ties resolve in favor of
// tombstones.
func (s *FeedService) NewMerger(group string, since time.Time) (*feed.Merger, error) {
	return feed.NewMerger(since,
		s.removalRepository.ChangeSource(group, since),
		s.fingerprintRepository.ChangeSource(group, since),
		s.artifactRepository.ChangeSource(group, since),
		s.recordRepository.ChangeSource(group, since),
	)
}
