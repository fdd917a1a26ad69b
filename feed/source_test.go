// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package feed

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/vulncat/database"
	"github.com/l3montree-dev/vulncat/database/models"
	"github.com/pkg/errors"
)

type sliceSource struct {
	collection string
	entities   []models.TrackedEntity
	pos        int
	closed     bool
	countErr   error
}

func (s *sliceSource) Collection() string {
	return s.collection
}

func (s *sliceSource) Count() (int64, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return int64(len(s.entities)), nil
}

func (s *sliceSource) Next() (models.TrackedEntity, error) {
	if s.pos >= len(s.entities) {
		return nil, nil
	}
	entity := s.entities[s.pos]
	s.pos++
	return entity, nil
}

func (s *sliceSource) Close() error {
	s.closed = true
	return nil
}

var errCount = errors.New("count failed")

func fingerprintAt(created, modified time.Time) models.Fingerprint {
	return models.Fingerprint{
		TrackedModel: models.TrackedModel{
			ID:        uuid.New(),
			Group:     "java",
			CreatedAt: created,
			UpdatedAt: modified,
		},
		UUID:  uuid.NewString(),
		Files: database.JSONB{"pom.xml": "abc"},
	}
}

func recordAt(created, modified time.Time) models.Record {
	return models.Record{
		TrackedModel: models.TrackedModel{
			ID:        uuid.New(),
			Group:     "java",
			CreatedAt: created,
			UpdatedAt: modified,
		},
		CVEs: []string{"CVE-2025-0001"},
	}
}

func removalAt(created, modified time.Time) models.Removal {
	return models.Removal{
		TrackedModel: models.TrackedModel{
			ID:        uuid.New(),
			Group:     "java",
			CreatedAt: created,
			UpdatedAt: modified,
		},
		OID:        uuid.New(),
		Collection: "records",
	}
}
