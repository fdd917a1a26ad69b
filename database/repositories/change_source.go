// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"database/sql"
	"time"

	"github.com/l3montree-dev/vulncat/database/models"
	"gorm.io/gorm"
)

// changeSource streams one collection's changes for the feed merger: group
// match, modified after the watermark, ordered ascending by creation time.
// Rows are scanned one at a time so a feed never buffers the whole result
// set. The row iterator is opened lazily on the first Next and reflects
// whatever state the scan observes at that point - there is no live update.
type changeSource[T models.TrackedEntity] struct {
	db    *gorm.DB
	group string
	since time.Time

	rows *sql.Rows
}

func newChangeSource[T models.TrackedEntity](db *gorm.DB, group string, since time.Time) *changeSource[T] {
	return &changeSource[T]{db: db, group: group, since: since}
}

func (s *changeSource[T]) Collection() string {
	var t T
	return t.TableName()
}

func (s *changeSource[T]) query() *gorm.DB {
	var t T
	return s.db.Model(&t).Where("group_name = ? AND updated_at > ?", s.group, s.since)
}

func (s *changeSource[T]) Count() (int64, error) {
	var count int64
	err := s.query().Count(&count).Error
	return count, err
}

func (s *changeSource[T]) Next() (models.TrackedEntity, error) {
	if s.rows == nil {
		rows, err := s.query().Order("created_at ASC").Rows()
		if err != nil {
			return nil, err
		}
		s.rows = rows
	}

	if !s.rows.Next() {
		if err := s.rows.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	var t T
	if err := s.db.ScanRows(s.rows, &t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *changeSource[T]) Close() error {
	if s.rows == nil {
		return nil
	}
	return s.rows.Close()
}
