// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// CommentAutoAuthor tags comments written by the pipeline itself.
const CommentAutoAuthor = "auto"

// Comment is immutable once appended to a submission.
type Comment struct {
	CreatedAt time.Time `json:"createdAt"`
	Author    string    `json:"author"`
	Message   string    `json:"message"`
}

// CommentList is an append-only comment history stored in a single jsonb
// column.
type CommentList []Comment

func (l CommentList) Value() (driver.Value, error) {
	if l == nil {
		l = CommentList{}
	}
	return json.Marshal(l)
}

func (l *CommentList) Scan(value any) error {
	data, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(data, &l)
}

// Append returns the list with a new comment added. Existing entries are
// never modified.
func (l CommentList) Append(author, message string) CommentList {
	return append(l, Comment{
		CreatedAt: time.Now().UTC(),
		Author:    author,
		Message:   message,
	})
}
