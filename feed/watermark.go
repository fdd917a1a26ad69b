// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package feed

import (
	"time"

	"github.com/pkg/errors"
)

// TimeFormat is the wire format of sync watermarks.
const TimeFormat = "2006-01-02T15:04:05"

// BeginningOfTime is the epoch sentinel: a feed since this watermark contains
// everything.
var BeginningOfTime = time.Unix(0, 0).UTC()

// ParseSince parses a watermark string. The empty string means the beginning
// of time.
func ParseSince(since string) (time.Time, error) {
	if since == "" {
		return BeginningOfTime, nil
	}

	t, err := time.Parse(TimeFormat, since)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid watermark %q", since)
	}
	return t.UTC(), nil
}
