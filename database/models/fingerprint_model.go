// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"crypto/sha512"
	"encoding/hex"
	"sort"

	"github.com/l3montree-dev/vulncat/database"
)

// Fingerprint maps the file paths inside an artifact to their sha512 digests.
type Fingerprint struct {
	TrackedModel
	// UUID is derived from Files. Never set it directly - the repository
	// recomputes it on every create and update.
	UUID  string         `gorm:"type:text" json:"uuid"`
	Files database.JSONB `gorm:"type:jsonb" json:"files"`
}

func (f Fingerprint) TableName() string {
	return "fingerprints"
}

// DeriveUUID recomputes the fingerprint uuid: the sha512 sum over all file
// digests, sorted.
func (f *Fingerprint) DeriveUUID() {
	digests := make([]string, 0, len(f.Files))
	for _, v := range f.Files {
		if s, ok := v.(string); ok {
			digests = append(digests, s)
		}
	}
	sort.Strings(digests)

	h := sha512.New()
	for _, digest := range digests {
		h.Write([]byte(digest))
	}
	f.UUID = hex.EncodeToString(h.Sum(nil))
}

// Empty reports whether the fingerprint carries any file digests.
func (f Fingerprint) Empty() bool {
	return len(f.Files) == 0
}

func (f Fingerprint) FeedDocument(includeRefs bool) map[string]any {
	return map[string]any{
		"uuid":  f.UUID,
		"files": map[string]any(f.Files),
	}
}
