// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"os"

	"github.com/l3montree-dev/vulncat/shared"
)

type osSourceFileStore struct{}

// NewSourceFileStore removes staged uploads from local disk.
func NewSourceFileStore() shared.SourceFileStore {
	return osSourceFileStore{}
}

func (osSourceFileStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(path)
}
