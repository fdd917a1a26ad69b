// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"

	"github.com/l3montree-dev/vulncat/shared"
	"github.com/pkg/errors"
)

// execFingerprinter shells out to the configured hashing tool. The tool gets
// the group and the archive path as arguments and prints a JSON object of
// file path to sha512 digest pairs on stdout.
type execFingerprinter struct {
	command string
}

func NewFingerprinter() shared.Fingerprinter {
	command := os.Getenv("HASHING_COMMAND")
	if command == "" {
		command = "vulncat-hash"
	}
	return &execFingerprinter{command: command}
}

func (f *execFingerprinter) Fingerprint(ctx context.Context, group, source string) (map[string]string, error) {
	out, err := exec.CommandContext(ctx, f.command, group, source).Output()
	if err != nil {
		return nil, errors.Wrapf(err, "hashing tool failed for %s", source)
	}

	var files map[string]string
	if err := json.Unmarshal(out, &files); err != nil {
		return nil, errors.Wrap(err, "could not parse hashing tool output")
	}
	if len(files) == 0 {
		return nil, errors.Errorf("hashing tool produced no digests for %s", source)
	}
	return files, nil
}
