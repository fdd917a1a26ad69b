// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package main

import (
	"log/slog"
	"os"

	"github.com/l3montree-dev/vulncat/cmd/vulncat-cli/commands"
	"github.com/l3montree-dev/vulncat/shared"
)

func main() {
	if err := shared.LoadConfig(); err != nil {
		slog.Warn("no .env file found")
	}
	shared.InitLogger()

	if err := commands.NewRootCommand().Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}
