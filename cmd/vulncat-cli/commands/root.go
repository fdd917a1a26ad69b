// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package commands

import (
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "vulncat-cli",
		Short: "Administration toolbox for the vulncat catalog",
	}

	root.AddCommand(NewMigrateCommand())
	root.AddCommand(NewAccountsCommand())
	return root
}
