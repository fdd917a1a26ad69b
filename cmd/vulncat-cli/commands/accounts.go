// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strings"

	"github.com/l3montree-dev/vulncat/database/models"
	"github.com/l3montree-dev/vulncat/database/repositories"
	"github.com/l3montree-dev/vulncat/shared"
	"github.com/spf13/cobra"
)

func NewAccountsCommand() *cobra.Command {
	accounts := &cobra.Command{
		Use:   "accounts",
		Short: "Manage submitter accounts",
	}

	accounts.AddCommand(newAccountsCreateCommand())
	accounts.AddCommand(newAccountsRotateCommand())
	accounts.AddCommand(newAccountsListCommand())
	return accounts
}

func newAccountsCreateCommand() *cobra.Command {
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an account and print its api token pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			email, _ := cmd.Flags().GetString("email")
			roles, _ := cmd.Flags().GetStringSlice("roles")

			for _, role := range roles {
				if !isKnownRole(role) {
					return fmt.Errorf("unknown role %q, valid roles: admin, moderator, trusted_submitter", role)
				}
			}

			db, err := shared.DatabaseFactory()
			if err != nil {
				return err
			}

			account := models.Account{
				Username: username,
				Email:    email,
				Roles:    roles,
				Active:   true,
			}
			if err := repositories.NewAccountRepository(db).Create(nil, &account); err != nil {
				return err
			}

			cmd.Printf("created account %s\napi key: %s\nsecret:  %s\n", account.Username, account.APIKey, account.Secret)
			return nil
		},
	}

	create.Flags().String("username", "", "unique account name")
	create.Flags().String("email", "", "contact address")
	create.Flags().StringSlice("roles", nil, "roles to grant (admin, moderator, trusted_submitter)")
	if err := create.MarkFlagRequired("username"); err != nil {
		panic(err)
	}
	return create
}

func newAccountsRotateCommand() *cobra.Command {
	rotate := &cobra.Command{
		Use:   "rotate",
		Short: "Generate a fresh api token pair for an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")

			db, err := shared.DatabaseFactory()
			if err != nil {
				return err
			}
			repository := repositories.NewAccountRepository(db)

			account, err := repository.FindByUsername(username)
			if err != nil {
				return err
			}
			if err := account.UpdateAPITokens(); err != nil {
				return err
			}
			if err := repository.Save(nil, &account); err != nil {
				return err
			}

			cmd.Printf("rotated tokens for %s\napi key: %s\nsecret:  %s\n", account.Username, account.APIKey, account.Secret)
			return nil
		},
	}

	rotate.Flags().String("username", "", "account to rotate")
	if err := rotate.MarkFlagRequired("username"); err != nil {
		panic(err)
	}
	return rotate
}

func newAccountsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := shared.DatabaseFactory()
			if err != nil {
				return err
			}

			accounts, err := repositories.NewAccountRepository(db).All()
			if err != nil {
				return err
			}

			for _, account := range accounts {
				cmd.Printf("%s\tactive=%t\troles=%s\n", account.Username, account.Active, strings.Join(account.Roles, ","))
			}
			return nil
		},
	}
}

func isKnownRole(role string) bool {
	for _, known := range models.TrustedRoles {
		if role == string(known) {
			return true
		}
	}
	return false
}
