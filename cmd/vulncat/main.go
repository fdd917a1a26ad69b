// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/l3montree-dev/vulncat/cmd/vulncat/api"
	"github.com/l3montree-dev/vulncat/controllers"
	"github.com/l3montree-dev/vulncat/database"
	"github.com/l3montree-dev/vulncat/database/repositories"
	"github.com/l3montree-dev/vulncat/router"
	"github.com/l3montree-dev/vulncat/services"
	"github.com/l3montree-dev/vulncat/shared"
	"go.uber.org/fx"
)

func migrateDatabase(db shared.DB) error {
	if os.Getenv("DISABLE_AUTOMIGRATE") == "true" {
		slog.Info("automigration disabled")
		return nil
	}
	return database.RunMigrationsWithDB(db)
}

func main() {
	if err := shared.LoadConfig(); err != nil {
		slog.Warn("no .env file found")
	}
	shared.InitLogger()

	if dsn := os.Getenv("ERROR_TRACKING_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:           dsn,
			EnableTracing: false,
		}); err != nil {
			slog.Error("could not initialize error tracking", "err", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	app := fx.New(
		fx.Provide(shared.DatabaseFactory),
		fx.Invoke(migrateDatabase),
		repositories.Module,
		services.Module,
		controllers.Module,
		api.Module,
		router.Module,
	)
	app.Run()
}
