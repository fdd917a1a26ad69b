// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package shared

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// The authentication layer in front of this service resolves the session or
// api key pair and stores the username on the request context.

func SetUsername(ctx Context, username string) {
	ctx.Set("username", username)
}

func GetUsername(ctx Context) (string, error) {
	username, ok := ctx.Get("username").(string)
	if !ok || username == "" {
		return "", errors.New("no username in context")
	}
	return username, nil
}

// UsernameMiddleware copies the username header set by the auth proxy onto
// the context. It does no verification - that happened upstream.
func UsernameMiddleware() MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if username := c.Request().Header.Get("X-Auth-Username"); username != "" {
				SetUsername(c, username)
			}
			return next(c)
		}
	}
}
