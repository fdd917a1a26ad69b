// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/hex"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Role string

const (
	RoleAdmin            Role = "admin"
	RoleModerator        Role = "moderator"
	RoleTrustedSubmitter Role = "trusted_submitter"
)

// TrustedRoles may bypass manual approval for their submissions.
var TrustedRoles = []Role{RoleAdmin, RoleModerator, RoleTrustedSubmitter}

// Account identifies a submitter. Authentication itself happens outside this
// service - the api key and secret are consumed by the auth layer in front.
type Account struct {
	Model
	Username string         `gorm:"type:text;uniqueIndex;not null" json:"username"`
	Email    string         `gorm:"type:text" json:"email"`
	Roles    pq.StringArray `gorm:"type:text[]" json:"roles"`
	Active   bool           `gorm:"default:false" json:"active"`

	APIKey string `gorm:"column:api_key;type:text" json:"-"`
	Secret string `gorm:"type:text" json:"-"`
}

func (a Account) TableName() string {
	return "accounts"
}

func (a Account) HasRole(role Role) bool {
	return slices.Contains(a.Roles, string(role))
}

// Trusted reports whether the account carries any role that permits
// bypassing manual approval.
func (a Account) Trusted() bool {
	for _, role := range TrustedRoles {
		if a.HasRole(role) {
			return true
		}
	}
	return false
}

// UpdateAPITokens generates a fresh api key and client secret pair.
func (a *Account) UpdateAPITokens() error {
	keyMAC := hmac.New(sha1.New, []byte(uuid.New().String()))
	keyMAC.Write([]byte(a.Username))
	a.APIKey = strings.ToUpper(hex.EncodeToString(keyMAC.Sum(nil)))

	nonce := make([]byte, 24)
	if _, err := rand.Read(nonce); err != nil {
		return err
	}
	secretMAC := hmac.New(sha1.New, nonce)
	secretMAC.Write([]byte(a.APIKey))
	a.Secret = strings.ToUpper(hex.EncodeToString(secretMAC.Sum(nil)))
	return nil
}
