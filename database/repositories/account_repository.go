// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/vulncat/database/models"
	"gorm.io/gorm"
)

type accountRepository struct {
	*GormRepository[uuid.UUID, models.Account]
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *accountRepository {
	return &accountRepository{
		GormRepository: newGormRepository[uuid.UUID, models.Account](db),
		db:             db,
	}
}

func (r *accountRepository) FindByUsername(username string) (models.Account, error) {
	var account models.Account
	err := r.db.Where("username = ?", username).First(&account).Error
	return account, err
}

// Create makes sure the account leaves with a usable api token pair.
func (r *accountRepository) Create(tx *gorm.DB, account *models.Account) error {
	if account.APIKey == "" {
		if err := account.UpdateAPITokens(); err != nil {
			return err
		}
	}
	return r.GormRepository.Create(tx, account)
}
