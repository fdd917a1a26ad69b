// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/l3montree-dev/vulncat/shared"
	"gorm.io/gorm"
)

// TrustService answers trusted-submitter lookups. Role checks happen on
// every submission save, so results are cached for a few minutes.
type TrustService struct {
	accountRepository shared.AccountRepository
	cache             *expirable.LRU[string, bool]
}

func NewTrustService(accountRepository shared.AccountRepository) *TrustService {
	return &TrustService{
		accountRepository: accountRepository,
		cache:             expirable.NewLRU[string, bool](1024, nil, 5*time.Minute),
	}
}

func (s *TrustService) IsTrusted(username string) (bool, error) {
	if trusted, ok := s.cache.Get(username); ok {
		return trusted, nil
	}

	account, err := s.accountRepository.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	trusted := account.Trusted()
	s.cache.Add(username, trusted)
	return trusted, nil
}
