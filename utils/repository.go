// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package utils

type Tabler interface {
	TableName() string
}

// Repository is the generic persistence contract the gorm repositories
// implement. Tx is the transaction handle type of the underlying store.
type Repository[ID any, T Tabler, Tx any] interface {
	Create(tx Tx, t *T) error
	Read(id ID) (T, error)
	Update(tx Tx, t *T) error
	Delete(tx Tx, id ID) error
	All() ([]T, error)
	List(ids []ID) ([]T, error)
	Transaction(func(tx Tx) error) error
	GetDB(tx Tx) Tx

	Save(tx Tx, t *T) error
}

// FireAndForgetSynchronizer abstracts "go func()". The production
// implementation just spawns a goroutine; tests use a synchronous one to
// wait for the work to finish.
type FireAndForgetSynchronizer interface {
	FireAndForget(fn func())
}

type fireAndForgetSynchronizer struct{}

func (fireAndForgetSynchronizer) FireAndForget(fn func()) {
	go fn()
}

func NewFireAndForgetSynchronizer() FireAndForgetSynchronizer {
	return fireAndForgetSynchronizer{}
}

// SyncFireAndForgetSynchronizer runs the function inline. Test helper.
type SyncFireAndForgetSynchronizer struct{}

func (SyncFireAndForgetSynchronizer) FireAndForget(fn func()) {
	fn()
}
