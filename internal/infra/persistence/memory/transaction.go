package memory

import (
	"context"
	"sync"

	"descya/internal/domain/repository"
)

// transactionManager serializes critical sections against a single store.
// There is no rollback: commands are written so that every guard runs
// before the first mutation, and serialization guarantees the guards still
// hold when the mutation executes.
type transactionManager struct {
	txMu  sync.Mutex
	store *Store
}

// NewTransactionManager creates a TransactionManager over the store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn while holding the transaction mutex, so concurrent
// commands on the same store run one at a time.
func (tm *transactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	tm.txMu.Lock()
	defer tm.txMu.Unlock()

	return fn(&repositoryFactory{store: tm.store})
}

type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) NewBusinessRepository() repository.BusinessRepository {
	return NewBusinessRepository(f.store)
}

func (f *repositoryFactory) NewDealRepository() repository.DealRepository {
	return NewDealRepository(f.store)
}

func (f *repositoryFactory) NewCouponRepository() repository.CouponRepository {
	return NewCouponRepository(f.store)
}

func (f *repositoryFactory) NewNotificationRepository() repository.NotificationRepository {
	return NewNotificationRepository(f.store)
}
