package repository

import "context"

// TransactionManager defines the interface for running a sequence of
// repository operations as one atomic unit. The claim and redemption
// critical sections (check, then mutate) must run inside Execute so that
// concurrent commands on the same deal or coupon serialize.
type TransactionManager interface {
	// Execute runs a function within a transaction. If the function returns
	// an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function must go through the
	// provided factory so they share the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	// NewBusinessRepository returns a BusinessRepository bound to the current transaction.
	NewBusinessRepository() BusinessRepository

	// NewDealRepository returns a DealRepository bound to the current transaction.
	NewDealRepository() DealRepository

	// NewCouponRepository returns a CouponRepository bound to the current transaction.
	NewCouponRepository() CouponRepository

	// NewNotificationRepository returns a NotificationRepository bound to the current transaction.
	NewNotificationRepository() NotificationRepository
}
