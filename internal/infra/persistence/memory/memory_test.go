package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"descya/internal/domain/entity"
	"descya/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeal(available int) *entity.Deal {
	return &entity.Deal{
		ID:                uuid.New(),
		BusinessID:        uuid.New(),
		Title:             "2x1 en chivitos",
		OriginalPrice:     500,
		DiscountPercent:   50,
		DiscountPrice:     250,
		AvailableQuantity: available,
		ExpiresAt:         time.Now().Add(24 * time.Hour),
		Active:            true,
		ApprovalStatus:    entity.ApprovalApproved,
	}
}

func newTestCoupon(dealID, userID uuid.UUID, code string) *entity.Coupon {
	return &entity.Coupon{
		ID:             uuid.New(),
		DealID:         dealID,
		UserID:         userID,
		RedemptionCode: code,
		Status:         entity.CouponActive,
		ClaimedAt:      time.Now(),
		Deal:           entity.Deal{ID: dealID},
	}
}

func TestDealRepository_ClaimUnit_StopsAtCapacity(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewDealRepository(store)

	deal := newTestDeal(2)
	require.NoError(t, repo.CreateDeal(ctx, deal))

	first, err := repo.ClaimUnit(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.ClaimedQuantity)

	second, err := repo.ClaimUnit(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.ClaimedQuantity)

	_, err = repo.ClaimUnit(ctx, deal.ID)
	assert.ErrorIs(t, err, repository.ErrNoStock)

	stored, err := repo.FindDealByID(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.ClaimedQuantity)
}

func TestDealRepository_ClaimUnit_ConcurrentLastUnit(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewDealRepository(store)

	deal := newTestDeal(1)
	require.NoError(t, repo.CreateDeal(ctx, deal))

	const callers = 16
	var wg sync.WaitGroup
	results := make(chan error, callers)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.ClaimUnit(ctx, deal.ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	wins, soldOut := 0, 0
	for err := range results {
		switch {
		case err == nil:
			wins++
		default:
			assert.ErrorIs(t, err, repository.ErrNoStock)
			soldOut++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, callers-1, soldOut)

	stored, err := repo.FindDealByID(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.ClaimedQuantity)
}

func TestDealRepository_ClaimUnit_NotFound(t *testing.T) {
	repo := NewDealRepository(NewStore())

	_, err := repo.ClaimUnit(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrDealNotFound)
}

func TestCouponRepository_CreateCoupon_RejectsSecondActive(t *testing.T) {
	ctx := context.Background()
	repo := NewCouponRepository(NewStore())

	dealID, userID := uuid.New(), uuid.New()
	require.NoError(t, repo.CreateCoupon(ctx, newTestCoupon(dealID, userID, "DESCYA-AAAA-BBBB-1")))

	err := repo.CreateCoupon(ctx, newTestCoupon(dealID, userID, "DESCYA-AAAA-BBBB-2"))
	assert.ErrorIs(t, err, repository.ErrDuplicateActiveCoupon)

	// A different user claiming the same deal is fine.
	require.NoError(t, repo.CreateCoupon(ctx, newTestCoupon(dealID, uuid.New(), "DESCYA-AAAA-CCCC-3")))
}

func TestCouponRepository_CreateCoupon_AllowsNewActiveAfterUse(t *testing.T) {
	ctx := context.Background()
	repo := NewCouponRepository(NewStore())

	dealID, userID := uuid.New(), uuid.New()
	first := newTestCoupon(dealID, userID, "DESCYA-AAAA-BBBB-1")
	require.NoError(t, repo.CreateCoupon(ctx, first))

	usedAt := time.Now()
	require.NoError(t, repo.UpdateCouponStatus(ctx, first.ID, entity.CouponUsed, &usedAt))

	assert.NoError(t, repo.CreateCoupon(ctx, newTestCoupon(dealID, userID, "DESCYA-AAAA-BBBB-2")))
}

func TestCouponRepository_CreateCoupon_RejectsDuplicateCode(t *testing.T) {
	ctx := context.Background()
	repo := NewCouponRepository(NewStore())

	require.NoError(t, repo.CreateCoupon(ctx, newTestCoupon(uuid.New(), uuid.New(), "DESCYA-AAAA-BBBB-1")))

	err := repo.CreateCoupon(ctx, newTestCoupon(uuid.New(), uuid.New(), "DESCYA-AAAA-BBBB-1"))
	assert.ErrorIs(t, err, repository.ErrDuplicateRedemptionCode)
}

func TestCouponRepository_FindCouponByCode(t *testing.T) {
	ctx := context.Background()
	repo := NewCouponRepository(NewStore())

	coupon := newTestCoupon(uuid.New(), uuid.New(), "DESCYA-AAAA-BBBB-1")
	require.NoError(t, repo.CreateCoupon(ctx, coupon))

	found, err := repo.FindCouponByCode(ctx, "DESCYA-AAAA-BBBB-1")
	require.NoError(t, err)
	assert.Equal(t, coupon.ID, found.ID)

	_, err = repo.FindCouponByCode(ctx, "DESCYA-XXXX-YYYY-9")
	assert.ErrorIs(t, err, repository.ErrCouponNotFound)
}

func TestCouponRepository_ListCouponsByUser_FiltersStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewCouponRepository(NewStore())

	userID := uuid.New()
	active := newTestCoupon(uuid.New(), userID, "DESCYA-AAAA-BBBB-1")
	used := newTestCoupon(uuid.New(), userID, "DESCYA-AAAA-BBBB-2")
	require.NoError(t, repo.CreateCoupon(ctx, active))
	require.NoError(t, repo.CreateCoupon(ctx, used))

	usedAt := time.Now()
	require.NoError(t, repo.UpdateCouponStatus(ctx, used.ID, entity.CouponUsed, &usedAt))

	all, err := repo.ListCouponsByUser(ctx, userID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	status := entity.CouponActive
	onlyActive, err := repo.ListCouponsByUser(ctx, userID, &status)
	require.NoError(t, err)
	require.Len(t, onlyActive, 1)
	assert.Equal(t, active.ID, onlyActive[0].ID)
}

func TestCouponRepository_UpdateCouponStatus_KeepsUsedAtWhenNil(t *testing.T) {
	ctx := context.Background()
	repo := NewCouponRepository(NewStore())

	coupon := newTestCoupon(uuid.New(), uuid.New(), "DESCYA-AAAA-BBBB-1")
	require.NoError(t, repo.CreateCoupon(ctx, coupon))

	usedAt := time.Now()
	require.NoError(t, repo.UpdateCouponStatus(ctx, coupon.ID, entity.CouponUsed, &usedAt))
	require.NoError(t, repo.UpdateCouponStatus(ctx, coupon.ID, entity.CouponUsed, nil))

	stored, err := repo.FindCouponByID(ctx, coupon.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.UsedAt)
	assert.WithinDuration(t, usedAt, *stored.UsedAt, time.Second)
}

func TestNotificationRepository_MarkAllRead(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(NewStore())

	recipientID := uuid.New()
	for range 3 {
		require.NoError(t, repo.CreateNotification(ctx, &entity.Notification{
			ID:          uuid.New(),
			RecipientID: recipientID,
			Type:        entity.NotificationSystem,
		}))
	}
	require.NoError(t, repo.CreateNotification(ctx, &entity.Notification{
		ID:          uuid.New(),
		RecipientID: uuid.New(),
		Type:        entity.NotificationSystem,
	}))

	require.NoError(t, repo.MarkAllRead(ctx, recipientID))

	mine, err := repo.ListNotificationsByRecipient(ctx, recipientID)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	for _, n := range mine {
		assert.True(t, n.Read)
	}
}

func TestNotificationRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(NewStore())

	recipientID := uuid.New()
	first := &entity.Notification{ID: uuid.New(), RecipientID: recipientID}
	second := &entity.Notification{ID: uuid.New(), RecipientID: recipientID}
	require.NoError(t, repo.CreateNotification(ctx, first))
	require.NoError(t, repo.CreateNotification(ctx, second))

	listed, err := repo.ListNotificationsByRecipient(ctx, recipientID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)
}

func TestUserRepository_CreateUser_RejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	require.NoError(t, repo.CreateUser(ctx, &entity.User{
		ID:    uuid.New(),
		Email: "ana@example.com",
		Role:  entity.RoleUser,
	}))

	err := repo.CreateUser(ctx, &entity.User{
		ID:    uuid.New(),
		Email: "ana@example.com",
		Role:  entity.RoleUser,
	})
	assert.ErrorIs(t, err, repository.ErrEmailExists)
}

func TestTransactionManager_SerializesCriticalSections(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	tm := NewTransactionManager(store)

	deal := newTestDeal(1)
	require.NoError(t, NewDealRepository(store).CreateDeal(ctx, deal))

	const callers = 8
	var wg sync.WaitGroup
	wins := make(chan struct{}, callers)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
				found, err := f.NewDealRepository().FindDealByID(ctx, deal.ID)
				if err != nil {
					return err
				}
				if found.Remaining() <= 0 {
					return repository.ErrNoStock
				}
				if _, err := f.NewDealRepository().ClaimUnit(ctx, deal.ID); err != nil {
					return err
				}
				wins <- struct{}{}

				return nil
			})
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	assert.Equal(t, 1, count)

	stored, err := NewDealRepository(store).FindDealByID(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.ClaimedQuantity)
}
