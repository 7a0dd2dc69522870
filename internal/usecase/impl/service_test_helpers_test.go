package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"descya/config"
	"descya/internal/domain/entity"
	domainerrors "descya/internal/domain/errors"
	"descya/internal/domain/repository"
	"descya/internal/infra/persistence/memory"
	"descya/internal/infra/qrcode"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv wires the services against the in-memory backend so tests cover
// the real check-then-mutate sequences instead of scripted expectations.
type testEnv struct {
	store            *memory.Store
	txManager        repository.TransactionManager
	businessRepo     repository.BusinessRepository
	dealRepo         repository.DealRepository
	couponRepo       repository.CouponRepository
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	logger           *slog.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewStore()

	return &testEnv{
		store:            store,
		txManager:        memory.NewTransactionManager(store),
		businessRepo:     memory.NewBusinessRepository(store),
		dealRepo:         memory.NewDealRepository(store),
		couponRepo:       memory.NewCouponRepository(store),
		notificationRepo: memory.NewNotificationRepository(store),
		userRepo:         memory.NewUserRepository(store),
		logger:           slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
}

func (env *testEnv) newApprovalService() *approvalService {
	return NewApprovalService(ApprovalServiceParams{
		TxManager:        env.txManager,
		NotificationRepo: env.notificationRepo,
		Logger:           env.logger,
	}).(*approvalService)
}

func (env *testEnv) newCouponService() *couponService {
	return NewCouponService(CouponServiceParams{
		TxManager:        env.txManager,
		QRService:        qrcode.NewQRCodeService(256, "medium"),
		NotificationRepo: env.notificationRepo,
		Config:           &config.Config{},
		Logger:           env.logger,
	}).(*couponService)
}

func (env *testEnv) newCatalogService() *catalogService {
	return NewCatalogService(CatalogServiceParams{
		BusinessRepo: env.businessRepo,
		DealRepo:     env.dealRepo,
		CouponRepo:   env.couponRepo,
		UserRepo:     env.userRepo,
		Logger:       env.logger,
	}).(*catalogService)
}

func (env *testEnv) newBusinessService() *businessService {
	return NewBusinessService(BusinessServiceParams{
		TxManager:    env.txManager,
		BusinessRepo: env.businessRepo,
		Logger:       env.logger,
	}).(*businessService)
}

// seedBusiness stores an approved, active business ready to publish deals.
func (env *testEnv) seedBusiness(t *testing.T) *entity.Business {
	t.Helper()

	now := time.Now()
	business := &entity.Business{
		ID:             uuid.New(),
		Name:           "La Pizzería",
		Logo:           "https://cdn.example.com/pizzeria.png",
		Category:       "Gastronomía",
		Plan:           entity.PlanBasic,
		Active:         true,
		ApprovalStatus: entity.ApprovalApproved,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, env.businessRepo.CreateBusiness(context.Background(), business))

	return business
}

// seedDeal stores an approved, active deal with the given capacity.
func (env *testEnv) seedDeal(t *testing.T, businessID uuid.UUID, quantity int) *entity.Deal {
	t.Helper()

	now := time.Now()
	deal := &entity.Deal{
		ID:                uuid.New(),
		BusinessID:        businessID,
		Title:             "2x1 en pizzas",
		OriginalPrice:     1000,
		DiscountPrice:     600,
		DiscountPercent:   40,
		Category:          "Gastronomía",
		AvailableQuantity: quantity,
		ExpiresAt:         now.Add(48 * time.Hour),
		CreatedAt:         now,
		UpdatedAt:         now,
		Active:            true,
		ApprovalStatus:    entity.ApprovalApproved,
	}
	require.NoError(t, env.dealRepo.CreateDeal(context.Background(), deal))

	return deal
}

// assertErrorCode unwraps the error chain down to the application error and
// checks its business code.
func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}

// notificationsFor reads the inbox of a recipient, newest first.
func (env *testEnv) notificationsFor(t *testing.T, recipientID uuid.UUID) []*entity.Notification {
	t.Helper()

	notifications, err := env.notificationRepo.ListNotificationsByRecipient(context.Background(), recipientID)
	require.NoError(t, err)

	return notifications
}
