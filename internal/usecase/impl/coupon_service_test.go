package impl

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"descya/internal/domain/entity"
	domainerrors "descya/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouponService_Claim_IssuesCoupon(t *testing.T) {
	env := newTestEnv(t)
	service := env.newCouponService()
	business := env.seedBusiness(t)
	deal := env.seedDeal(t, business.ID, 10)
	userID := uuid.New()

	coupon, err := service.Claim(context.Background(), deal.ID, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.CouponActive, coupon.Status)
	assert.Equal(t, deal.ID, coupon.DealID)
	assert.Equal(t, userID, coupon.UserID)
	assert.Nil(t, coupon.UsedAt)

	segments := strings.Split(coupon.RedemptionCode, "-")
	require.Len(t, segments, 4)
	assert.Equal(t, "DESCYA", segments[0])
	assert.Equal(t, strings.ToUpper(coupon.RedemptionCode), coupon.RedemptionCode)

	// The snapshot carries the post-claim counter.
	assert.Equal(t, 1, coupon.Deal.ClaimedQuantity)
	assert.Equal(t, deal.Title, coupon.Deal.Title)

	stored, err := env.dealRepo.FindDealByID(context.Background(), deal.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.ClaimedQuantity)

	inbox := env.notificationsFor(t, userID)
	require.Len(t, inbox, 1)
	assert.Equal(t, entity.NotificationClaim, inbox[0].Type)
	assert.Contains(t, inbox[0].Message, coupon.RedemptionCode)
}

func TestCouponService_Claim_UnknownDeal(t *testing.T) {
	env := newTestEnv(t)
	service := env.newCouponService()

	_, err := service.Claim(context.Background(), uuid.New(), uuid.New())

	assertErrorCode(t, err, "NOT_FOUND")
}

func TestCouponService_Claim_HiddenDealNotEligible(t *testing.T) {
	env := newTestEnv(t)
	service := env.newCouponService()
	business := env.seedBusiness(t)
	deal := env.seedDeal(t, business.ID, 10)

	deal.Paused = true
	require.NoError(t, env.dealRepo.UpdateDeal(context.Background(), deal))

	_, err := service.Claim(context.Background(), deal.ID, uuid.New())

	assertErrorCode(t, err, "NOT_ELIGIBLE")
}

func TestCouponService_Claim_UnapprovedBusinessNotEligible(t *testing.T) {
	env := newTestEnv(t)
	service := env.newCouponService()
	business := env.seedBusiness(t)
	deal := env.seedDeal(t, business.ID, 10)

	business.ApprovalStatus = entity.ApprovalRejected
	require.NoError(t, env.businessRepo.UpdateBusiness(context.Background(), business))

	_, err := service.Claim(context.Background(), deal.ID, uuid.New())

	assertErrorCode(t, err, "NOT_ELIGIBLE")
}

func TestCouponService_Claim_SoldOut(t *testing.T) {
	env := newTestEnv(t)
	service := env.newCouponService()
	business := env.seedBusiness(t)
	deal := env.seedDeal(t, business.ID, 1)

	_, err := service.Claim(context.Background(), deal.ID, uuid.New())
	require.NoError(t, err)

	_, err = service.Claim(context.Background(), deal.ID, uuid.New())

	assertErrorCode(t, err, "SOLD_OUT")
}

func TestCouponService_Claim_OneActiveCouponPerUser(t *testing.T) {
	env := newTestEnv(t)
	service := env.newCouponService()
	business := env.seedBusiness(t)
	deal := env.seedDeal(t, business.ID, 10)
	userID := uuid.New()

	_, err := service.Claim(context.Background(), deal.ID, userID)
	require.NoError(t, err)

	_, err = service.Claim(context.Background(), deal.ID, userID)
	assertErrorCode(t, err, "ALREADY_CLAIMED")

	stored, err := env.dealRepo.FindDealByID(context.Background(), deal.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.ClaimedQuantity)
}

func TestCouponService_Claim_AgainAfterRedemption(t *testing.T) {
	env := newTestEnv(t)
	service := env.newCouponService()
	business := env.seedBusiness(t)
	deal := env.seedDeal(t, business.ID, 10)
	userID := uuid.New()

	first, err := service.Claim(context.Background(), deal.ID, userID)
	require.NoError(t, err)

	_, err = service.Redeem(context.Background(), first.RedemptionCode, nil)
	require.NoError(t, err)

	second, err := service.Claim(context.Background(), deal.ID, userID)
	require.NoError(t, err)
	assert.NotEqual(t, first.RedemptionCode, second.RedemptionCode)
}

func TestCouponService_Claim_ConcurrentLastUnit(t *testing.T) {
	env := newTestEnv(t)
	service := env.newCouponService()
	business := env.seedBusiness(t)
	deal := env.seedDeal(t, business.ID, 1)

	const claimers = 8
	results := make([]error, claimers)

	var wg sync.WaitGroup
	for i := range claimers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = service.Claim(context.Background(), deal.ID, uuid.New())
		}()
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			assertErrorCode(t, err, "SOLD_OUT")
		}
	}
	assert.Equal(t, 1, winners)

	stored, err := env.dealRepo.FindDealByID(context.Background(), deal.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.ClaimedQuantity)
}

func TestCouponService_Redeem_MarksUsedOnce(t *testing.T) {
	env := newTestEnv(t)
	service := env.newCouponService()
	business := env.seedBusiness(t)
	deal := env.seedDeal(t, business.ID, 10)

	coupon, err := service.Claim(context.Background(), deal.ID, uuid.New())
	require.NoError(t, err)

	redeemed, err := service.Redeem(context.Background(), coupon.RedemptionCode, &business.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CouponUsed, redeemed.Status)
	require.NotNil(t, redeemed.UsedAt)

	_, err = service.Redeem(context.Background(), coupon.RedemptionCode, &business.ID)
	assertErrorCode(t, err, "ALREADY_USED")

	// The recorded redemption time survives the second attempt and is
	// echoed back in the error details.
	stored, findErr := env.couponRepo.FindCouponByID(context.Background(), coupon.ID)
	require.NoError(t, findErr)
	require.NotNil(t, stored.UsedAt)
	assert.Equal(t, redeemed.UsedAt.Unix(), stored.UsedAt.Unix())

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, stored.UsedAt.Format(time.RFC3339), appErr.Details())
}

func TestCouponService_Redeem_UnknownCode(t *testing.T) {
	env := newTestEnv(t)
	service := env.newCouponService()

	_, err := service.Redeem(context.Background(), "DESCYA-DEADBEEF-CAFEBABE-0", nil)

	assertErrorCode(t, err, "NOT_FOUND")
}

func TestCouponService_Redeem_MalformedPayload(t *testing.T) {
	env := newTestEnv(t)
	service := env.newCouponService()

	_, err := service.Redeem(context.Background(), "https://example.com/not-a-coupon", nil)

	assertErrorCode(t, err, "NOT_FOUND")
}

func TestCouponService_Redeem_WrongBusinessLeavesCouponActive(t *testing.T) {
	env := newTestEnv(t)
	service := env.newCouponService()
	business := env.seedBusiness(t)
	deal := env.seedDeal(t, business.ID, 10)

	coupon, err := service.Claim(context.Background(), deal.ID, uuid.New())
	require.NoError(t, err)

	otherBusiness := uuid.New()
	_, err = service.Redeem(context.Background(), coupon.RedemptionCode, &otherBusiness)
	assertErrorCode(t, err, "WRONG_BUSINESS")

	stored, err := env.couponRepo.FindCouponByID(context.Background(), coupon.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CouponActive, stored.Status)
	assert.Nil(t, stored.UsedAt)
}

func TestCouponService_Redeem_SweepsExpiredDeal(t *testing.T) {
	env := newTestEnv(t)
	service := env.newCouponService()
	business := env.seedBusiness(t)
	deal := env.seedDeal(t, business.ID, 10)

	// Seed a coupon whose snapshot carries an already-passed expiry.
	snapshot := *deal
	snapshot.ExpiresAt = time.Now().Add(-time.Hour)
	coupon := &entity.Coupon{
		ID:             uuid.New(),
		DealID:         deal.ID,
		UserID:         uuid.New(),
		RedemptionCode: "DESCYA-0VERDUE0-C0UP0N00-1",
		Status:         entity.CouponActive,
		ClaimedAt:      time.Now().Add(-72 * time.Hour),
		Deal:           snapshot,
	}
	require.NoError(t, env.couponRepo.CreateCoupon(context.Background(), coupon))

	_, err := service.Redeem(context.Background(), coupon.RedemptionCode, &business.ID)
	assertErrorCode(t, err, "EXPIRED")

	swept, err := env.couponRepo.FindCouponByID(context.Background(), coupon.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CouponExpired, swept.Status)
	assert.Nil(t, swept.UsedAt)

	_, err = service.Redeem(context.Background(), coupon.RedemptionCode, &business.ID)
	assertErrorCode(t, err, "EXPIRED")
}

func TestCouponService_RedeemByID_SkipsBusinessScope(t *testing.T) {
	env := newTestEnv(t)
	service := env.newCouponService()
	business := env.seedBusiness(t)
	deal := env.seedDeal(t, business.ID, 10)

	coupon, err := service.Claim(context.Background(), deal.ID, uuid.New())
	require.NoError(t, err)

	redeemed, err := service.RedeemByID(context.Background(), coupon.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.CouponUsed, redeemed.Status)
}

func TestCouponService_CouponQR_RendersPNG(t *testing.T) {
	env := newTestEnv(t)
	service := env.newCouponService()
	business := env.seedBusiness(t)
	deal := env.seedDeal(t, business.ID, 10)

	coupon, err := service.Claim(context.Background(), deal.ID, uuid.New())
	require.NoError(t, err)

	png, err := service.CouponQR(context.Background(), coupon.ID)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))
}
