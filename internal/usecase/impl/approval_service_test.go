package impl

import (
	"context"
	"testing"
	"time"

	"descya/internal/domain/entity"
	"descya/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission(businessID uuid.UUID) usecase.SubmitDealInput {
	return usecase.SubmitDealInput{
		BusinessID:      businessID,
		Title:           "2x1 en pizzas",
		Description:     "Dos pizzas al precio de una",
		OriginalPrice:   1000,
		DiscountPercent: 40,
		Category:        "Gastronomía",
		Quantity:        50,
		ExpiresAt:       time.Now().Add(72 * time.Hour),
	}
}

func TestApprovalService_SubmitDeal_StartsPending(t *testing.T) {
	env := newTestEnv(t)
	service := env.newApprovalService()
	business := env.seedBusiness(t)

	deal, err := service.SubmitDeal(context.Background(), validSubmission(business.ID))

	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalPending, deal.ApprovalStatus)
	assert.False(t, deal.Active)
	assert.Equal(t, business.Name, deal.BusinessName)
	assert.Equal(t, float64(600), deal.DiscountPrice)
	assert.Equal(t, 0, deal.ClaimedQuantity)

	inbox := env.notificationsFor(t, entity.AdminRecipient)
	require.Len(t, inbox, 1)
	assert.Equal(t, entity.NotificationSystem, inbox[0].Type)
	assert.Equal(t, &deal.ID, inbox[0].DealID)
}

func TestApprovalService_SubmitDeal_AdminAuthoredSkipsApproval(t *testing.T) {
	env := newTestEnv(t)
	service := env.newApprovalService()
	business := env.seedBusiness(t)

	input := validSubmission(business.ID)
	input.AdminAuthored = true

	deal, err := service.SubmitDeal(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalApproved, deal.ApprovalStatus)
	assert.True(t, deal.Active)
	assert.Empty(t, env.notificationsFor(t, entity.AdminRecipient))
}

func TestApprovalService_SubmitDeal_Validation(t *testing.T) {
	env := newTestEnv(t)
	service := env.newApprovalService()
	business := env.seedBusiness(t)

	tests := []struct {
		name   string
		mutate func(*usecase.SubmitDealInput)
	}{
		{"empty title", func(in *usecase.SubmitDealInput) { in.Title = "" }},
		{"zero price", func(in *usecase.SubmitDealInput) { in.OriginalPrice = 0 }},
		{"zero discount", func(in *usecase.SubmitDealInput) { in.DiscountPercent = 0 }},
		{"full discount", func(in *usecase.SubmitDealInput) { in.DiscountPercent = 100 }},
		{"zero quantity", func(in *usecase.SubmitDealInput) { in.Quantity = 0 }},
		{"past expiry", func(in *usecase.SubmitDealInput) { in.ExpiresAt = time.Now().Add(-time.Hour) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validSubmission(business.ID)
			tt.mutate(&input)

			_, err := service.SubmitDeal(context.Background(), input)

			assertErrorCode(t, err, "VALIDATION_ERROR")
		})
	}
}

func TestApprovalService_SubmitDeal_UnknownBusiness(t *testing.T) {
	env := newTestEnv(t)
	service := env.newApprovalService()

	_, err := service.SubmitDeal(context.Background(), validSubmission(uuid.New()))

	assertErrorCode(t, err, "NOT_FOUND")
}

func TestApprovalService_ApproveDeal_ActivatesAndNotifies(t *testing.T) {
	env := newTestEnv(t)
	service := env.newApprovalService()
	business := env.seedBusiness(t)

	submitted, err := service.SubmitDeal(context.Background(), validSubmission(business.ID))
	require.NoError(t, err)

	approved, err := service.ApproveDeal(context.Background(), submitted.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalApproved, approved.ApprovalStatus)
	assert.True(t, approved.Active)

	inbox := env.notificationsFor(t, business.ID)
	require.Len(t, inbox, 1)
	assert.Equal(t, entity.NotificationApproval, inbox[0].Type)
}

func TestApprovalService_ApproveDeal_IsOneShot(t *testing.T) {
	env := newTestEnv(t)
	service := env.newApprovalService()
	business := env.seedBusiness(t)

	submitted, err := service.SubmitDeal(context.Background(), validSubmission(business.ID))
	require.NoError(t, err)

	_, err = service.ApproveDeal(context.Background(), submitted.ID)
	require.NoError(t, err)

	_, err = service.ApproveDeal(context.Background(), submitted.ID)
	assertErrorCode(t, err, "INVALID_TRANSITION")

	_, err = service.RejectDeal(context.Background(), submitted.ID, "cambio de opinión")
	assertErrorCode(t, err, "INVALID_TRANSITION")
}

func TestApprovalService_RejectDeal_RecordsReasonVerbatim(t *testing.T) {
	env := newTestEnv(t)
	service := env.newApprovalService()
	business := env.seedBusiness(t)

	submitted, err := service.SubmitDeal(context.Background(), validSubmission(business.ID))
	require.NoError(t, err)

	reason := "La imagen no corresponde al producto"
	rejected, err := service.RejectDeal(context.Background(), submitted.ID, reason)

	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalRejected, rejected.ApprovalStatus)
	assert.False(t, rejected.Active)
	assert.Equal(t, reason, rejected.RejectionReason)

	inbox := env.notificationsFor(t, business.ID)
	require.Len(t, inbox, 1)
	assert.Equal(t, entity.NotificationRejection, inbox[0].Type)
	assert.Contains(t, inbox[0].Message, reason)
}

func TestApprovalService_RejectDeal_RequiresReason(t *testing.T) {
	env := newTestEnv(t)
	service := env.newApprovalService()
	business := env.seedBusiness(t)

	submitted, err := service.SubmitDeal(context.Background(), validSubmission(business.ID))
	require.NoError(t, err)

	_, err = service.RejectDeal(context.Background(), submitted.ID, "")

	assertErrorCode(t, err, "VALIDATION_ERROR")
}

func TestApprovalService_TogglePause_ApprovedOnly(t *testing.T) {
	env := newTestEnv(t)
	service := env.newApprovalService()
	business := env.seedBusiness(t)

	submitted, err := service.SubmitDeal(context.Background(), validSubmission(business.ID))
	require.NoError(t, err)

	_, err = service.TogglePause(context.Background(), submitted.ID)
	assertErrorCode(t, err, "INVALID_TRANSITION")

	_, err = service.ApproveDeal(context.Background(), submitted.ID)
	require.NoError(t, err)

	paused, err := service.TogglePause(context.Background(), submitted.ID)
	require.NoError(t, err)
	assert.True(t, paused.Paused)

	resumed, err := service.TogglePause(context.Background(), submitted.ID)
	require.NoError(t, err)
	assert.False(t, resumed.Paused)
}

func TestApprovalService_ToggleFeatured_AnyState(t *testing.T) {
	env := newTestEnv(t)
	service := env.newApprovalService()
	business := env.seedBusiness(t)

	submitted, err := service.SubmitDeal(context.Background(), validSubmission(business.ID))
	require.NoError(t, err)

	featured, err := service.ToggleFeatured(context.Background(), submitted.ID)

	require.NoError(t, err)
	assert.True(t, featured.Featured)
}

func TestApprovalService_UpdateDeal_RecomputesDiscountPrice(t *testing.T) {
	env := newTestEnv(t)
	service := env.newApprovalService()
	business := env.seedBusiness(t)

	submitted, err := service.SubmitDeal(context.Background(), validSubmission(business.ID))
	require.NoError(t, err)

	newPrice := 800.0
	updated, err := service.UpdateDeal(context.Background(), submitted.ID, usecase.UpdateDealInput{
		OriginalPrice: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, float64(800), updated.OriginalPrice)
	assert.Equal(t, float64(480), updated.DiscountPrice)
}

func TestApprovalService_UpdateDeal_RejectedReentersPending(t *testing.T) {
	env := newTestEnv(t)
	service := env.newApprovalService()
	business := env.seedBusiness(t)

	submitted, err := service.SubmitDeal(context.Background(), validSubmission(business.ID))
	require.NoError(t, err)

	_, err = service.RejectDeal(context.Background(), submitted.ID, "foto borrosa")
	require.NoError(t, err)

	title := "2x1 en pizzas grandes"
	updated, err := service.UpdateDeal(context.Background(), submitted.ID, usecase.UpdateDealInput{
		Title: &title,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalPending, updated.ApprovalStatus)
	assert.Empty(t, updated.RejectionReason)

	// The resubmission lands in the admin inbox a second time.
	assert.Len(t, env.notificationsFor(t, entity.AdminRecipient), 2)
}

func TestApprovalService_UpdateDeal_QuantityCannotDropBelowClaimed(t *testing.T) {
	env := newTestEnv(t)
	service := env.newApprovalService()
	business := env.seedBusiness(t)
	deal := env.seedDeal(t, business.ID, 10)

	_, err := env.dealRepo.ClaimUnit(context.Background(), deal.ID)
	require.NoError(t, err)

	smaller := 0
	_, err = service.UpdateDeal(context.Background(), deal.ID, usecase.UpdateDealInput{Quantity: &smaller})

	assertErrorCode(t, err, "VALIDATION_ERROR")
}

func TestApprovalService_DeleteDeal(t *testing.T) {
	env := newTestEnv(t)
	service := env.newApprovalService()
	business := env.seedBusiness(t)
	deal := env.seedDeal(t, business.ID, 10)

	require.NoError(t, service.DeleteDeal(context.Background(), deal.ID))

	err := service.DeleteDeal(context.Background(), deal.ID)
	assertErrorCode(t, err, "NOT_FOUND")
}
