package impl

import (
	"context"
	"testing"

	"descya/internal/domain/entity"
	"descya/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessService_Create_StartsPendingOnBasicPlan(t *testing.T) {
	env := newTestEnv(t)
	service := env.newBusinessService()

	business, err := service.Create(context.Background(), &usecase.CreateBusinessInput{
		Name:     "Café Brasilero",
		Category: "Gastronomía",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PlanBasic, business.Plan)
	assert.Equal(t, entity.ApprovalPending, business.ApprovalStatus)
	assert.True(t, business.Active)
	assert.False(t, business.CanPublish())
}

func TestBusinessService_Create_UnknownPlan(t *testing.T) {
	env := newTestEnv(t)
	service := env.newBusinessService()

	_, err := service.Create(context.Background(), &usecase.CreateBusinessInput{
		Name:     "Café Brasilero",
		Category: "Gastronomía",
		Plan:     entity.PlanTier("diamante"),
	})

	assertErrorCode(t, err, "VALIDATION_ERROR")
}

func TestBusinessService_ApproveEnablesPublishing(t *testing.T) {
	env := newTestEnv(t)
	service := env.newBusinessService()

	created, err := service.Create(context.Background(), &usecase.CreateBusinessInput{
		Name:     "Café Brasilero",
		Category: "Gastronomía",
	})
	require.NoError(t, err)

	approved, err := service.Approve(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, approved.CanPublish())

	rejected, err := service.Reject(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, rejected.CanPublish())
}

func TestBusinessService_Update_Patch(t *testing.T) {
	env := newTestEnv(t)
	service := env.newBusinessService()
	business := env.seedBusiness(t)

	phone := "099123456"
	plan := entity.PlanPremium
	inactive := false

	updated, err := service.Update(context.Background(), business.ID, &usecase.UpdateBusinessInput{
		Phone:  &phone,
		Plan:   &plan,
		Active: &inactive,
	})

	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, entity.PlanPremium, updated.Plan)
	assert.False(t, updated.Active)
	assert.Equal(t, business.Name, updated.Name)
}

func TestBusinessService_Update_NotFound(t *testing.T) {
	env := newTestEnv(t)
	service := env.newBusinessService()

	name := "Otro nombre"
	_, err := service.Update(context.Background(), uuid.New(), &usecase.UpdateBusinessInput{Name: &name})

	assertErrorCode(t, err, "NOT_FOUND")
}

func TestBusinessService_Delete(t *testing.T) {
	env := newTestEnv(t)
	service := env.newBusinessService()
	business := env.seedBusiness(t)

	require.NoError(t, service.Delete(context.Background(), business.ID))

	_, err := service.Get(context.Background(), business.ID)
	assertErrorCode(t, err, "NOT_FOUND")
}
