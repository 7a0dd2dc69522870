package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"descya/internal/domain/entity"
	"descya/internal/domain/repository"
	"descya/internal/domain/service"

	"github.com/google/uuid"
)

// lifecycleEmitter writes notification records and publishes lifecycle
// events after a state transition commits. Emission is fire-and-forget:
// failures are logged at warn level and never surface to the caller,
// so they cannot roll back the transition that triggered them.
type lifecycleEmitter struct {
	notificationRepo repository.NotificationRepository
	publisher        service.EventPublisher
	logger           *slog.Logger
}

func newLifecycleEmitter(
	notificationRepo repository.NotificationRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) *lifecycleEmitter {
	return &lifecycleEmitter{
		notificationRepo: notificationRepo,
		publisher:        publisher,
		logger:           logger,
	}
}

func (e *lifecycleEmitter) notify(ctx context.Context, n *entity.Notification) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	if err := e.notificationRepo.CreateNotification(ctx, n); err != nil {
		e.logger.Warn("Failed to create notification",
			slog.String("type", string(n.Type)),
			slog.Any("recipientID", n.RecipientID),
			slog.Any("error", err))
	}
}

func (e *lifecycleEmitter) publish(ctx context.Context, event *service.LifecycleEvent) {
	if e.publisher == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	if err := e.publisher.PublishLifecycleEvent(ctx, event); err != nil {
		e.logger.Warn("Failed to publish lifecycle event",
			slog.String("kind", event.Kind),
			slog.Any("error", err))
	}
}

// DealSubmitted notifies the admin inbox about a new pending submission.
func (e *lifecycleEmitter) DealSubmitted(ctx context.Context, deal *entity.Deal) {
	e.notify(ctx, &entity.Notification{
		RecipientID: entity.AdminRecipient,
		Type:        entity.NotificationSystem,
		Title:       "Nueva oferta pendiente",
		Message:     fmt.Sprintf("%s envió la oferta \"%s\" para revisión", deal.BusinessName, deal.Title),
		DealID:      &deal.ID,
	})
	e.publish(ctx, &service.LifecycleEvent{
		Kind:       "deal.submitted",
		DealID:     deal.ID.String(),
		BusinessID: deal.BusinessID.String(),
	})
}

// DealApproved notifies the owning business that its deal went live.
func (e *lifecycleEmitter) DealApproved(ctx context.Context, deal *entity.Deal) {
	e.notify(ctx, &entity.Notification{
		RecipientID: deal.BusinessID,
		Type:        entity.NotificationApproval,
		Title:       "¡Oferta aprobada!",
		Message:     fmt.Sprintf("Tu oferta \"%s\" fue aprobada y ya está visible", deal.Title),
		DealID:      &deal.ID,
	})
	e.publish(ctx, &service.LifecycleEvent{
		Kind:       "deal.approved",
		DealID:     deal.ID.String(),
		BusinessID: deal.BusinessID.String(),
	})
}

// DealRejected notifies the owning business, carrying the reason verbatim.
func (e *lifecycleEmitter) DealRejected(ctx context.Context, deal *entity.Deal, reason string) {
	e.notify(ctx, &entity.Notification{
		RecipientID: deal.BusinessID,
		Type:        entity.NotificationRejection,
		Title:       "Oferta rechazada",
		Message:     fmt.Sprintf("Tu oferta \"%s\" fue rechazada: %s", deal.Title, reason),
		DealID:      &deal.ID,
	})
	e.publish(ctx, &service.LifecycleEvent{
		Kind:       "deal.rejected",
		DealID:     deal.ID.String(),
		BusinessID: deal.BusinessID.String(),
	})
}

// CouponClaimed notifies the claiming user with the redemption code.
func (e *lifecycleEmitter) CouponClaimed(ctx context.Context, coupon *entity.Coupon) {
	e.notify(ctx, &entity.Notification{
		RecipientID: coupon.UserID,
		Type:        entity.NotificationClaim,
		Title:       "¡Cupón reclamado!",
		Message:     fmt.Sprintf("Reclamaste \"%s\". Tu código es %s", coupon.Deal.Title, coupon.RedemptionCode),
		DealID:      &coupon.DealID,
	})
	e.publish(ctx, &service.LifecycleEvent{
		Kind:       "coupon.claimed",
		DealID:     coupon.DealID.String(),
		CouponID:   coupon.ID.String(),
		UserID:     coupon.UserID.String(),
		BusinessID: coupon.Deal.BusinessID.String(),
	})
}

// CouponRedeemed publishes the redemption event for downstream consumers.
func (e *lifecycleEmitter) CouponRedeemed(ctx context.Context, coupon *entity.Coupon) {
	e.publish(ctx, &service.LifecycleEvent{
		Kind:       "coupon.redeemed",
		DealID:     coupon.DealID.String(),
		CouponID:   coupon.ID.String(),
		UserID:     coupon.UserID.String(),
		BusinessID: coupon.Deal.BusinessID.String(),
	})
}
