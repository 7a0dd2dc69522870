package service

import (
	"context"
	"time"
)

// LifecycleEvent is the outbox record published after a state transition.
// Publishing is fire-and-forget relative to the triggering command: a
// delivery failure never rolls back the transition that produced the event.
type LifecycleEvent struct {
	Kind       string    `json:"kind"`                  // "deal.submitted", "deal.approved", "deal.rejected", "coupon.claimed", "coupon.redeemed"
	DealID     string    `json:"deal_id,omitempty"`     // The deal involved, if any.
	CouponID   string    `json:"coupon_id,omitempty"`   // The coupon involved, if any.
	UserID     string    `json:"user_id,omitempty"`     // The acting user, if any.
	BusinessID string    `json:"business_id,omitempty"` // The owning business, if any.
	OccurredAt time.Time `json:"occurred_at"`           // When the transition happened.
}

// EventPublisher defines the interface for publishing lifecycle events to a
// message queue for external consumers (dashboards, delivery pipelines).
type EventPublisher interface {
	// PublishLifecycleEvent publishes a lifecycle event for async processing.
	PublishLifecycleEvent(ctx context.Context, event *LifecycleEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
