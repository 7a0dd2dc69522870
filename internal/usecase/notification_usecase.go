package usecase

import (
	"context"

	"descya/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase manages per-recipient notification feeds.
type NotificationUsecase interface {
	// List returns the recipient's notifications, newest first.
	List(ctx context.Context, recipientID uuid.UUID) ([]*entity.Notification, error)

	// MarkRead marks a single notification as read. The recipient must own it.
	MarkRead(ctx context.Context, recipientID, notificationID uuid.UUID) error

	// MarkAllRead marks every unread notification of the recipient as read.
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) error
}
