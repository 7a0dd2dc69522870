package repository

import (
	"context"
	"errors"

	"descya/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification inbox storage.
type NotificationRepository interface {
	// CreateNotification persists a new notification record.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// ListNotificationsByRecipient retrieves a recipient's notifications, newest first.
	ListNotificationsByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*entity.Notification, error)

	// MarkRead flips the read flag on a single notification.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead flips the read flag on every notification of the recipient.
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) error
}
