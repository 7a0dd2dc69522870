package impl

import (
	"context"

	"descya/internal/domain/entity"
	domainerrors "descya/internal/domain/errors"
	"descya/internal/domain/repository"
	"descya/internal/errors"
	"descya/internal/usecase"

	"github.com/google/uuid"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(notificationRepo repository.NotificationRepository) usecase.NotificationUsecase {
	return &notificationService{notificationRepo: notificationRepo}
}

// List returns the recipient's notifications, newest first.
func (s *notificationService) List(ctx context.Context, recipientID uuid.UUID) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.ListNotificationsByRecipient(ctx, recipientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkRead marks a single notification as read. Only the recipient may
// mark their own notifications.
func (s *notificationService) MarkRead(ctx context.Context, recipientID, notificationID uuid.UUID) error {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return domainerrors.ErrNotFound.WrapMessage("notification does not exist")
	}
	if err != nil {
		return errors.Wrap(err, "failed to find notification")
	}

	if notification.RecipientID != recipientID {
		return domainerrors.ErrForbidden.WithDetails("notification belongs to another recipient")
	}

	if err := s.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// MarkAllRead marks every notification of the recipient as read.
func (s *notificationService) MarkAllRead(ctx context.Context, recipientID uuid.UUID) error {
	if err := s.notificationRepo.MarkAllRead(ctx, recipientID); err != nil {
		return errors.Wrap(err, "failed to mark notifications read")
	}

	return nil
}
