package postgres

import (
	"context"

	"descya/internal/domain/entity"
	"descya/internal/domain/repository"
	"descya/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the domain's NotificationRepository using GORM.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	if err := repo.db.WithContext(ctx).Create(model.NotificationFromDomain(notification)).Error; err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	return nil
}

func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var m model.NotificationModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification")
	}

	return m.ToDomain(), nil
}

func (repo *notificationRepository) ListNotificationsByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*entity.Notification, error) {
	var models []model.NotificationModel
	err := repo.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(models))
	for i := range models {
		notifications = append(notifications, models[i].ToDomain())
	}

	return notifications, nil
}

func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("read", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

func (repo *notificationRepository) MarkAllRead(ctx context.Context, recipientID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND read = ?", recipientID, false).
		Update("read", true).Error
	if err != nil {
		return errors.Wrap(err, "failed to mark notifications read")
	}

	return nil
}
