package memory

import (
	"context"
	"sort"

	"descya/internal/domain/entity"
	"descya/internal/domain/repository"

	"github.com/google/uuid"
)

type notificationRepository struct {
	store *Store
}

// NewNotificationRepository creates a store-backed NotificationRepository.
func NewNotificationRepository(store *Store) repository.NotificationRepository {
	return &notificationRepository{store: store}
}

func (r *notificationRepository) CreateNotification(_ context.Context, notification *entity.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.notifications[notification.ID] = *notification
	r.store.nextSeq(notification.ID)

	return nil
}

func (r *notificationRepository) FindNotificationByID(_ context.Context, id uuid.UUID) (*entity.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	notification, ok := r.store.notifications[id]
	if !ok {
		return nil, repository.ErrNotificationNotFound
	}

	return &notification, nil
}

func (r *notificationRepository) ListNotificationsByRecipient(_ context.Context, recipientID uuid.UUID) ([]*entity.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	notifications := make([]*entity.Notification, 0)
	for _, notification := range r.store.notifications {
		n := notification
		if n.RecipientID == recipientID {
			notifications = append(notifications, &n)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		return r.store.order[notifications[i].ID] > r.store.order[notifications[j].ID]
	})

	return notifications, nil
}

func (r *notificationRepository) MarkRead(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	notification, ok := r.store.notifications[id]
	if !ok {
		return repository.ErrNotificationNotFound
	}
	notification.Read = true
	r.store.notifications[id] = notification

	return nil
}

func (r *notificationRepository) MarkAllRead(_ context.Context, recipientID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, notification := range r.store.notifications {
		if notification.RecipientID == recipientID && !notification.Read {
			notification.Read = true
			r.store.notifications[id] = notification
		}
	}

	return nil
}
