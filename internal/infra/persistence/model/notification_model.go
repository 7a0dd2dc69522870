package model

import (
	"time"

	"descya/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table.
type NotificationModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key"`
	RecipientID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type        string     `gorm:"type:varchar(20);not null"`
	Title       string     `gorm:"type:varchar(200)"`
	Message     string     `gorm:"type:text"`
	DealID      *uuid.UUID `gorm:"type:uuid"`
	Read        bool       `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain maps the persistence model to a pure domain entity.
func (m *NotificationModel) ToDomain() *entity.Notification {
	return &entity.Notification{
		ID:          m.ID,
		RecipientID: m.RecipientID,
		Type:        entity.NotificationType(m.Type),
		Title:       m.Title,
		Message:     m.Message,
		DealID:      m.DealID,
		Read:        m.Read,
		CreatedAt:   m.CreatedAt,
	}
}

// NotificationFromDomain maps a domain entity to the persistence model.
func NotificationFromDomain(n *entity.Notification) *NotificationModel {
	return &NotificationModel{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Type:        string(n.Type),
		Title:       n.Title,
		Message:     n.Message,
		DealID:      n.DealID,
		Read:        n.Read,
		CreatedAt:   n.CreatedAt,
	}
}
