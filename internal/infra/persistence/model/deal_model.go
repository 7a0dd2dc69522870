package model

import (
	"time"

	"descya/internal/domain/entity"

	"github.com/google/uuid"
)

// DealModel mirrors the 'deals' table. Terms are stored as a JSON array.
// The check constraint backs the capacity invariant at the storage level:
// the claimed counter can never exceed the available quantity.
type DealModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessID        uuid.UUID `gorm:"type:uuid;not null;index"`
	BusinessName      string    `gorm:"type:varchar(100)"`
	BusinessLogo      string    `gorm:"type:varchar(512)"`
	Title             string    `gorm:"type:varchar(200);not null"`
	Description       string    `gorm:"type:text"`
	Details           string    `gorm:"type:text"`
	Image             string    `gorm:"type:varchar(512)"`
	OriginalPrice     float64   `gorm:"not null"`
	DiscountPrice     float64   `gorm:"not null"`
	DiscountPercent   int       `gorm:"not null"`
	Category          string    `gorm:"type:varchar(50)"`
	AvailableQuantity int       `gorm:"not null;check:claimed_quantity <= available_quantity"`
	ClaimedQuantity   int       `gorm:"not null;default:0"`
	ExpiresAt         time.Time `gorm:"not null"`
	Active            bool      `gorm:"not null;default:false"`
	Paused            bool      `gorm:"not null;default:false"`
	Featured          bool      `gorm:"not null;default:false"`
	ApprovalStatus    string    `gorm:"type:varchar(10);not null;default:'pending';index"`
	RejectionReason   string    `gorm:"type:text"`
	Address           string    `gorm:"type:varchar(255)"`
	Latitude          float64
	Longitude         float64
	Terms             []string `gorm:"serializer:json"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (DealModel) TableName() string {
	return "deals"
}

// ToDomain maps the persistence model to a pure domain entity.
func (m *DealModel) ToDomain() *entity.Deal {
	return &entity.Deal{
		ID:                m.ID,
		BusinessID:        m.BusinessID,
		BusinessName:      m.BusinessName,
		BusinessLogo:      m.BusinessLogo,
		Title:             m.Title,
		Description:       m.Description,
		Details:           m.Details,
		Image:             m.Image,
		OriginalPrice:     m.OriginalPrice,
		DiscountPrice:     m.DiscountPrice,
		DiscountPercent:   m.DiscountPercent,
		Category:          m.Category,
		AvailableQuantity: m.AvailableQuantity,
		ClaimedQuantity:   m.ClaimedQuantity,
		ExpiresAt:         m.ExpiresAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		Active:            m.Active,
		Paused:            m.Paused,
		Featured:          m.Featured,
		ApprovalStatus:    entity.ApprovalStatus(m.ApprovalStatus),
		RejectionReason:   m.RejectionReason,
		Address:           m.Address,
		Latitude:          m.Latitude,
		Longitude:         m.Longitude,
		Terms:             m.Terms,
	}
}

// DealFromDomain maps a domain entity to the persistence model.
func DealFromDomain(d *entity.Deal) *DealModel {
	return &DealModel{
		ID:                d.ID,
		BusinessID:        d.BusinessID,
		BusinessName:      d.BusinessName,
		BusinessLogo:      d.BusinessLogo,
		Title:             d.Title,
		Description:       d.Description,
		Details:           d.Details,
		Image:             d.Image,
		OriginalPrice:     d.OriginalPrice,
		DiscountPrice:     d.DiscountPrice,
		DiscountPercent:   d.DiscountPercent,
		Category:          d.Category,
		AvailableQuantity: d.AvailableQuantity,
		ClaimedQuantity:   d.ClaimedQuantity,
		ExpiresAt:         d.ExpiresAt,
		Active:            d.Active,
		Paused:            d.Paused,
		Featured:          d.Featured,
		ApprovalStatus:    string(d.ApprovalStatus),
		RejectionReason:   d.RejectionReason,
		Address:           d.Address,
		Latitude:          d.Latitude,
		Longitude:         d.Longitude,
		Terms:             d.Terms,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}
