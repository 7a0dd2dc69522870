package model

import (
	"time"

	"descya/internal/domain/entity"

	"github.com/google/uuid"
)

// CouponModel mirrors the 'coupons' table. The deal snapshot is stored as
// JSON so issued coupons survive later edits or deletion of the deal. The
// partial unique index on (user_id, deal_id) where status = 'active' backs
// the one-active-coupon-per-pair invariant at the storage level.
type CouponModel struct {
	ID             uuid.UUID   `gorm:"type:uuid;primary_key"`
	DealID         uuid.UUID   `gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID   `gorm:"type:uuid;not null;index"`
	BusinessID     uuid.UUID   `gorm:"type:uuid;not null;index"`
	RedemptionCode string      `gorm:"type:varchar(64);not null;uniqueIndex"`
	Status         string      `gorm:"type:varchar(10);not null;default:'active'"`
	ClaimedAt      time.Time   `gorm:"not null"`
	UsedAt         *time.Time
	DealSnapshot   entity.Deal `gorm:"serializer:json"`
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}

// ToDomain maps the persistence model to a pure domain entity.
func (m *CouponModel) ToDomain() *entity.Coupon {
	return &entity.Coupon{
		ID:             m.ID,
		DealID:         m.DealID,
		UserID:         m.UserID,
		RedemptionCode: m.RedemptionCode,
		Status:         entity.CouponStatus(m.Status),
		ClaimedAt:      m.ClaimedAt,
		UsedAt:         m.UsedAt,
		Deal:           m.DealSnapshot,
	}
}

// CouponFromDomain maps a domain entity to the persistence model. The
// owning business id is denormalized out of the snapshot for scanner
// scoping queries.
func CouponFromDomain(c *entity.Coupon) *CouponModel {
	return &CouponModel{
		ID:             c.ID,
		DealID:         c.DealID,
		UserID:         c.UserID,
		BusinessID:     c.Deal.BusinessID,
		RedemptionCode: c.RedemptionCode,
		Status:         string(c.Status),
		ClaimedAt:      c.ClaimedAt,
		UsedAt:         c.UsedAt,
		DealSnapshot:   c.Deal,
	}
}
