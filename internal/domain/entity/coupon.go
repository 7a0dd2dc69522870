// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CouponStatus represents the lifecycle state of an issued coupon.
type CouponStatus string

const (
	// CouponActive means the coupon can still be redeemed.
	CouponActive CouponStatus = "active"
	// CouponUsed means the coupon was redeemed at the business. Terminal.
	CouponUsed CouponStatus = "used"
	// CouponExpired means the underlying deal expired before redemption. Terminal.
	CouponExpired CouponStatus = "expired"
)

// IsValid checks if the CouponStatus is a valid value.
func (s CouponStatus) IsValid() bool {
	switch s {
	case CouponActive, CouponUsed, CouponExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status admits no further transitions.
func (s CouponStatus) IsTerminal() bool {
	return s == CouponUsed || s == CouponExpired
}

// Coupon is a user's claim on a deal, carrying a unique redemption code.
// Coupons are never deleted; used and expired coupons remain as an audit trail.
type Coupon struct {
	ID             uuid.UUID    `json:"id"`                // The Global Unique Identifier (GUID) for the coupon.
	DealID         uuid.UUID    `json:"deal_id"`           // The ID of the claimed deal. Immutable after creation.
	UserID         uuid.UUID    `json:"user_id"`           // The ID of the claiming user. Immutable after creation.
	RedemptionCode string       `json:"redemption_code"`   // Unique, QR-encodable code presented at the business.
	Status         CouponStatus `json:"status"`            // Lifecycle state.
	ClaimedAt      time.Time    `json:"claimed_at"`        // Timestamp of issuance.
	UsedAt         *time.Time   `json:"used_at,omitempty"` // Timestamp of redemption, nil while active.
	Deal           Deal         `json:"deal"`              // Snapshot of the deal at claim time, so terms survive later edits or deletion.
}
