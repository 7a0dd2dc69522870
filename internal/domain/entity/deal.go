// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// ApprovalStatus represents the admin approval gate applied to deals and businesses.
type ApprovalStatus string

const (
	// ApprovalPending means the submission is waiting for an admin decision.
	ApprovalPending ApprovalStatus = "pending"
	// ApprovalApproved means an admin accepted the submission.
	ApprovalApproved ApprovalStatus = "approved"
	// ApprovalRejected means an admin rejected the submission.
	ApprovalRejected ApprovalStatus = "rejected"
)

// IsValid checks if the ApprovalStatus is a valid value.
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	default:
		return false
	}
}

// Deal is a discount offer published by a business, gated by admin approval.
type Deal struct {
	ID                uuid.UUID      `json:"id"`                 // The Global Unique Identifier (GUID) for the deal.
	BusinessID        uuid.UUID      `json:"business_id"`        // The ID of the owning business. Never nil.
	BusinessName      string         `json:"business_name"`      // Denormalized business display name.
	BusinessLogo      string         `json:"business_logo"`      // Denormalized business logo URL.
	Title             string         `json:"title"`              // Short title shown on cards.
	Description       string         `json:"description"`        // One-line description.
	Details           string         `json:"details"`            // Long-form details shown on the deal page.
	Image             string         `json:"image"`              // URL of the deal image.
	OriginalPrice     float64        `json:"original_price"`     // Price before discount, in pesos.
	DiscountPrice     float64        `json:"discount_price"`     // Price after discount. Always derived from OriginalPrice and DiscountPercent.
	DiscountPercent   int            `json:"discount_percent"`   // Discount percentage, strictly between 0 and 100.
	Category          string         `json:"category"`           // Marketplace category.
	AvailableQuantity int            `json:"available_quantity"` // Total coupons that may be issued. Immutable outside admin edits.
	ClaimedQuantity   int            `json:"claimed_quantity"`   // Coupons issued so far. Monotonically non-decreasing.
	ExpiresAt         time.Time      `json:"expires_at"`         // Instant after which the deal is no longer claimable.
	CreatedAt         time.Time      `json:"created_at"`         // Timestamp of when this record was created.
	UpdatedAt         time.Time      `json:"updated_at"`         // Timestamp of the last modification.
	Active            bool           `json:"active"`             // Whether the deal is switched on at all.
	Paused            bool           `json:"paused"`             // Temporary pause toggled by the business or an admin.
	Featured          bool           `json:"featured"`           // Admin-curated highlight flag.
	ApprovalStatus    ApprovalStatus `json:"approval_status"`    // Admin approval gate.
	RejectionReason   string         `json:"rejection_reason,omitempty"` // Reason recorded on rejection.
	Address           string         `json:"address"`            // Human-readable address where the deal is redeemed.
	Latitude          float64        `json:"latitude"`           // The geographic latitude of the redemption location.
	Longitude         float64        `json:"longitude"`          // The geographic longitude of the redemption location.
	Terms             []string       `json:"terms"`              // Terms and conditions shown to the user.
}

// IsVisible reports whether the deal may be shown to (and claimed by) end users
// at the given instant: approved, active, not paused and not expired.
func (d *Deal) IsVisible(now time.Time) bool {
	return d.ApprovalStatus == ApprovalApproved && d.Active && !d.Paused && now.Before(d.ExpiresAt)
}

// Remaining returns the number of coupons that can still be issued.
func (d *Deal) Remaining() int {
	return d.AvailableQuantity - d.ClaimedQuantity
}

// DiscountPrice derives the discounted price from an original price and a
// percentage, rounded to the nearest whole peso.
func DiscountPrice(originalPrice float64, discountPercent int) float64 {
	return math.Round(originalPrice * (1 - float64(discountPercent)/100))
}
