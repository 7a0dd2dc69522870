// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PlanTier represents the subscription plan a business is on.
type PlanTier string

const (
	// PlanBasic is the entry-level plan.
	PlanBasic PlanTier = "basico"
	// PlanPremium is the mid-level plan.
	PlanPremium PlanTier = "premium"
	// PlanElite is the top-level plan.
	PlanElite PlanTier = "elite"
)

// IsValid checks if the PlanTier is a valid value.
func (p PlanTier) IsValid() bool {
	switch p {
	case PlanBasic, PlanPremium, PlanElite:
		return true
	default:
		return false
	}
}

// Business is a local commerce that publishes deals on the marketplace.
type Business struct {
	ID             uuid.UUID      `json:"id"`              // The Global Unique Identifier (GUID) for the business.
	Name           string         `json:"name"`            // Public display name.
	Description    string         `json:"description"`     // Short description shown on the business page.
	Logo           string         `json:"logo"`            // URL of the business logo.
	Category       string         `json:"category"`        // Marketplace category (e.g., "Gastronomía").
	Address        string         `json:"address"`         // Human-readable street address.
	Latitude       float64        `json:"latitude"`        // The geographic latitude of the storefront.
	Longitude      float64        `json:"longitude"`       // The geographic longitude of the storefront.
	Phone          string         `json:"phone"`           // Contact phone number.
	ContactName    string         `json:"contact_name"`    // Name of the person managing the account.
	ContactEmail   string         `json:"contact_email"`   // Email of the person managing the account.
	Plan           PlanTier       `json:"plan"`            // Subscription plan tier.
	Active         bool           `json:"active"`          // Whether the business is currently operating on the platform.
	ApprovalStatus ApprovalStatus `json:"approval_status"` // Platform approval gate for the business itself.
	CreatedAt      time.Time      `json:"created_at"`      // Timestamp of when this record was created.
	UpdatedAt      time.Time      `json:"updated_at"`      // Timestamp of the last modification.
}

// CanPublish reports whether deals of this business may be shown to users.
// A rejected or inactive business must never have a visible deal.
func (b *Business) CanPublish() bool {
	return b.Active && b.ApprovalStatus == ApprovalApproved
}
