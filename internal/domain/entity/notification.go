// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType tags the lifecycle event that produced a notification.
type NotificationType string

const (
	// NotificationClaim is sent to a user after a successful coupon claim.
	NotificationClaim NotificationType = "claim"
	// NotificationApproval is sent to a business when its deal is approved.
	NotificationApproval NotificationType = "approval"
	// NotificationRejection is sent to a business when its deal is rejected.
	NotificationRejection NotificationType = "rejection"
	// NotificationSystem covers platform events such as new submissions.
	NotificationSystem NotificationType = "system"
)

// AdminRecipient is the well-known recipient id for the shared admin inbox.
var AdminRecipient = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// Notification is an inbox record produced as a side effect of lifecycle
// transitions. Mutated only by the recipient marking it read.
type Notification struct {
	ID          uuid.UUID        `json:"id"`                // The Global Unique Identifier (GUID) for the notification.
	RecipientID uuid.UUID        `json:"recipient_id"`      // The user, business contact or AdminRecipient this is addressed to.
	Type        NotificationType `json:"type"`              // Lifecycle event tag.
	Title       string           `json:"title"`             // Short headline.
	Message     string           `json:"message"`           // Body text; carries rejection reasons verbatim.
	DealID      *uuid.UUID       `json:"deal_id,omitempty"` // Optional back-reference to the deal involved.
	Read        bool             `json:"read"`              // Whether the recipient has read it.
	CreatedAt   time.Time        `json:"created_at"`        // Timestamp of when this record was created.
}
