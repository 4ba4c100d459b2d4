package domain

import "time"

// RecipientStatus tracks delivery of one campaign email.
type RecipientStatus string

const (
	RecipientPending RecipientStatus = "pending"
	RecipientSent    RecipientStatus = "sent"
	RecipientFailed  RecipientStatus = "failed"
)

// Recipient is a subscribed platform user selected into an email audience.
type Recipient struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Email     string          `json:"email"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Status    RecipientStatus `json:"status"`
	SentAt    *time.Time      `json:"sent_at,omitempty"`
}
