package model

import (
	"time"

	"github.com/google/uuid"
)

// Subscription represents a stored subscriber record.
type Subscription struct {
	ID           uuid.UUID `json:"id"`            // v4 identifier generated on insert
	Email        string    `json:"email"`         // address as submitted
	Name         string    `json:"name"`          // trimmed display name
	SubscribedAt time.Time `json:"subscribed_at"` // insert time in UTC, set by the store
}
