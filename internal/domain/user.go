package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a Mini App user keyed by the platform-assigned id.
type User struct {
	ID         uuid.UUID
	ExternalID string
	Handle     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
