package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an organizer identity. Event creation only reads it.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
