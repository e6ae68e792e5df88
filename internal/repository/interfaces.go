package repository

import (
	"context"

	"github.com/eventdesk/ticket-api/internal/domain"
	"github.com/google/uuid"
)

// UserRepository looks up organizer identities
type UserRepository interface {
	// GetByID retrieves a user by ID, returning nil, nil when absent
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// EventRepository persists event aggregates
type EventRepository interface {
	// Create writes the event and all of its ticket types atomically and
	// assigns the generated ids and timestamps
	Create(ctx context.Context, event *domain.Event) error
}
