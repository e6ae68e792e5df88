package service

import (
	"context"

	"github.com/eventdesk/ticket-api/internal/domain"
	"github.com/google/uuid"
)

// EventService defines the interface for event business logic
type EventService interface {
	// CreateEvent creates an event owned by organizerID together with its ticket types
	CreateEvent(ctx context.Context, organizerID uuid.UUID, req *domain.CreateEventRequest) (*domain.Event, error)
}
