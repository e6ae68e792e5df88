package service

import (
	"context"

	"github.com/eventdesk/ticket-api/internal/domain"
	"github.com/eventdesk/ticket-api/internal/repository"
	"github.com/eventdesk/ticket-api/pkg/logger"
	"github.com/eventdesk/ticket-api/pkg/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// eventService implements EventService
type eventService struct {
	userRepo  repository.UserRepository
	eventRepo repository.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(userRepo repository.UserRepository, eventRepo repository.EventRepository) EventService {
	return &eventService{
		userRepo:  userRepo,
		eventRepo: eventRepo,
	}
}

// CreateEvent resolves the organizer, builds the aggregate and persists it in one write.
// Repository errors are returned unchanged.
func (s *eventService) CreateEvent(ctx context.Context, organizerID uuid.UUID, req *domain.CreateEventRequest) (*domain.Event, error) {
	ctx, span := telemetry.StartSpan(ctx, "EventService.CreateEvent")
	defer span.End()
	span.SetAttributes(
		attribute.String("organizer.id", organizerID.String()),
		attribute.Int("event.ticket_types", len(req.TicketTypes)),
	)

	organizer, err := s.userRepo.GetByID(ctx, organizerID)
	if err != nil {
		telemetry.SetSpanError(span, err)
		return nil, err
	}
	if organizer == nil {
		err := &domain.OrganizerNotFoundError{ID: organizerID}
		telemetry.SetSpanError(span, err)
		return nil, err
	}

	event := BuildEvent(organizer, req)

	if err := s.eventRepo.Create(ctx, event); err != nil {
		telemetry.SetSpanError(span, err)
		logger.Get().ErrorContext(ctx, "Failed to persist event",
			zap.String("organizer_id", organizerID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	span.SetAttributes(attribute.String("event.id", event.ID.String()))
	logger.Get().InfoContext(ctx, "Event created",
		zap.String("event_id", event.ID.String()),
		zap.String("organizer_id", organizerID.String()),
		zap.Int("ticket_types", len(event.TicketTypes)),
	)

	return event, nil
}
