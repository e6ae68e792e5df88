package service

import "github.com/eventdesk/ticket-api/internal/domain"

// BuildEvent assembles an unsaved Event aggregate owned by organizer.
// Every ticket type field is taken from the matching request entry and
// each ticket type points back at the returned event.
func BuildEvent(organizer *domain.User, req *domain.CreateEventRequest) *domain.Event {
	event := &domain.Event{
		Name:        req.Name,
		Start:       req.Start,
		End:         req.End,
		Venue:       req.Venue,
		SalesStart:  req.SalesStart,
		SalesEnd:    req.SalesEnd,
		Status:      req.Status,
		Organizer:   organizer,
		TicketTypes: make([]*domain.TicketType, 0, len(req.TicketTypes)),
	}

	for _, src := range req.TicketTypes {
		event.TicketTypes = append(event.TicketTypes, &domain.TicketType{
			Name:           src.Name,
			Description:    src.Description,
			Price:          src.Price,
			TotalAvailable: src.TotalAvailable,
			Event:          event,
		})
	}

	return event
}
