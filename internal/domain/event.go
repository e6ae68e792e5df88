package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventStatus represents the lifecycle state of an event
type EventStatus string

const (
	EventStatusDraft     EventStatus = "DRAFT"
	EventStatusPublished EventStatus = "PUBLISHED"
	EventStatusCancelled EventStatus = "CANCELLED"
	EventStatusCompleted EventStatus = "COMPLETED"
)

// IsValid reports whether s is a known status
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusDraft, EventStatusPublished, EventStatusCancelled, EventStatusCompleted:
		return true
	}
	return false
}

// Event is the aggregate root. It exclusively owns its ticket types.
type Event struct {
	ID          uuid.UUID
	Name        string
	Start       *time.Time
	End         *time.Time
	Venue       string
	SalesStart  *time.Time
	SalesEnd    *time.Time
	Status      EventStatus
	Organizer   *User
	TicketTypes []*TicketType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrganizerID returns the owning organizer's id, or uuid.Nil when unset
func (e *Event) OrganizerID() uuid.UUID {
	if e.Organizer == nil {
		return uuid.Nil
	}
	return e.Organizer.ID
}

// TicketType is a priced admission category within an event
type TicketType struct {
	ID             uuid.UUID
	Name           string
	Description    string
	Price          decimal.Decimal
	TotalAvailable *int
	// Event points back to the owning aggregate
	Event     *Event
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateEventRequest is the validated input for creating an event
type CreateEventRequest struct {
	Name        string
	Start       *time.Time
	End         *time.Time
	Venue       string
	SalesStart  *time.Time
	SalesEnd    *time.Time
	Status      EventStatus
	TicketTypes []CreateTicketTypeRequest
}

// CreateTicketTypeRequest describes one ticket type inside a CreateEventRequest
type CreateTicketTypeRequest struct {
	Name           string
	Description    string
	Price          decimal.Decimal
	TotalAvailable *int
}
