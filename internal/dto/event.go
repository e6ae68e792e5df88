package dto

import (
	"encoding/json"
	"math"
	"time"

	"github.com/eventdesk/ticket-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Limits of the ticket_types columns: price NUMERIC(12,2), total_available INT
var maxTicketPrice = decimal.RequireFromString("9999999999.99")

const maxTotalAvailable = math.MaxInt32

// CreateEventRequest represents the request to create a new event
type CreateEventRequest struct {
	Name        string                    `json:"name" binding:"required,min=1,max=255"`
	Start       *time.Time                `json:"start"`
	End         *time.Time                `json:"end"`
	Venue       string                    `json:"venue" binding:"required,min=1,max=255"`
	SalesStart  *time.Time                `json:"salesStart"`
	SalesEnd    *time.Time                `json:"salesEnd"`
	Status      string                    `json:"status" binding:"required,oneof=DRAFT PUBLISHED CANCELLED COMPLETED"`
	TicketTypes []CreateTicketTypeRequest `json:"ticketTypes" binding:"dive"`
}

// CreateTicketTypeRequest represents one ticket type inside CreateEventRequest
type CreateTicketTypeRequest struct {
	Name           string           `json:"name" binding:"required,min=1,max=255"`
	Description    string           `json:"description" binding:"max=2000"`
	Price          *decimal.Decimal `json:"price" binding:"required"`
	TotalAvailable *int             `json:"totalAvailable" binding:"omitempty,gte=0"`
}

// Validate validates the CreateEventRequest
func (r *CreateEventRequest) Validate() (bool, string) {
	if r.Name == "" {
		return false, "Event name is required"
	}
	if r.Venue == "" {
		return false, "Venue is required"
	}
	if !domain.EventStatus(r.Status).IsValid() {
		return false, "Status must be one of DRAFT, PUBLISHED, CANCELLED, COMPLETED"
	}
	if r.Start != nil && r.End != nil && r.End.Before(*r.Start) {
		return false, "Event end time must be after start time"
	}
	if r.SalesStart != nil && r.SalesEnd != nil && r.SalesEnd.Before(*r.SalesStart) {
		return false, "Sales end time must be after sales start time"
	}
	for _, tt := range r.TicketTypes {
		if tt.Name == "" {
			return false, "Ticket type name is required"
		}
		if tt.Price == nil {
			return false, "Ticket type price is required"
		}
		if tt.Price.IsNegative() {
			return false, "Ticket type price cannot be negative"
		}
		if !tt.Price.Equal(tt.Price.Truncate(2)) {
			return false, "Ticket type price must have at most 2 decimal places"
		}
		if tt.Price.GreaterThan(maxTicketPrice) {
			return false, "Ticket type price cannot exceed 9999999999.99"
		}
		if tt.TotalAvailable != nil && *tt.TotalAvailable < 0 {
			return false, "Ticket type total available cannot be negative"
		}
		if tt.TotalAvailable != nil && *tt.TotalAvailable > maxTotalAvailable {
			return false, "Ticket type total available is too large"
		}
	}
	return true, ""
}

// ToDomain maps the request onto the domain input. Call Validate first.
func (r *CreateEventRequest) ToDomain() *domain.CreateEventRequest {
	ticketTypes := make([]domain.CreateTicketTypeRequest, 0, len(r.TicketTypes))
	for _, tt := range r.TicketTypes {
		price := decimal.Zero
		if tt.Price != nil {
			price = *tt.Price
		}
		ticketTypes = append(ticketTypes, domain.CreateTicketTypeRequest{
			Name:           tt.Name,
			Description:    tt.Description,
			Price:          price,
			TotalAvailable: tt.TotalAvailable,
		})
	}

	return &domain.CreateEventRequest{
		Name:        r.Name,
		Start:       r.Start,
		End:         r.End,
		Venue:       r.Venue,
		SalesStart:  r.SalesStart,
		SalesEnd:    r.SalesEnd,
		Status:      domain.EventStatus(r.Status),
		TicketTypes: ticketTypes,
	}
}

// CreateEventResponse represents the response for a created event
type CreateEventResponse struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Start       *string               `json:"start,omitempty"`
	End         *string               `json:"end,omitempty"`
	Venue       string                `json:"venue"`
	SalesStart  *string               `json:"salesStart,omitempty"`
	SalesEnd    *string               `json:"salesEnd,omitempty"`
	Status      string                `json:"status"`
	OrganizerID string                `json:"organizerId"`
	TicketTypes []*TicketTypeResponse `json:"ticketTypes"`
	CreatedAt   string                `json:"createdAt"`
	UpdatedAt   string                `json:"updatedAt"`
}

// TicketTypeResponse represents a persisted ticket type
type TicketTypeResponse struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Price          json.Number `json:"price"`
	TotalAvailable *int        `json:"totalAvailable,omitempty"`
	CreatedAt      string      `json:"createdAt"`
	UpdatedAt      string      `json:"updatedAt"`
}

// NewCreateEventResponse maps a persisted event to its response
func NewCreateEventResponse(e *domain.Event) *CreateEventResponse {
	ticketTypes := make([]*TicketTypeResponse, 0, len(e.TicketTypes))
	for _, tt := range e.TicketTypes {
		ticketTypes = append(ticketTypes, &TicketTypeResponse{
			ID:             tt.ID.String(),
			Name:           tt.Name,
			Description:    tt.Description,
			Price:          json.Number(tt.Price.StringFixed(2)),
			TotalAvailable: tt.TotalAvailable,
			CreatedAt:      tt.CreatedAt.Format(time.RFC3339),
			UpdatedAt:      tt.UpdatedAt.Format(time.RFC3339),
		})
	}

	return &CreateEventResponse{
		ID:          e.ID.String(),
		Name:        e.Name,
		Start:       formatTime(e.Start),
		End:         formatTime(e.End),
		Venue:       e.Venue,
		SalesStart:  formatTime(e.SalesStart),
		SalesEnd:    formatTime(e.SalesEnd),
		Status:      string(e.Status),
		OrganizerID: e.OrganizerID().String(),
		TicketTypes: ticketTypes,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
