package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/eventdesk/ticket-api/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCreateEventRequest_Validate(t *testing.T) {
	start := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC)

	valid := func() CreateEventRequest {
		return CreateEventRequest{
			Name:   "Launch Party",
			Venue:  "Hall A",
			Status: "DRAFT",
			TicketTypes: []CreateTicketTypeRequest{
				{Name: "General", Price: ptr(decimal.RequireFromString("25.00")), TotalAvailable: ptr(100)},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(r *CreateEventRequest)
		want    bool
		wantMsg string
	}{
		{
			name:   "valid request",
			mutate: func(r *CreateEventRequest) {},
			want:   true,
		},
		{
			name:   "valid request with times",
			mutate: func(r *CreateEventRequest) { r.Start, r.End, r.SalesStart, r.SalesEnd = &start, &end, &start, &end },
			want:   true,
		},
		{
			name:   "no ticket types",
			mutate: func(r *CreateEventRequest) { r.TicketTypes = nil },
			want:   true,
		},
		{
			name:    "missing name",
			mutate:  func(r *CreateEventRequest) { r.Name = "" },
			wantMsg: "Event name is required",
		},
		{
			name:    "missing venue",
			mutate:  func(r *CreateEventRequest) { r.Venue = "" },
			wantMsg: "Venue is required",
		},
		{
			name:    "unknown status",
			mutate:  func(r *CreateEventRequest) { r.Status = "ARCHIVED" },
			wantMsg: "Status must be one of DRAFT, PUBLISHED, CANCELLED, COMPLETED",
		},
		{
			name:    "end before start",
			mutate:  func(r *CreateEventRequest) { r.Start, r.End = &end, &start },
			wantMsg: "Event end time must be after start time",
		},
		{
			name:    "sales end before sales start",
			mutate:  func(r *CreateEventRequest) { r.SalesStart, r.SalesEnd = &end, &start },
			wantMsg: "Sales end time must be after sales start time",
		},
		{
			name:    "missing price",
			mutate:  func(r *CreateEventRequest) { r.TicketTypes[0].Price = nil },
			wantMsg: "Ticket type price is required",
		},
		{
			name:    "negative price",
			mutate:  func(r *CreateEventRequest) { r.TicketTypes[0].Price = ptr(decimal.NewFromInt(-1)) },
			wantMsg: "Ticket type price cannot be negative",
		},
		{
			name:    "negative total available",
			mutate:  func(r *CreateEventRequest) { r.TicketTypes[0].TotalAvailable = ptr(-5) },
			wantMsg: "Ticket type total available cannot be negative",
		},
		{
			name:    "price with three decimal places",
			mutate:  func(r *CreateEventRequest) { r.TicketTypes[0].Price = ptr(decimal.RequireFromString("25.005")) },
			wantMsg: "Ticket type price must have at most 2 decimal places",
		},
		{
			name:   "price with trailing zeros",
			mutate: func(r *CreateEventRequest) { r.TicketTypes[0].Price = ptr(decimal.RequireFromString("25.5000")) },
			want:   true,
		},
		{
			name:   "largest price",
			mutate: func(r *CreateEventRequest) { r.TicketTypes[0].Price = ptr(decimal.RequireFromString("9999999999.99")) },
			want:   true,
		},
		{
			name:    "price too large",
			mutate:  func(r *CreateEventRequest) { r.TicketTypes[0].Price = ptr(decimal.RequireFromString("100000000000")) },
			wantMsg: "Ticket type price cannot exceed 9999999999.99",
		},
		{
			name:    "total available too large",
			mutate:  func(r *CreateEventRequest) { r.TicketTypes[0].TotalAvailable = ptr(3000000000) },
			wantMsg: "Ticket type total available is too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			got, msg := req.Validate()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestCreateEventRequest_DecodesCamelCase(t *testing.T) {
	body := `{
		"name": "Launch Party",
		"start": "2025-06-01T18:00:00Z",
		"end": "2025-06-01T23:00:00Z",
		"venue": "Hall A",
		"salesStart": "2025-05-01T00:00:00Z",
		"salesEnd": "2025-05-31T23:59:00Z",
		"status": "DRAFT",
		"ticketTypes": [{"name": "General", "description": "GA", "price": 25.00, "totalAvailable": 100}]
	}`

	var req CreateEventRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	require.NotNil(t, req.SalesEnd)
	assert.Equal(t, time.Date(2025, 5, 31, 23, 59, 0, 0, time.UTC), req.SalesEnd.UTC())
	require.Len(t, req.TicketTypes, 1)
	assert.True(t, decimal.NewFromInt(25).Equal(*req.TicketTypes[0].Price))
	assert.Equal(t, 100, *req.TicketTypes[0].TotalAvailable)
}

func TestCreateEventRequest_ToDomain(t *testing.T) {
	start := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	req := CreateEventRequest{
		Name:   "Launch Party",
		Start:  &start,
		Venue:  "Hall A",
		Status: "PUBLISHED",
		TicketTypes: []CreateTicketTypeRequest{
			{Name: "General", Description: "GA", Price: ptr(decimal.RequireFromString("25.00")), TotalAvailable: ptr(100)},
			{Name: "VIP", Description: "Front row", Price: ptr(decimal.RequireFromString("99.50"))},
		},
	}

	got := req.ToDomain()

	assert.Equal(t, "Launch Party", got.Name)
	assert.Equal(t, &start, got.Start)
	assert.Nil(t, got.End)
	assert.Equal(t, domain.EventStatusPublished, got.Status)
	require.Len(t, got.TicketTypes, 2)
	assert.Equal(t, "General", got.TicketTypes[0].Name)
	assert.Equal(t, "GA", got.TicketTypes[0].Description)
	assert.Equal(t, "25", got.TicketTypes[0].Price.String())
	assert.Equal(t, 100, *got.TicketTypes[0].TotalAvailable)
	assert.Equal(t, "VIP", got.TicketTypes[1].Name)
	assert.Nil(t, got.TicketTypes[1].TotalAvailable)
}

func TestCreateEventRequest_ToDomainEmptyTicketTypes(t *testing.T) {
	req := CreateEventRequest{Name: "Solo", Venue: "Hall B", Status: "DRAFT"}

	got := req.ToDomain()

	assert.NotNil(t, got.TicketTypes)
	assert.Empty(t, got.TicketTypes)
}

func TestNewCreateEventResponse(t *testing.T) {
	organizerID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	eventID := uuid.New()
	ticketID := uuid.New()
	created := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	start := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	event := &domain.Event{
		ID:        eventID,
		Name:      "Launch Party",
		Start:     &start,
		Venue:     "Hall A",
		Status:    domain.EventStatusDraft,
		Organizer: &domain.User{ID: organizerID},
		CreatedAt: created,
		UpdatedAt: created,
	}
	event.TicketTypes = []*domain.TicketType{{
		ID:             ticketID,
		Name:           "General",
		Description:    "GA",
		Price:          decimal.NewFromInt(25),
		TotalAvailable: ptr(100),
		Event:          event,
		CreatedAt:      created,
		UpdatedAt:      created,
	}}

	resp := NewCreateEventResponse(event)

	assert.Equal(t, eventID.String(), resp.ID)
	assert.Equal(t, organizerID.String(), resp.OrganizerID)
	assert.Equal(t, "2025-06-01T18:00:00Z", *resp.Start)
	assert.Nil(t, resp.End)
	assert.Equal(t, "DRAFT", resp.Status)
	require.Len(t, resp.TicketTypes, 1)
	assert.Equal(t, ticketID.String(), resp.TicketTypes[0].ID)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"price":25.00`)
	assert.Contains(t, string(raw), `"organizerId":"11111111-1111-1111-1111-111111111111"`)
	assert.NotContains(t, string(raw), `"end"`)
}
