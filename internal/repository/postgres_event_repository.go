package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventdesk/ticket-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresEventRepository implements EventRepository using PostgreSQL
type PostgresEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEventRepository creates a new PostgresEventRepository
func NewPostgresEventRepository(pool *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{pool: pool}
}

type generated struct {
	id        uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

// Create inserts the event row and one row per ticket type in a single transaction.
// The aggregate is only updated with generated values after commit.
func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if event.Organizer == nil {
		return errors.New("create event: organizer is required")
	}

	var eventRow generated
	ticketRows := make([]generated, len(event.TicketTypes))

	err := withTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		eventQuery := `
			INSERT INTO events (
				organizer_id, name, start_at, end_at, venue,
				sales_start_at, sales_end_at, status
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, created_at, updated_at
		`
		if err := tx.QueryRow(ctx, eventQuery,
			event.Organizer.ID,
			event.Name,
			event.Start,
			event.End,
			event.Venue,
			event.SalesStart,
			event.SalesEnd,
			string(event.Status),
		).Scan(&eventRow.id, &eventRow.createdAt, &eventRow.updatedAt); err != nil {
			return fmt.Errorf("insert event: %w", err)
		}

		ticketQuery := `
			INSERT INTO ticket_types (
				event_id, position, name, description, price, total_available
			) VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, updated_at
		`
		for i, tt := range event.TicketTypes {
			var price pgtype.Numeric
			if err := price.Scan(tt.Price.String()); err != nil {
				return fmt.Errorf("encode price of ticket type %q: %w", tt.Name, err)
			}

			if err := tx.QueryRow(ctx, ticketQuery,
				eventRow.id,
				i,
				tt.Name,
				tt.Description,
				price,
				tt.TotalAvailable,
			).Scan(&ticketRows[i].id, &ticketRows[i].createdAt, &ticketRows[i].updatedAt); err != nil {
				return fmt.Errorf("insert ticket type %q: %w", tt.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	event.ID = eventRow.id
	event.CreatedAt = eventRow.createdAt
	event.UpdatedAt = eventRow.updatedAt
	for i, tt := range event.TicketTypes {
		tt.ID = ticketRows[i].id
		tt.CreatedAt = ticketRows[i].createdAt
		tt.UpdatedAt = ticketRows[i].updatedAt
		tt.Event = event
	}
	return nil
}
