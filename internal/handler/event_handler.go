package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/eventdesk/ticket-api/internal/domain"
	"github.com/eventdesk/ticket-api/internal/dto"
	"github.com/eventdesk/ticket-api/internal/service"
	"github.com/eventdesk/ticket-api/pkg/logger"
	"github.com/eventdesk/ticket-api/pkg/middleware"
	"github.com/eventdesk/ticket-api/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// Create handles POST /events - creates an event owned by the authenticated organizer
func (h *EventHandler) Create(c *gin.Context) {
	subject, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("User ID not found in token"))
		return
	}
	organizerID, err := uuid.Parse(subject)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Token subject is not a valid user ID"))
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, response.ErrorWithDetails(response.ErrCodeValidation, "Request validation failed", fieldErrors(verrs)))
			return
		}
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), organizerID, req.ToDomain())
	if err != nil {
		var notFound *domain.OrganizerNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, response.Error(response.ErrCodeOrganizerNotFound, notFound.Error()))
			return
		}
		logger.Get().ErrorContext(c.Request.Context(), "Failed to create event",
			zap.String("organizer_id", organizerID.String()),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to create event"))
		return
	}

	c.JSON(http.StatusCreated, response.Success(dto.NewCreateEventResponse(event)))
}

// fieldErrors maps validator failures to field -> rule using the JSON path
func fieldErrors(verrs validator.ValidationErrors) map[string]string {
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[jsonPath(fe.Namespace())] = fe.Tag()
	}
	return details
}

// jsonPath turns "CreateEventRequest.TicketTypes[0].Price" into "ticketTypes[0].price"
func jsonPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToLower(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, ".")
}
