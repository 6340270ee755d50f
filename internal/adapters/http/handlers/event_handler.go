package handlers

import (
	"errors"

	"psc-chapterhub/internal/adapters/http/middleware"
	"psc-chapterhub/internal/core/services"
	"psc-chapterhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EventHandler handles event endpoints
type EventHandler struct {
	eventService *services.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// ListEvents handles listing events (admin view, includes drafts)
// @Summary List events
// @Description List all events with pagination
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param branch query string false "Filter by branch"
// @Success 200 {object} response.Response
// @Router /events [get]
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	result, err := h.eventService.List(
		c.Context(),
		c.Query("branch"),
		false,
		c.QueryInt("page", 1),
		c.QueryInt("limit", 10),
	)
	if err != nil {
		return response.InternalServerError(c, "Failed to list events")
	}
	return response.Success(c, "Events retrieved successfully", result)
}

// ListPublicEvents handles the public event listing (published only)
// @Summary List published events
// @Description List published events for the public site
// @Tags Public
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param branch query string false "Filter by branch"
// @Success 200 {object} response.Response
// @Router /public/events [get]
func (h *EventHandler) ListPublicEvents(c *fiber.Ctx) error {
	result, err := h.eventService.List(
		c.Context(),
		c.Query("branch"),
		true,
		c.QueryInt("page", 1),
		c.QueryInt("limit", 10),
	)
	if err != nil {
		return response.InternalServerError(c, "Failed to list events")
	}
	return response.Success(c, "Events retrieved successfully", result)
}

// ListUpcomingEvents handles the public upcoming-events listing
// @Summary List upcoming events
// @Description List published upcoming events, soonest first
// @Tags Public
// @Accept json
// @Produce json
// @Param limit query int false "Max items"
// @Success 200 {object} response.Response
// @Router /public/events/upcoming [get]
func (h *EventHandler) ListUpcomingEvents(c *fiber.Ctx) error {
	events, err := h.eventService.ListUpcoming(c.Context(), c.QueryInt("limit", 10))
	if err != nil {
		return response.InternalServerError(c, "Failed to list upcoming events")
	}
	return response.Success(c, "Upcoming events retrieved successfully", events)
}

// GetEvent handles getting an event by ID
// @Summary Get event
// @Description Get an event by ID
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid event ID")
	}

	event, err := h.eventService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrEventNotFoundSvc) {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to get event")
	}
	return response.Success(c, "Event retrieved successfully", event)
}

// GetPublicEvent handles getting a published event by slug
// @Summary Get published event
// @Description Get a published event by slug
// @Tags Public
// @Accept json
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /public/events/{slug} [get]
func (h *EventHandler) GetPublicEvent(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return response.BadRequest(c, "Invalid event slug")
	}

	event, err := h.eventService.GetBySlug(c.Context(), slug)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFoundSvc) {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to get event")
	}
	return response.Success(c, "Event retrieved successfully", event)
}

// CreateEvent handles event creation
// @Summary Create event
// @Description Create a new event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateEventInput true "Event data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var input services.CreateEventInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.Title == "" {
		return response.BadRequest(c, "Title is required")
	}
	if input.StartsAt.IsZero() {
		return response.BadRequest(c, "Start time is required")
	}

	event, err := h.eventService.Create(c.Context(), middleware.ActorFromContext(c), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEventTiming):
			return response.BadRequest(c, "Event end must not precede start")
		case errors.Is(err, services.ErrSlugAlreadyExists):
			return response.Conflict(c, "An event with this slug already exists")
		default:
			return response.InternalServerError(c, "Failed to create event")
		}
	}

	return response.Created(c, "Event created successfully", event)
}

// UpdateEvent handles event updates
// @Summary Update event
// @Description Update an existing event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param body body services.UpdateEventInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id} [put]
func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid event ID")
	}

	var input services.UpdateEventInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	event, err := h.eventService.Update(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFoundSvc):
			return response.NotFound(c, "Event not found")
		case errors.Is(err, services.ErrInvalidEventTiming):
			return response.BadRequest(c, "Event end must not precede start")
		default:
			return response.InternalServerError(c, "Failed to update event")
		}
	}

	return response.Success(c, "Event updated successfully", event)
}

// DeleteEvent handles event deletion
// @Summary Delete event
// @Description Delete an event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid event ID")
	}

	if err := h.eventService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrEventNotFoundSvc) {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to delete event")
	}

	return response.Success(c, "Event deleted successfully", nil)
}
