package handlers

import (
	"errors"

	"psc-chapterhub/internal/core/services"
	"psc-chapterhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// NewsletterHandler handles newsletter endpoints
type NewsletterHandler struct {
	newsletterService *services.NewsletterService
}

// NewNewsletterHandler creates a new newsletter handler
func NewNewsletterHandler(newsletterService *services.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

// ListNewsletters handles listing newsletter issues
// @Summary List newsletters
// @Description List newsletter issues with pagination, optionally by status
// @Tags Newsletters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (DRAFT, SCHEDULED, PUBLISHED)"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /newsletters [get]
func (h *NewsletterHandler) ListNewsletters(c *fiber.Ctx) error {
	issues, total, err := h.newsletterService.List(
		c.Context(),
		c.Query("status"),
		c.QueryInt("page", 1),
		c.QueryInt("limit", 10),
	)
	if err != nil {
		return response.InternalServerError(c, "Failed to list newsletters")
	}
	return response.Success(c, "Newsletters retrieved successfully", fiber.Map{
		"newsletters": issues,
		"total":       total,
	})
}

// GetNewsletter handles getting a newsletter by ID
// @Summary Get newsletter
// @Description Get a newsletter issue by ID
// @Tags Newsletters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Newsletter ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /newsletters/{id} [get]
func (h *NewsletterHandler) GetNewsletter(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid newsletter ID")
	}

	issue, err := h.newsletterService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNewsletterNotFoundSvc) {
			return response.NotFound(c, "Newsletter not found")
		}
		return response.InternalServerError(c, "Failed to get newsletter")
	}
	return response.Success(c, "Newsletter retrieved successfully", issue)
}

// CreateNewsletter handles newsletter creation
// @Summary Create newsletter
// @Description Create a newsletter issue, optionally scheduled for later publication
// @Tags Newsletters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateNewsletterInput true "Newsletter data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /newsletters [post]
func (h *NewsletterHandler) CreateNewsletter(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.CreateNewsletterInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Title == "" {
		return response.BadRequest(c, "Title is required")
	}

	issue, err := h.newsletterService.Create(c.Context(), userID, &input)
	if err != nil {
		if errors.Is(err, services.ErrScheduleInPast) {
			return response.BadRequest(c, "Scheduled time must be in the future")
		}
		return response.InternalServerError(c, "Failed to create newsletter")
	}
	return response.Created(c, "Newsletter created successfully", issue)
}

// UpdateNewsletter handles newsletter updates
// @Summary Update newsletter
// @Description Update a draft or scheduled newsletter issue
// @Tags Newsletters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Newsletter ID"
// @Param body body services.UpdateNewsletterInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /newsletters/{id} [put]
func (h *NewsletterHandler) UpdateNewsletter(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid newsletter ID")
	}

	var input services.UpdateNewsletterInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	issue, err := h.newsletterService.Update(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNewsletterNotFoundSvc):
			return response.NotFound(c, "Newsletter not found")
		case errors.Is(err, services.ErrAlreadyPublished):
			return response.BadRequest(c, "Published newsletters cannot be edited")
		case errors.Is(err, services.ErrScheduleInPast):
			return response.BadRequest(c, "Scheduled time must be in the future")
		default:
			return response.InternalServerError(c, "Failed to update newsletter")
		}
	}
	return response.Success(c, "Newsletter updated successfully", issue)
}

// PublishNewsletter handles immediate publication
// @Summary Publish newsletter
// @Description Immediately publish a draft or scheduled newsletter issue
// @Tags Newsletters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Newsletter ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /newsletters/{id}/publish [post]
func (h *NewsletterHandler) PublishNewsletter(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid newsletter ID")
	}

	issue, err := h.newsletterService.Publish(c.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNewsletterNotFoundSvc):
			return response.NotFound(c, "Newsletter not found")
		case errors.Is(err, services.ErrAlreadyPublished):
			return response.BadRequest(c, "Newsletter already published")
		default:
			return response.InternalServerError(c, "Failed to publish newsletter")
		}
	}
	return response.Success(c, "Newsletter published successfully", issue)
}

// DeleteNewsletter handles newsletter deletion
// @Summary Delete newsletter
// @Description Delete a newsletter issue
// @Tags Newsletters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Newsletter ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /newsletters/{id} [delete]
func (h *NewsletterHandler) DeleteNewsletter(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid newsletter ID")
	}

	if err := h.newsletterService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrNewsletterNotFoundSvc) {
			return response.NotFound(c, "Newsletter not found")
		}
		return response.InternalServerError(c, "Failed to delete newsletter")
	}
	return response.Success(c, "Newsletter deleted successfully", nil)
}

// ListPublicNewsletters handles the public newsletter archive
// @Summary List published newsletters
// @Description List published newsletter issues for the public site
// @Tags Public
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /public/newsletters [get]
func (h *NewsletterHandler) ListPublicNewsletters(c *fiber.Ctx) error {
	issues, total, err := h.newsletterService.List(
		c.Context(),
		"PUBLISHED",
		c.QueryInt("page", 1),
		c.QueryInt("limit", 10),
	)
	if err != nil {
		return response.InternalServerError(c, "Failed to list newsletters")
	}
	return response.Success(c, "Newsletters retrieved successfully", fiber.Map{
		"newsletters": issues,
		"total":       total,
	})
}
