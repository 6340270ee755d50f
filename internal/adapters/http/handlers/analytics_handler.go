package handlers

import (
	"log"

	"psc-chapterhub/internal/core/services"
	"psc-chapterhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler handles view counter endpoints
type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// TrackViewRequest represents a view tracking request body
type TrackViewRequest struct {
	IsUnique bool `json:"is_unique"`
}

// TrackView handles recording a page view from the public site.
// A failed write never surfaces as an error to the visitor.
// @Summary Track page view
// @Description Record a page view against the site counters
// @Tags Public
// @Accept json
// @Produce json
// @Param body body TrackViewRequest false "View data"
// @Success 200 {object} response.Response
// @Router /public/views/track [post]
func (h *AnalyticsHandler) TrackView(c *fiber.Ctx) error {
	var req TrackViewRequest
	// Tolerate an empty body; it counts as a non-unique view
	_ = c.BodyParser(&req)

	if err := h.analyticsService.TrackView(c.Context(), req.IsUnique); err != nil {
		log.Printf("⚠️ Failed to track view: %v", err)
	}

	return response.Success(c, "View recorded", nil)
}

// GetSnapshot handles the public counter snapshot
// @Summary Get view counter snapshot
// @Description Get the running total views and unique visitors
// @Tags Public
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /public/views [get]
func (h *AnalyticsHandler) GetSnapshot(c *fiber.Ctx) error {
	snap, err := h.analyticsService.GetSnapshot(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to get view counter")
	}
	return response.Success(c, "View counter retrieved successfully", snap)
}

// GetStats handles the admin counter view with the daily histogram
// @Summary Get view statistics
// @Description Get totals plus the retained daily view histogram
// @Tags Analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /analytics/views [get]
func (h *AnalyticsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.analyticsService.GetStats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to get view statistics")
	}
	return response.Success(c, "View statistics retrieved successfully", stats)
}
