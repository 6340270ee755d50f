package handlers

import (
	"errors"

	"psc-chapterhub/internal/adapters/persistence/models"
	"psc-chapterhub/internal/adapters/persistence/repositories"
	"psc-chapterhub/internal/pkg/pagination"
	"psc-chapterhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MemberHandler handles committee/member directory endpoints
type MemberHandler struct {
	memberRepo *repositories.MemberProfileRepository
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberRepo *repositories.MemberProfileRepository) *MemberHandler {
	return &MemberHandler{memberRepo: memberRepo}
}

// ListPublicMembers handles the public member directory
// @Summary List members
// @Description List active committee/chapter members
// @Tags Public
// @Accept json
// @Produce json
// @Param committee query string false "Filter by committee"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /public/members [get]
func (h *MemberHandler) ListPublicMembers(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	profiles, total, err := h.memberRepo.List(c.Context(), c.Query("committee"), true, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list members")
	}

	return response.Success(c, "Members retrieved successfully",
		pagination.NewResponse(profiles, params, total))
}

// ListMembers handles the admin member listing (includes inactive)
// @Summary List all members
// @Description List all member profiles including inactive
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param committee query string false "Filter by committee"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /members [get]
func (h *MemberHandler) ListMembers(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	profiles, total, err := h.memberRepo.List(c.Context(), c.Query("committee"), false, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list members")
	}

	return response.Success(c, "Members retrieved successfully",
		pagination.NewResponse(profiles, params, total))
}

// GetMember handles getting a member profile by ID
// @Summary Get member
// @Description Get a member profile by ID
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id} [get]
func (h *MemberHandler) GetMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid member ID")
	}

	profile, err := h.memberRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to get member")
	}
	return response.Success(c, "Member retrieved successfully", profile)
}

// MemberRequest represents a member profile create/update body
type MemberRequest struct {
	Name      string `json:"name"`
	Position  string `json:"position"`
	Committee string `json:"committee"`
	Branch    string `json:"branch"`
	Email     string `json:"email"`
	Bio       string `json:"bio"`
	PhotoURL  string `json:"photo_url"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

// CreateMember handles member profile creation
// @Summary Create member
// @Description Create a new member profile
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body MemberRequest true "Member data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /members [post]
func (h *MemberHandler) CreateMember(c *fiber.Ctx) error {
	var req MemberRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}

	profile := &models.MemberProfile{
		Name:      req.Name,
		Position:  req.Position,
		Committee: req.Committee,
		Branch:    req.Branch,
		Email:     req.Email,
		Bio:       req.Bio,
		PhotoURL:  req.PhotoURL,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if req.IsActive != nil {
		profile.IsActive = *req.IsActive
	}

	if err := h.memberRepo.Create(c.Context(), profile); err != nil {
		return response.InternalServerError(c, "Failed to create member")
	}
	return response.Created(c, "Member created successfully", profile)
}

// UpdateMember handles member profile updates
// @Summary Update member
// @Description Update a member profile
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param body body MemberRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id} [put]
func (h *MemberHandler) UpdateMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid member ID")
	}

	profile, err := h.memberRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to get member")
	}

	var req MemberRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Name != "" {
		profile.Name = req.Name
	}
	profile.Position = req.Position
	profile.Committee = req.Committee
	profile.Branch = req.Branch
	profile.Email = req.Email
	profile.Bio = req.Bio
	profile.PhotoURL = req.PhotoURL
	profile.SortOrder = req.SortOrder
	if req.IsActive != nil {
		profile.IsActive = *req.IsActive
	}

	if err := h.memberRepo.Update(c.Context(), profile); err != nil {
		return response.InternalServerError(c, "Failed to update member")
	}
	return response.Success(c, "Member updated successfully", profile)
}

// DeleteMember handles member profile deletion
// @Summary Delete member
// @Description Delete a member profile
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid member ID")
	}

	if _, err := h.memberRepo.GetByID(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to get member")
	}

	if err := h.memberRepo.Delete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, "Failed to delete member")
	}
	return response.Success(c, "Member deleted successfully", nil)
}
