package handlers

import (
	"errors"

	"psc-chapterhub/internal/adapters/persistence/models"
	"psc-chapterhub/internal/adapters/persistence/repositories"
	"psc-chapterhub/internal/core/services"
	"psc-chapterhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CatalogHandler handles master data endpoints: branches, awards, carousel
// slides and site settings
type CatalogHandler struct {
	branchRepo   *repositories.BranchRepository
	awardRepo    *repositories.AwardRepository
	carouselRepo *repositories.CarouselRepository
	settingRepo  *repositories.SettingRepository
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(
	branchRepo *repositories.BranchRepository,
	awardRepo *repositories.AwardRepository,
	carouselRepo *repositories.CarouselRepository,
	settingRepo *repositories.SettingRepository,
) *CatalogHandler {
	return &CatalogHandler{
		branchRepo:   branchRepo,
		awardRepo:    awardRepo,
		carouselRepo: carouselRepo,
		settingRepo:  settingRepo,
	}
}

// ============================================================
// Branches
// ============================================================

// BranchRequest represents a branch create/update body
type BranchRequest struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Region      string `json:"region"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// ListBranches handles listing active branches (public)
// @Summary List branches
// @Description List active regional branches
// @Tags Public
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /public/branches [get]
func (h *CatalogHandler) ListBranches(c *fiber.Ctx) error {
	branches, err := h.branchRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list branches")
	}
	return response.Success(c, "Branches retrieved successfully", branches)
}

// ListAllBranches handles listing all branches (admin)
// @Summary List all branches
// @Description List all branches including inactive
// @Tags Branches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /branches [get]
func (h *CatalogHandler) ListAllBranches(c *fiber.Ctx) error {
	branches, err := h.branchRepo.ListAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list branches")
	}
	return response.Success(c, "Branches retrieved successfully", branches)
}

// CreateBranch handles branch creation
// @Summary Create branch
// @Description Create a new regional branch
// @Tags Branches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BranchRequest true "Branch data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /branches [post]
func (h *CatalogHandler) CreateBranch(c *fiber.Ctx) error {
	var req BranchRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}

	slug := req.Slug
	if slug == "" {
		slug = services.Slugify(req.Name)
	}
	if _, err := h.branchRepo.GetBySlug(c.Context(), slug); err == nil {
		return response.Conflict(c, "A branch with this slug already exists")
	}

	branch := &models.Branch{
		Slug:        slug,
		Name:        req.Name,
		Region:      req.Region,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		branch.IsActive = *req.IsActive
	}

	if err := h.branchRepo.Create(c.Context(), branch); err != nil {
		return response.InternalServerError(c, "Failed to create branch")
	}
	return response.Created(c, "Branch created successfully", branch)
}

// UpdateBranch handles branch updates
// @Summary Update branch
// @Description Update a regional branch
// @Tags Branches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Branch ID"
// @Param body body BranchRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /branches/{id} [put]
func (h *CatalogHandler) UpdateBranch(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid branch ID")
	}

	branch, err := h.branchRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Branch not found")
		}
		return response.InternalServerError(c, "Failed to get branch")
	}

	var req BranchRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Name != "" {
		branch.Name = req.Name
	}
	if req.Region != "" {
		branch.Region = req.Region
	}
	if req.Description != "" {
		branch.Description = req.Description
	}
	if req.IsActive != nil {
		branch.IsActive = *req.IsActive
	}

	if err := h.branchRepo.Update(c.Context(), branch); err != nil {
		return response.InternalServerError(c, "Failed to update branch")
	}
	return response.Success(c, "Branch updated successfully", branch)
}

// DeleteBranch handles branch deletion
// @Summary Delete branch
// @Description Delete a regional branch
// @Tags Branches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Branch ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /branches/{id} [delete]
func (h *CatalogHandler) DeleteBranch(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid branch ID")
	}

	if _, err := h.branchRepo.GetByID(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Branch not found")
		}
		return response.InternalServerError(c, "Failed to get branch")
	}

	if err := h.branchRepo.Delete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, "Failed to delete branch")
	}
	return response.Success(c, "Branch deleted successfully", nil)
}

// ============================================================
// Awards
// ============================================================

// AwardRequest represents an award create/update body
type AwardRequest struct {
	Title       string `json:"title"`
	Recipient   string `json:"recipient"`
	Year        int    `json:"year"`
	Description string `json:"description"`
	Branch      string `json:"branch"`
}

// ListAwards handles listing awards
// @Summary List awards
// @Description List chapter awards, newest year first
// @Tags Public
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /public/awards [get]
func (h *CatalogHandler) ListAwards(c *fiber.Ctx) error {
	awards, err := h.awardRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list awards")
	}
	return response.Success(c, "Awards retrieved successfully", awards)
}

// CreateAward handles award creation
// @Summary Create award
// @Description Create a new award entry
// @Tags Awards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AwardRequest true "Award data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /awards [post]
func (h *CatalogHandler) CreateAward(c *fiber.Ctx) error {
	var req AwardRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Title == "" || req.Recipient == "" {
		return response.BadRequest(c, "Title and recipient are required")
	}

	award := &models.Award{
		Title:       req.Title,
		Recipient:   req.Recipient,
		Year:        req.Year,
		Description: req.Description,
		Branch:      req.Branch,
	}
	if err := h.awardRepo.Create(c.Context(), award); err != nil {
		return response.InternalServerError(c, "Failed to create award")
	}
	return response.Created(c, "Award created successfully", award)
}

// UpdateAward handles award updates
// @Summary Update award
// @Description Update an award entry
// @Tags Awards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Award ID"
// @Param body body AwardRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /awards/{id} [put]
func (h *CatalogHandler) UpdateAward(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid award ID")
	}

	award, err := h.awardRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Award not found")
		}
		return response.InternalServerError(c, "Failed to get award")
	}

	var req AwardRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Title != "" {
		award.Title = req.Title
	}
	if req.Recipient != "" {
		award.Recipient = req.Recipient
	}
	if req.Year != 0 {
		award.Year = req.Year
	}
	if req.Description != "" {
		award.Description = req.Description
	}
	if req.Branch != "" {
		award.Branch = req.Branch
	}

	if err := h.awardRepo.Update(c.Context(), award); err != nil {
		return response.InternalServerError(c, "Failed to update award")
	}
	return response.Success(c, "Award updated successfully", award)
}

// DeleteAward handles award deletion
// @Summary Delete award
// @Description Delete an award entry
// @Tags Awards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Award ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /awards/{id} [delete]
func (h *CatalogHandler) DeleteAward(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid award ID")
	}

	if _, err := h.awardRepo.GetByID(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Award not found")
		}
		return response.InternalServerError(c, "Failed to get award")
	}

	if err := h.awardRepo.Delete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, "Failed to delete award")
	}
	return response.Success(c, "Award deleted successfully", nil)
}

// ============================================================
// Carousel
// ============================================================

// SlideRequest represents a carousel slide create/update body
type SlideRequest struct {
	Title     string `json:"title"`
	Caption   string `json:"caption"`
	ImageURL  string `json:"image_url"`
	LinkURL   string `json:"link_url"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

// ListSlides handles the public carousel listing
// @Summary List carousel slides
// @Description List active homepage carousel slides in display order
// @Tags Public
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /public/carousel [get]
func (h *CatalogHandler) ListSlides(c *fiber.Ctx) error {
	slides, err := h.carouselRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list slides")
	}
	return response.Success(c, "Slides retrieved successfully", slides)
}

// ListAllSlides handles the admin carousel listing
// @Summary List all carousel slides
// @Description List all carousel slides including inactive
// @Tags Carousel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /carousel [get]
func (h *CatalogHandler) ListAllSlides(c *fiber.Ctx) error {
	slides, err := h.carouselRepo.ListAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list slides")
	}
	return response.Success(c, "Slides retrieved successfully", slides)
}

// CreateSlide handles carousel slide creation
// @Summary Create carousel slide
// @Description Create a new homepage carousel slide
// @Tags Carousel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SlideRequest true "Slide data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /carousel [post]
func (h *CatalogHandler) CreateSlide(c *fiber.Ctx) error {
	var req SlideRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.ImageURL == "" {
		return response.BadRequest(c, "Image URL is required")
	}

	slide := &models.CarouselSlide{
		Title:     req.Title,
		Caption:   req.Caption,
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if req.IsActive != nil {
		slide.IsActive = *req.IsActive
	}

	if err := h.carouselRepo.Create(c.Context(), slide); err != nil {
		return response.InternalServerError(c, "Failed to create slide")
	}
	return response.Created(c, "Slide created successfully", slide)
}

// UpdateSlide handles carousel slide updates
// @Summary Update carousel slide
// @Description Update a homepage carousel slide
// @Tags Carousel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slide ID"
// @Param body body SlideRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /carousel/{id} [put]
func (h *CatalogHandler) UpdateSlide(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid slide ID")
	}

	slide, err := h.carouselRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Slide not found")
		}
		return response.InternalServerError(c, "Failed to get slide")
	}

	var req SlideRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Title != "" {
		slide.Title = req.Title
	}
	if req.Caption != "" {
		slide.Caption = req.Caption
	}
	if req.ImageURL != "" {
		slide.ImageURL = req.ImageURL
	}
	if req.LinkURL != "" {
		slide.LinkURL = req.LinkURL
	}
	slide.SortOrder = req.SortOrder
	if req.IsActive != nil {
		slide.IsActive = *req.IsActive
	}

	if err := h.carouselRepo.Update(c.Context(), slide); err != nil {
		return response.InternalServerError(c, "Failed to update slide")
	}
	return response.Success(c, "Slide updated successfully", slide)
}

// DeleteSlide handles carousel slide deletion
// @Summary Delete carousel slide
// @Description Delete a homepage carousel slide
// @Tags Carousel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slide ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /carousel/{id} [delete]
func (h *CatalogHandler) DeleteSlide(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid slide ID")
	}

	if _, err := h.carouselRepo.GetByID(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Slide not found")
		}
		return response.InternalServerError(c, "Failed to get slide")
	}

	if err := h.carouselRepo.Delete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, "Failed to delete slide")
	}
	return response.Success(c, "Slide deleted successfully", nil)
}

// ============================================================
// Settings
// ============================================================

// SettingRequest represents a setting update body
type SettingRequest struct {
	Value string `json:"value"`
}

// ListSettings handles listing all site settings
// @Summary List settings
// @Description List all site settings
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /settings [get]
func (h *CatalogHandler) ListSettings(c *fiber.Ctx) error {
	settings, err := h.settingRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list settings")
	}
	return response.Success(c, "Settings retrieved successfully", settings)
}

// GetSetting handles getting a setting by key
// @Summary Get setting
// @Description Get a site setting by key
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Success 200 {object} response.Response
// @Router /settings/{key} [get]
func (h *CatalogHandler) GetSetting(c *fiber.Ctx) error {
	key := c.Params("key")
	value, err := h.settingRepo.Get(c.Context(), key)
	if err != nil {
		return response.InternalServerError(c, "Failed to get setting")
	}
	return response.Success(c, "Setting retrieved successfully", fiber.Map{
		"key":   key,
		"value": value,
	})
}

// SetSetting handles upserting a setting
// @Summary Set setting
// @Description Create or update a site setting
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Param body body SettingRequest true "Setting value"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /settings/{key} [put]
func (h *CatalogHandler) SetSetting(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return response.BadRequest(c, "Setting key is required")
	}

	var req SettingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.settingRepo.Set(c.Context(), key, req.Value); err != nil {
		return response.InternalServerError(c, "Failed to set setting")
	}
	return response.Success(c, "Setting saved successfully", fiber.Map{
		"key":   key,
		"value": req.Value,
	})
}
