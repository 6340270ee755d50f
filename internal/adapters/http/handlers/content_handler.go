package handlers

import (
	"errors"
	"time"

	"psc-chapterhub/internal/adapters/http/middleware"
	"psc-chapterhub/internal/adapters/persistence/models"
	"psc-chapterhub/internal/adapters/persistence/repositories"
	"psc-chapterhub/internal/core/services"
	"psc-chapterhub/internal/pkg/pagination"
	"psc-chapterhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ContentHandler handles news posts and research listings
type ContentHandler struct {
	newsRepo     *repositories.NewsRepository
	researchRepo *repositories.ResearchRepository
}

// NewContentHandler creates a new content handler
func NewContentHandler(newsRepo *repositories.NewsRepository, researchRepo *repositories.ResearchRepository) *ContentHandler {
	return &ContentHandler{
		newsRepo:     newsRepo,
		researchRepo: researchRepo,
	}
}

// ============================================================
// News Posts
// ============================================================

// NewsRequest represents a news post create/update body
type NewsRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Summary     string `json:"summary"`
	Body        string `json:"body"`
	Branch      string `json:"branch"`
	IsPublished *bool  `json:"is_published"`
}

// ListNews handles the admin news listing (includes drafts)
// @Summary List news posts
// @Description List all news posts with pagination
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /news [get]
func (h *ContentHandler) ListNews(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	posts, total, err := h.newsRepo.List(c.Context(), false, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list news")
	}
	return response.Success(c, "News retrieved successfully",
		pagination.NewResponse(posts, params, total))
}

// ListPublicNews handles the public news listing (published only)
// @Summary List published news
// @Description List published news posts for the public site
// @Tags Public
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /public/news [get]
func (h *ContentHandler) ListPublicNews(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	posts, total, err := h.newsRepo.List(c.Context(), true, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list news")
	}
	return response.Success(c, "News retrieved successfully",
		pagination.NewResponse(posts, params, total))
}

// GetPublicNews handles getting a published news post by slug
// @Summary Get published news post
// @Description Get a published news post by slug
// @Tags Public
// @Accept json
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /public/news/{slug} [get]
func (h *ContentHandler) GetPublicNews(c *fiber.Ctx) error {
	post, err := h.newsRepo.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil || !post.IsPublished {
		return response.NotFound(c, "News post not found")
	}
	return response.Success(c, "News post retrieved successfully", post)
}

// GetNews handles getting a news post by ID
// @Summary Get news post
// @Description Get a news post by ID
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /news/{id} [get]
func (h *ContentHandler) GetNews(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid post ID")
	}

	post, err := h.newsRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "News post not found")
		}
		return response.InternalServerError(c, "Failed to get news post")
	}
	return response.Success(c, "News post retrieved successfully", post)
}

// CreateNews handles news post creation
// @Summary Create news post
// @Description Create a new news post
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body NewsRequest true "Post data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /news [post]
func (h *ContentHandler) CreateNews(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)
	if actor == nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req NewsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Title == "" {
		return response.BadRequest(c, "Title is required")
	}

	slug := req.Slug
	if slug == "" {
		slug = services.Slugify(req.Title)
	}
	exists, err := h.newsRepo.ExistsBySlug(c.Context(), slug)
	if err != nil {
		return response.InternalServerError(c, "Failed to create news post")
	}
	if exists {
		return response.Conflict(c, "A post with this slug already exists")
	}

	post := &models.NewsPost{
		Title:     req.Title,
		Slug:      slug,
		Summary:   req.Summary,
		Body:      req.Body,
		Branch:    req.Branch,
		CreatedBy: actor.ID,
	}
	if req.IsPublished != nil && *req.IsPublished {
		post.IsPublished = true
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := h.newsRepo.Create(c.Context(), post); err != nil {
		return response.InternalServerError(c, "Failed to create news post")
	}
	return response.Created(c, "News post created successfully", post)
}

// UpdateNews handles news post updates
// @Summary Update news post
// @Description Update an existing news post
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param body body NewsRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /news/{id} [put]
func (h *ContentHandler) UpdateNews(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid post ID")
	}

	post, err := h.newsRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "News post not found")
		}
		return response.InternalServerError(c, "Failed to get news post")
	}

	var req NewsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Summary != "" {
		post.Summary = req.Summary
	}
	if req.Body != "" {
		post.Body = req.Body
	}
	if req.Branch != "" {
		post.Branch = req.Branch
	}
	if req.IsPublished != nil {
		post.IsPublished = *req.IsPublished
		if *req.IsPublished && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
	}

	if err := h.newsRepo.Update(c.Context(), post); err != nil {
		return response.InternalServerError(c, "Failed to update news post")
	}
	return response.Success(c, "News post updated successfully", post)
}

// DeleteNews handles news post deletion
// @Summary Delete news post
// @Description Delete a news post
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /news/{id} [delete]
func (h *ContentHandler) DeleteNews(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid post ID")
	}

	if _, err := h.newsRepo.GetByID(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "News post not found")
		}
		return response.InternalServerError(c, "Failed to get news post")
	}

	if err := h.newsRepo.Delete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, "Failed to delete news post")
	}
	return response.Success(c, "News post deleted successfully", nil)
}

// ============================================================
// Research Items
// ============================================================

// ResearchRequest represents a research item create/update body
type ResearchRequest struct {
	Title       string `json:"title"`
	Authors     string `json:"authors"`
	Abstract    string `json:"abstract"`
	Link        string `json:"link"`
	Year        int    `json:"year"`
	Branch      string `json:"branch"`
	IsPublished *bool  `json:"is_published"`
}

// ListResearch handles the admin research listing
// @Summary List research items
// @Description List all research items with pagination
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /research [get]
func (h *ContentHandler) ListResearch(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	items, total, err := h.researchRepo.List(c.Context(), false, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list research")
	}
	return response.Success(c, "Research retrieved successfully",
		pagination.NewResponse(items, params, total))
}

// ListPublicResearch handles the public research listing
// @Summary List published research
// @Description List published research items for the public site
// @Tags Public
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /public/research [get]
func (h *ContentHandler) ListPublicResearch(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	items, total, err := h.researchRepo.List(c.Context(), true, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list research")
	}
	return response.Success(c, "Research retrieved successfully",
		pagination.NewResponse(items, params, total))
}

// CreateResearch handles research item creation
// @Summary Create research item
// @Description Create a new research item
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ResearchRequest true "Research data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /research [post]
func (h *ContentHandler) CreateResearch(c *fiber.Ctx) error {
	var req ResearchRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Title == "" {
		return response.BadRequest(c, "Title is required")
	}

	item := &models.ResearchItem{
		Title:    req.Title,
		Authors:  req.Authors,
		Abstract: req.Abstract,
		Link:     req.Link,
		Year:     req.Year,
		Branch:   req.Branch,
	}
	if req.IsPublished != nil {
		item.IsPublished = *req.IsPublished
	}

	if err := h.researchRepo.Create(c.Context(), item); err != nil {
		return response.InternalServerError(c, "Failed to create research item")
	}
	return response.Created(c, "Research item created successfully", item)
}

// UpdateResearch handles research item updates
// @Summary Update research item
// @Description Update an existing research item
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Research ID"
// @Param body body ResearchRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /research/{id} [put]
func (h *ContentHandler) UpdateResearch(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid research ID")
	}

	item, err := h.researchRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Research item not found")
		}
		return response.InternalServerError(c, "Failed to get research item")
	}

	var req ResearchRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Title != "" {
		item.Title = req.Title
	}
	if req.Authors != "" {
		item.Authors = req.Authors
	}
	if req.Abstract != "" {
		item.Abstract = req.Abstract
	}
	if req.Link != "" {
		item.Link = req.Link
	}
	if req.Year != 0 {
		item.Year = req.Year
	}
	if req.Branch != "" {
		item.Branch = req.Branch
	}
	if req.IsPublished != nil {
		item.IsPublished = *req.IsPublished
	}

	if err := h.researchRepo.Update(c.Context(), item); err != nil {
		return response.InternalServerError(c, "Failed to update research item")
	}
	return response.Success(c, "Research item updated successfully", item)
}

// DeleteResearch handles research item deletion
// @Summary Delete research item
// @Description Delete a research item
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Research ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /research/{id} [delete]
func (h *ContentHandler) DeleteResearch(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid research ID")
	}

	if _, err := h.researchRepo.GetByID(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Research item not found")
		}
		return response.InternalServerError(c, "Failed to get research item")
	}

	if err := h.researchRepo.Delete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, "Failed to delete research item")
	}
	return response.Success(c, "Research item deleted successfully", nil)
}
