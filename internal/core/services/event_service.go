package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"psc-chapterhub/internal/adapters/persistence/models"
	"psc-chapterhub/internal/adapters/persistence/repositories"
	"psc-chapterhub/internal/core/domain"

	"gorm.io/gorm"
)

// Event service errors
var (
	ErrEventNotFoundSvc   = errors.New("event not found")
	ErrSlugAlreadyExists  = errors.New("slug already exists")
	ErrInvalidEventTiming = errors.New("event end must not precede start")
)

// EventService handles event business logic
type EventService struct {
	eventRepo *repositories.EventRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo *repositories.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// CreateEventInput represents create event input
type CreateEventInput struct {
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Branch      string     `json:"branch"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	IsPublished bool       `json:"is_published"`
}

// UpdateEventInput represents update event input
type UpdateEventInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	Branch      *string    `json:"branch"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	IsPublished *bool      `json:"is_published"`
}

// ListEventsOutput represents paginated events
type ListEventsOutput struct {
	Events     []*models.Event `json:"events"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

// Create creates a new event. Branch-affiliated actors get their own branch
// stamped on the event when none is given.
func (s *EventService) Create(ctx context.Context, actor *domain.Actor, input *CreateEventInput) (*models.Event, error) {
	if input.EndsAt != nil && input.EndsAt.Before(input.StartsAt) {
		return nil, ErrInvalidEventTiming
	}

	slug := input.Slug
	if slug == "" {
		slug = Slugify(input.Title)
	}
	exists, err := s.eventRepo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSlugAlreadyExists
	}

	branch := input.Branch
	if branch == "" {
		branch = domain.ActorBranch(actor)
	}

	event := &models.Event{
		Title:       input.Title,
		Slug:        slug,
		Description: input.Description,
		Location:    input.Location,
		Branch:      branch,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		IsPublished: input.IsPublished,
		CreatedBy:   actor.ID,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// GetByID gets an event by ID
func (s *EventService) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFoundSvc
		}
		return nil, err
	}
	return event, nil
}

// GetBySlug gets a published event by slug (public page)
func (s *EventService) GetBySlug(ctx context.Context, slug string) (*models.Event, error) {
	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFoundSvc
		}
		return nil, err
	}
	if !event.IsPublished {
		return nil, ErrEventNotFoundSvc
	}
	return event, nil
}

// Update updates an event
func (s *EventService) Update(ctx context.Context, id uint, input *UpdateEventInput) (*models.Event, error) {
	event, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.Location != nil {
		event.Location = *input.Location
	}
	if input.Branch != nil {
		event.Branch = *input.Branch
	}
	if input.StartsAt != nil {
		event.StartsAt = *input.StartsAt
	}
	if input.EndsAt != nil {
		event.EndsAt = input.EndsAt
	}
	if input.IsPublished != nil {
		event.IsPublished = *input.IsPublished
	}

	if event.EndsAt != nil && event.EndsAt.Before(event.StartsAt) {
		return nil, ErrInvalidEventTiming
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete soft deletes an event
func (s *EventService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, id)
}

// List lists events with pagination
func (s *EventService) List(ctx context.Context, branch string, publishedOnly bool, page, limit int) (*ListEventsOutput, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	events, total, err := s.eventRepo.List(ctx, branch, publishedOnly, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	return &ListEventsOutput{
		Events:     events,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// ListUpcoming lists published upcoming events for the public site
func (s *EventService) ListUpcoming(ctx context.Context, limit int) ([]*models.Event, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return s.eventRepo.ListUpcoming(ctx, limit)
}

// Slugify derives a URL slug from a title
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	lastDash := true
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
