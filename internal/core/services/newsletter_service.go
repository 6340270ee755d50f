package services

import (
	"context"
	"errors"
	"log"
	"time"

	"psc-chapterhub/internal/adapters/persistence/models"
	"psc-chapterhub/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Newsletter service errors
var (
	ErrNewsletterNotFoundSvc = errors.New("newsletter not found")
	ErrScheduleInPast        = errors.New("scheduled time is in the past")
	ErrAlreadyPublished      = errors.New("newsletter already published")
)

// NewsletterService handles newsletter issues, including scheduled publishing
type NewsletterService struct {
	newsletterRepo *repositories.NewsletterRepository

	now func() time.Time
}

// NewNewsletterService creates a new newsletter service
func NewNewsletterService(newsletterRepo *repositories.NewsletterRepository) *NewsletterService {
	return &NewsletterService{
		newsletterRepo: newsletterRepo,
		now:            time.Now,
	}
}

// CreateNewsletterInput represents create newsletter input
type CreateNewsletterInput struct {
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	IssueNo     int        `json:"issue_no"`
	Body        string     `json:"body"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// UpdateNewsletterInput represents update newsletter input
type UpdateNewsletterInput struct {
	Title       *string    `json:"title"`
	IssueNo     *int       `json:"issue_no"`
	Body        *string    `json:"body"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// Create creates a newsletter issue. A scheduled time in the future queues
// it for the publish job; none leaves it a draft.
func (s *NewsletterService) Create(ctx context.Context, createdBy uint, input *CreateNewsletterInput) (*models.Newsletter, error) {
	slug := input.Slug
	if slug == "" {
		slug = Slugify(input.Title)
	}

	status := models.NewsletterDraft
	if input.ScheduledAt != nil {
		if input.ScheduledAt.Before(s.now()) {
			return nil, ErrScheduleInPast
		}
		status = models.NewsletterScheduled
	}

	issue := &models.Newsletter{
		Title:       input.Title,
		Slug:        slug,
		IssueNo:     input.IssueNo,
		Body:        input.Body,
		Status:      status,
		ScheduledAt: input.ScheduledAt,
		CreatedBy:   createdBy,
	}

	if err := s.newsletterRepo.Create(ctx, issue); err != nil {
		return nil, err
	}
	return issue, nil
}

// GetByID gets a newsletter by ID
func (s *NewsletterService) GetByID(ctx context.Context, id uint) (*models.Newsletter, error) {
	issue, err := s.newsletterRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsletterNotFoundSvc
		}
		return nil, err
	}
	return issue, nil
}

// Update updates a draft or scheduled newsletter
func (s *NewsletterService) Update(ctx context.Context, id uint, input *UpdateNewsletterInput) (*models.Newsletter, error) {
	issue, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if issue.Status == models.NewsletterPublished {
		return nil, ErrAlreadyPublished
	}

	if input.Title != nil {
		issue.Title = *input.Title
	}
	if input.IssueNo != nil {
		issue.IssueNo = *input.IssueNo
	}
	if input.Body != nil {
		issue.Body = *input.Body
	}
	if input.ScheduledAt != nil {
		if input.ScheduledAt.Before(s.now()) {
			return nil, ErrScheduleInPast
		}
		issue.ScheduledAt = input.ScheduledAt
		issue.Status = models.NewsletterScheduled
	}

	if err := s.newsletterRepo.Update(ctx, issue); err != nil {
		return nil, err
	}
	return issue, nil
}

// Publish immediately publishes a newsletter
func (s *NewsletterService) Publish(ctx context.Context, id uint) (*models.Newsletter, error) {
	issue, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if issue.Status == models.NewsletterPublished {
		return nil, ErrAlreadyPublished
	}

	if err := s.newsletterRepo.MarkPublished(ctx, id, s.now()); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete soft deletes a newsletter
func (s *NewsletterService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.newsletterRepo.Delete(ctx, id)
}

// List lists newsletters with pagination, optionally filtered by status
func (s *NewsletterService) List(ctx context.Context, status string, page, limit int) ([]*models.Newsletter, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return s.newsletterRepo.List(ctx, status, (page-1)*limit, limit)
}

// PublishDue publishes every scheduled issue whose time has passed.
// Called by the cron job; returns how many issues were published.
func (s *NewsletterService) PublishDue(ctx context.Context) (int, error) {
	due, err := s.newsletterRepo.ListDueScheduled(ctx, s.now())
	if err != nil {
		return 0, err
	}

	published := 0
	for _, issue := range due {
		if err := s.newsletterRepo.MarkPublished(ctx, issue.ID, s.now()); err != nil {
			log.Printf("⚠️ Failed to publish newsletter %d: %v", issue.ID, err)
			continue
		}
		published++
	}
	return published, nil
}
