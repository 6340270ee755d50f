package repositories

import (
	"context"
	"time"

	"psc-chapterhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// NewsRepository handles news post data access
type NewsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// Create creates a new news post
func (r *NewsRepository) Create(ctx context.Context, post *models.NewsPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// GetByID gets a news post by ID
func (r *NewsRepository) GetByID(ctx context.Context, id uint) (*models.NewsPost, error) {
	var post models.NewsPost
	err := r.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetBySlug gets a news post by slug
func (r *NewsRepository) GetBySlug(ctx context.Context, slug string) (*models.NewsPost, error) {
	var post models.NewsPost
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update updates a news post
func (r *NewsRepository) Update(ctx context.Context, post *models.NewsPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// Delete soft deletes a news post
func (r *NewsRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.NewsPost{}, id).Error
}

// List lists news posts with pagination
func (r *NewsRepository) List(ctx context.Context, publishedOnly bool, offset, limit int) ([]*models.NewsPost, int64, error) {
	var posts []*models.NewsPost
	var total int64

	query := r.db.WithContext(ctx).Model(&models.NewsPost{})
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// Count counts all news posts
func (r *NewsRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.NewsPost{}).Count(&count).Error
	return count, err
}

// ExistsBySlug checks if a news slug exists
func (r *NewsRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.NewsPost{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// ResearchRepository handles research item data access
type ResearchRepository struct {
	db *gorm.DB
}

// NewResearchRepository creates a new research repository
func NewResearchRepository(db *gorm.DB) *ResearchRepository {
	return &ResearchRepository{db: db}
}

// Create creates a new research item
func (r *ResearchRepository) Create(ctx context.Context, item *models.ResearchItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// GetByID gets a research item by ID
func (r *ResearchRepository) GetByID(ctx context.Context, id uint) (*models.ResearchItem, error) {
	var item models.ResearchItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update updates a research item
func (r *ResearchRepository) Update(ctx context.Context, item *models.ResearchItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete soft deletes a research item
func (r *ResearchRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.ResearchItem{}, id).Error
}

// List lists research items with pagination, newest year first
func (r *ResearchRepository) List(ctx context.Context, publishedOnly bool, offset, limit int) ([]*models.ResearchItem, int64, error) {
	var items []*models.ResearchItem
	var total int64

	query := r.db.WithContext(ctx).Model(&models.ResearchItem{})
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("year DESC, id DESC").Offset(offset).Limit(limit).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// NewsletterRepository handles newsletter data access
type NewsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository creates a new newsletter repository
func NewNewsletterRepository(db *gorm.DB) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

// Create creates a new newsletter
func (r *NewsletterRepository) Create(ctx context.Context, issue *models.Newsletter) error {
	return r.db.WithContext(ctx).Create(issue).Error
}

// GetByID gets a newsletter by ID
func (r *NewsletterRepository) GetByID(ctx context.Context, id uint) (*models.Newsletter, error) {
	var issue models.Newsletter
	err := r.db.WithContext(ctx).First(&issue, id).Error
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// GetBySlug gets a newsletter by slug
func (r *NewsletterRepository) GetBySlug(ctx context.Context, slug string) (*models.Newsletter, error) {
	var issue models.Newsletter
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&issue).Error
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// Update updates a newsletter
func (r *NewsletterRepository) Update(ctx context.Context, issue *models.Newsletter) error {
	return r.db.WithContext(ctx).Save(issue).Error
}

// Delete soft deletes a newsletter
func (r *NewsletterRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Newsletter{}, id).Error
}

// List lists newsletters with pagination, optionally filtered by status
func (r *NewsletterRepository) List(ctx context.Context, status string, offset, limit int) ([]*models.Newsletter, int64, error) {
	var issues []*models.Newsletter
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Newsletter{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("issue_no DESC, id DESC").Offset(offset).Limit(limit).Find(&issues).Error
	if err != nil {
		return nil, 0, err
	}
	return issues, total, nil
}

// ListDueScheduled lists scheduled newsletters whose publish time has passed
func (r *NewsletterRepository) ListDueScheduled(ctx context.Context, now time.Time) ([]*models.Newsletter, error) {
	var issues []*models.Newsletter
	err := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_at IS NOT NULL AND scheduled_at <= ?", models.NewsletterScheduled, now).
		Find(&issues).Error
	return issues, err
}

// MarkPublished transitions a newsletter to published
func (r *NewsletterRepository) MarkPublished(ctx context.Context, id uint, publishedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Newsletter{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       models.NewsletterPublished,
			"published_at": publishedAt,
		}).Error
}
