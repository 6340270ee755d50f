package repositories

import (
	"context"

	"psc-chapterhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// BranchRepository handles branch data access
type BranchRepository struct {
	db *gorm.DB
}

// NewBranchRepository creates a new branch repository
func NewBranchRepository(db *gorm.DB) *BranchRepository {
	return &BranchRepository{db: db}
}

// Create creates a new branch
func (r *BranchRepository) Create(ctx context.Context, branch *models.Branch) error {
	return r.db.WithContext(ctx).Create(branch).Error
}

// GetByID gets a branch by ID
func (r *BranchRepository) GetByID(ctx context.Context, id uint) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.WithContext(ctx).First(&branch, id).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

// GetBySlug gets a branch by slug
func (r *BranchRepository) GetBySlug(ctx context.Context, slug string) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&branch).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

// List lists all active branches
func (r *BranchRepository) List(ctx context.Context) ([]*models.Branch, error) {
	var branches []*models.Branch
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name").Find(&branches).Error
	return branches, err
}

// ListAll lists all branches including inactive
func (r *BranchRepository) ListAll(ctx context.Context) ([]*models.Branch, error) {
	var branches []*models.Branch
	err := r.db.WithContext(ctx).Order("name").Find(&branches).Error
	return branches, err
}

// Update updates a branch
func (r *BranchRepository) Update(ctx context.Context, branch *models.Branch) error {
	return r.db.WithContext(ctx).Save(branch).Error
}

// Delete soft deletes a branch
func (r *BranchRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Branch{}, id).Error
}

// AwardRepository handles award data access
type AwardRepository struct {
	db *gorm.DB
}

// NewAwardRepository creates a new award repository
func NewAwardRepository(db *gorm.DB) *AwardRepository {
	return &AwardRepository{db: db}
}

// Create creates a new award
func (r *AwardRepository) Create(ctx context.Context, award *models.Award) error {
	return r.db.WithContext(ctx).Create(award).Error
}

// GetByID gets an award by ID
func (r *AwardRepository) GetByID(ctx context.Context, id uint) (*models.Award, error) {
	var award models.Award
	err := r.db.WithContext(ctx).First(&award, id).Error
	if err != nil {
		return nil, err
	}
	return &award, nil
}

// List lists awards, newest year first
func (r *AwardRepository) List(ctx context.Context) ([]*models.Award, error) {
	var awards []*models.Award
	err := r.db.WithContext(ctx).Order("year DESC, id DESC").Find(&awards).Error
	return awards, err
}

// Update updates an award
func (r *AwardRepository) Update(ctx context.Context, award *models.Award) error {
	return r.db.WithContext(ctx).Save(award).Error
}

// Delete soft deletes an award
func (r *AwardRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Award{}, id).Error
}

// CarouselRepository handles carousel slide data access
type CarouselRepository struct {
	db *gorm.DB
}

// NewCarouselRepository creates a new carousel repository
func NewCarouselRepository(db *gorm.DB) *CarouselRepository {
	return &CarouselRepository{db: db}
}

// Create creates a new carousel slide
func (r *CarouselRepository) Create(ctx context.Context, slide *models.CarouselSlide) error {
	return r.db.WithContext(ctx).Create(slide).Error
}

// GetByID gets a carousel slide by ID
func (r *CarouselRepository) GetByID(ctx context.Context, id uint) (*models.CarouselSlide, error) {
	var slide models.CarouselSlide
	err := r.db.WithContext(ctx).First(&slide, id).Error
	if err != nil {
		return nil, err
	}
	return &slide, nil
}

// List lists active slides in display order
func (r *CarouselRepository) List(ctx context.Context) ([]*models.CarouselSlide, error) {
	var slides []*models.CarouselSlide
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("sort_order, id").Find(&slides).Error
	return slides, err
}

// ListAll lists all slides including inactive
func (r *CarouselRepository) ListAll(ctx context.Context) ([]*models.CarouselSlide, error) {
	var slides []*models.CarouselSlide
	err := r.db.WithContext(ctx).Order("sort_order, id").Find(&slides).Error
	return slides, err
}

// Update updates a carousel slide
func (r *CarouselRepository) Update(ctx context.Context, slide *models.CarouselSlide) error {
	return r.db.WithContext(ctx).Save(slide).Error
}

// Delete soft deletes a carousel slide
func (r *CarouselRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.CarouselSlide{}, id).Error
}

// SettingRepository handles site settings data access
type SettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get gets a setting value by key; missing keys return ""
func (r *SettingRepository) Get(ctx context.Context, key string) (string, error) {
	var setting models.Setting
	err := r.db.WithContext(ctx).Where("`key` = ?", key).First(&setting).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// Set upserts a setting value
func (r *SettingRepository) Set(ctx context.Context, key, value string) error {
	var setting models.Setting
	err := r.db.WithContext(ctx).Where("`key` = ?", key).First(&setting).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.WithContext(ctx).Create(&models.Setting{Key: key, Value: value}).Error
	}
	if err != nil {
		return err
	}
	setting.Value = value
	return r.db.WithContext(ctx).Save(&setting).Error
}

// List lists all settings
func (r *SettingRepository) List(ctx context.Context) ([]*models.Setting, error) {
	var settings []*models.Setting
	err := r.db.WithContext(ctx).Order("`key`").Find(&settings).Error
	return settings, err
}
