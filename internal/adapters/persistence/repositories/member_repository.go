package repositories

import (
	"context"

	"psc-chapterhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// MemberProfileRepository handles committee/chapter member listings
type MemberProfileRepository struct {
	db *gorm.DB
}

// NewMemberProfileRepository creates a new member profile repository
func NewMemberProfileRepository(db *gorm.DB) *MemberProfileRepository {
	return &MemberProfileRepository{db: db}
}

// Create creates a new member profile
func (r *MemberProfileRepository) Create(ctx context.Context, profile *models.MemberProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// GetByID gets a member profile by ID
func (r *MemberProfileRepository) GetByID(ctx context.Context, id uint) (*models.MemberProfile, error) {
	var profile models.MemberProfile
	err := r.db.WithContext(ctx).First(&profile, id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update updates a member profile
func (r *MemberProfileRepository) Update(ctx context.Context, profile *models.MemberProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// Delete soft deletes a member profile
func (r *MemberProfileRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.MemberProfile{}, id).Error
}

// List lists member profiles with pagination, optionally by committee
func (r *MemberProfileRepository) List(ctx context.Context, committee string, activeOnly bool, offset, limit int) ([]*models.MemberProfile, int64, error) {
	var profiles []*models.MemberProfile
	var total int64

	query := r.db.WithContext(ctx).Model(&models.MemberProfile{})
	if committee != "" {
		query = query.Where("committee = ?", committee)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("sort_order, name").Offset(offset).Limit(limit).Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

// Count counts all member profiles
func (r *MemberProfileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.MemberProfile{}).Count(&count).Error
	return count, err
}
