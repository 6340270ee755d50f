package config

import (
	"log"

	"psc-chapterhub/internal/adapters/persistence/models"
	"psc-chapterhub/internal/core/domain"
	"psc-chapterhub/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedSuperAdmin(); err != nil {
		log.Printf("⚠️ Super admin seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedSuperAdmin seeds the default super admin account
// This is for development/testing only
// In production, create the admin through a secure process
func (s *Seeder) seedSuperAdmin() error {
	// Check if a super admin already exists
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", string(domain.RoleSuperAdmin)).Count(&count)
	if count > 0 {
		return nil // Super admin already exists
	}

	hashedPassword, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:    getEnv("SEED_ADMIN_EMAIL", "admin@chapterhub.psc.org"),
		Name:     "Site Administrator",
		Password: hashedPassword,
		Role:     string(domain.RoleSuperAdmin),
		IsActive: true,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Super admin created: %s", admin.Email)
	return nil
}
