package handlers

import (
	"log"

	"psc-chapterhub/internal/adapters/persistence/models"
	"psc-chapterhub/internal/config"
	"psc-chapterhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MigrationHandler handles schema migration endpoints
type MigrationHandler struct {
	db *gorm.DB
}

// NewMigrationHandler creates a new migration handler
func NewMigrationHandler(db *gorm.DB) *MigrationHandler {
	return &MigrationHandler{db: db}
}

// RunMigration handles re-running schema migration and master data seeding
// @Summary Run migration
// @Description Re-run schema auto migration and master data seeding
// @Tags Migration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /migration/run [post]
func (h *MigrationHandler) RunMigration(c *fiber.Ctx) error {
	log.Println("🔄 Running schema migration on request...")

	if err := models.AutoMigrate(h.db); err != nil {
		log.Printf("❌ Migration failed: %v", err)
		return response.InternalServerError(c, "Migration failed")
	}

	if err := config.SeedMasterData(h.db); err != nil {
		log.Printf("⚠️ Master data seeding failed: %v", err)
		return response.InternalServerError(c, "Master data seeding failed")
	}

	log.Println("✅ Migration completed")
	return response.Success(c, "Migration completed successfully", nil)
}
