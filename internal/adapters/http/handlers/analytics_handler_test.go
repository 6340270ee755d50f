package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"psc-chapterhub/internal/adapters/persistence/models"
	"psc-chapterhub/internal/adapters/persistence/repositories"
	"psc-chapterhub/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) *fiber.App {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))

	svc := services.NewAnalyticsService(repositories.NewViewCounterRepository(db))
	handler := NewAnalyticsHandler(svc)

	app := fiber.New()
	app.Post("/public/views/track", handler.TrackView)
	app.Get("/public/views", handler.GetSnapshot)
	return app
}

func TestTrackViewEndpoint(t *testing.T) {
	app := setupTestApp(t)

	// Two plain views and one unique
	for _, unique := range []bool{false, true, false} {
		body, _ := json.Marshal(fiber.Map{"is_unique": unique})
		req := httptest.NewRequest("POST", "/public/views/track", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	// Snapshot reflects all three
	req := httptest.NewRequest("GET", "/public/views", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			TotalViews     uint64 `json:"total_views"`
			UniqueVisitors uint64 `json:"unique_visitors"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, uint64(3), envelope.Data.TotalViews)
	assert.Equal(t, uint64(1), envelope.Data.UniqueVisitors)
}

func TestTrackViewEndpointToleratesEmptyBody(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("POST", "/public/views/track", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSnapshotEndpointOnFreshDatabase(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/public/views", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
