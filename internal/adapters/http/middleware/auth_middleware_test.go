package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"psc-chapterhub/internal/config"
	"psc-chapterhub/internal/core/domain"
	"psc-chapterhub/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:          "test-secret",
			AccessTokenMins: 15,
		},
	}
}

func newGuardedApp(cfg *config.Config, perm domain.Permission) *fiber.App {
	app := fiber.New()
	app.Get("/guarded",
		AuthMiddleware(cfg),
		RequirePermission(perm),
		func(c *fiber.Ctx) error {
			return c.SendString("ok")
		})
	return app
}

func accessToken(t *testing.T, cfg *config.Config, role string, perms []string) string {
	token, err := jwt.GenerateAccessToken(1, "user@example.com", "Test User", role, "central", perms, cfg.JWT.Secret, cfg.JWT.AccessTokenMins)
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	app := newGuardedApp(testConfig(), domain.PermEvents)

	req := httptest.NewRequest("GET", "/guarded", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	app := newGuardedApp(testConfig(), domain.PermEvents)

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequirePermissionRoleDefaults(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name       string
		role       string
		perm       domain.Permission
		wantStatus int
	}{
		{"member can view events", "member", domain.PermEvents, fiber.StatusOK},
		{"member cannot manage content", "member", domain.PermContent, fiber.StatusForbidden},
		{"editor can manage content", "editor", domain.PermContent, fiber.StatusOK},
		{"editor cannot manage settings", "editor", domain.PermSettings, fiber.StatusForbidden},
		{"branch admin can manage carousel", "branch-admin", domain.PermCarousel, fiber.StatusOK},
		{"chairperson cannot manage carousel", "chairperson", domain.PermCarousel, fiber.StatusForbidden},
		{"nobody defaults to admins", "branch-admin", domain.PermAdmins, fiber.StatusForbidden},
		{"super admin passes everything", "super-admin", domain.PermMigration, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newGuardedApp(cfg, tt.perm)

			req := httptest.NewRequest("GET", "/guarded", nil)
			req.Header.Set("Authorization", "Bearer "+accessToken(t, cfg, tt.role, nil))
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestRequirePermissionExplicitGrant(t *testing.T) {
	cfg := testConfig()
	app := newGuardedApp(cfg, domain.PermNewsletter)

	// A plain member is denied
	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, cfg, "member", nil))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// The same role with an explicit grant passes
	req = httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, cfg, "member", []string{"newsletter"}))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequirePermissionWildcardGrant(t *testing.T) {
	cfg := testConfig()
	app := newGuardedApp(cfg, domain.PermBranches)

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, cfg, "member", []string{"all"}))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole(t *testing.T) {
	cfg := testConfig()
	app := fiber.New()
	app.Get("/admin-only",
		AuthMiddleware(cfg),
		RequireRole(domain.RoleBranchAdmin),
		func(c *fiber.Ctx) error { return c.SendString("ok") })

	// Matching role passes
	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, cfg, "branch-admin", nil))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Super admin satisfies any role check
	req = httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, cfg, "super-admin", nil))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Other roles are denied
	req = httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, cfg, "counsellor", nil))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestOptionalAuthWithoutToken(t *testing.T) {
	cfg := testConfig()
	app := fiber.New()
	app.Get("/open", OptionalAuth(cfg), func(c *fiber.Ctx) error {
		if ActorFromContext(c) != nil {
			return c.SendString("authenticated")
		}
		return c.SendString("anonymous")
	})

	req := httptest.NewRequest("GET", "/open", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareReadsCookie(t *testing.T) {
	cfg := testConfig()
	app := newGuardedApp(cfg, domain.PermEvents)

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: accessToken(t, cfg, "member", nil)})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
