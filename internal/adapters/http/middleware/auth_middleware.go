package middleware

import (
	"strings"

	"psc-chapterhub/internal/config"
	"psc-chapterhub/internal/core/domain"
	"psc-chapterhub/internal/pkg/jwt"
	"psc-chapterhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// actorFromClaims rebuilds the authorization actor from the access token.
// The token carries role, branch and explicit grants, so no DB lookup is
// needed per request.
func actorFromClaims(claims *jwt.Claims) *domain.Actor {
	perms := make([]domain.Permission, len(claims.Permissions))
	for i, p := range claims.Permissions {
		perms[i] = domain.Permission(p)
	}
	return &domain.Actor{
		ID:          claims.UserID,
		Email:       claims.Email,
		Name:        claims.Name,
		Role:        domain.Role(claims.Role),
		Branch:      claims.Branch,
		Permissions: perms,
	}
}

func extractToken(c *fiber.Ctx) string {
	// Cookie first, then Authorization header
	if token := c.Cookies("access_token"); token != "" {
		return token
	}
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// AuthMiddleware creates authentication middleware
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := extractToken(c)
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		c.Locals("actor", actorFromClaims(claims))
		c.Locals("userID", claims.UserID)

		return c.Next()
	}
}

// ActorFromContext returns the authenticated actor, or nil when the request
// carries no valid token.
func ActorFromContext(c *fiber.Ctx) *domain.Actor {
	actor, _ := c.Locals("actor").(*domain.Actor)
	return actor
}

// RequirePermission guards a route behind a capability check
func RequirePermission(perm domain.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !domain.HasPermission(ActorFromContext(c), perm) {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}
		return c.Next()
	}
}

// RequireRole guards a route behind a role check
func RequireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !domain.HasRole(ActorFromContext(c), role) {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}
		return c.Next()
	}
}

// SuperAdminOnly middleware allows only the super-admin role
func SuperAdminOnly() fiber.Handler {
	return RequireRole(domain.RoleSuperAdmin)
}

// OptionalAuth middleware - doesn't require auth but sets the actor if a
// valid token is present
func OptionalAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if accessToken := extractToken(c); accessToken != "" {
			if claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret); err == nil {
				c.Locals("actor", actorFromClaims(claims))
				c.Locals("userID", claims.UserID)
			}
		}
		return c.Next()
	}
}
