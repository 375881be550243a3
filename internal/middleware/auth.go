// Package middleware provides HTTP middleware for the fiber app, including
// JWT authentication and role gating.
package middleware

import (
	"log"
	"strings"

	"surveyhub/internal/models"
	"surveyhub/internal/services/auth"
	"surveyhub/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates bearer tokens and adds the user claims to the
// request context.
type AuthMiddleware struct {
	authService auth.Service
}

func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Handler checks for a Bearer token with a valid signature, an unexpired
// lifetime, and a token version matching the user's current one.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return utils.Unauthorized(c, "missing authorization header")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, "invalid authorization format")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	_, claims, err := utils.ParseToken(tokenString)
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return utils.Unauthorized(c, "invalid token")
	}

	currentVersion, err := m.authService.GetUserTokenVersion(claims.UserID)
	if err != nil {
		log.Printf("User %s from token not found", claims.UserID)
		return utils.Unauthorized(c, "invalid token")
	}

	// Logout bumps the stored version, expiring every token issued before.
	if claims.TokenVersion != currentVersion {
		return utils.Unauthorized(c, "session expired")
	}

	c.Locals("claims", claims)
	c.Locals("userID", claims.UserID)

	return c.Next()
}

// RequireRole returns a middleware allowing only the given role through.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*models.UserClaims)
		if !ok {
			return utils.Unauthorized(c, "Invalid claims")
		}
		if claims.Role != role {
			return utils.Forbidden(c, "Insufficient permissions")
		}
		return c.Next()
	}
}
