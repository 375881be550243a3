// Package routes defines the API routing configuration. It wires
// repositories into services and services into handlers, then registers
// every endpoint with its middleware.
package routes

import (
	"surveyhub/internal/handlers"
	"surveyhub/internal/middleware"
	"surveyhub/internal/models"
	"surveyhub/internal/repositories"
	"surveyhub/internal/services/auth"
	"surveyhub/internal/services/kyc"
	"surveyhub/internal/services/user"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repositories.NewUserRepository(db, repositories.CacheService)
	kycRepo := repositories.NewKYCRepository(db)

	authService := auth.NewService(userRepo)
	userService := user.NewService(userRepo)
	kycService := kyc.NewService(userRepo, kycRepo)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	kycHandler := handlers.NewKYCHandler(kycService)
	adminHandler := handlers.NewAdminHandler(userService)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to SurveyHub API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	api := app.Group("/api")

	// Public endpoints
	api.Post("/signup", userHandler.RegisterUser)
	api.Post("/login", authHandler.LoginUser)
	api.Post("/refresh", authHandler.RefreshToken)
	api.Get("/health", handlers.HealthCheck)

	// KYC endpoints queried by the client gate before any protected view
	// renders; they take the cached user id rather than a bearer token.
	api.Get("/kyc", kycHandler.GetKYC)
	api.Post("/kyc", kycHandler.SubmitKYC)
	api.Get("/auth/check-kyc", kycHandler.CheckKYC)

	// Protected endpoints
	authMiddleware := middleware.NewAuthMiddleware(authService)
	protected := api.Use(authMiddleware.Handler)

	protected.Get("/me", userHandler.Me)
	protected.Post("/logout", authHandler.LogoutUser)

	admin := protected.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	admin.Get("/users", adminHandler.ListUsers)
}
