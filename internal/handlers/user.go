package handlers

import (
	"errors"
	"log"

	"surveyhub/internal/config"
	"surveyhub/internal/models"
	"surveyhub/internal/repositories"
	"surveyhub/internal/services/user"
	"surveyhub/internal/utils"
	"surveyhub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterUser handles account signup.
func (h *UserHandler) RegisterUser(c *fiber.Ctx) error {
	var input models.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.UserRegistration(&input)
	if !v.Valid() {
		return utils.BadRequest(c, v.First())
	}

	if err := repositories.Ping(); err != nil {
		log.Printf("Database connection error: %v", err)
		return utils.InternalError(c, "Database connection failed. Please check your database configuration.")
	}

	createdUser, err := h.userService.Create(&input)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return utils.BadRequest(c, "User with this email already exists")
		}
		log.Printf("Signup error: %v", err)
		return utils.InternalError(c, internalMessage(err, "Failed to create user. Please try again."))
	}

	return utils.Created(c, fiber.Map{
		"message": "User created successfully",
		"user":    createdUser.Public(),
	})
}

// Me returns the authenticated user's public profile.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	u, err := h.userService.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalError(c, "Failed to fetch user")
	}

	return utils.Success(c, fiber.Map{"user": u.Public()})
}

// internalMessage surfaces error detail only outside production.
func internalMessage(err error, generic string) string {
	if config.IsProduction() {
		return generic
	}
	return err.Error()
}
