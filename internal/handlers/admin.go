package handlers

import (
	"log"

	"surveyhub/internal/models"
	"surveyhub/internal/services/user"
	"surveyhub/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const maxListLimit = 100

type AdminHandler struct {
	userService user.Service
}

func NewAdminHandler(userService user.Service) *AdminHandler {
	return &AdminHandler{userService: userService}
}

// ListUsers returns a page of accounts with their verification state.
// Admin only.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || claims.Role != models.RoleAdmin {
		return utils.Forbidden(c, "Access denied. Admin privileges required")
	}

	p := utils.GetPagination(c, 1, 20, maxListLimit)

	users, total, err := h.userService.List(p.Offset, p.Limit)
	if err != nil {
		log.Printf("Error fetching paginated users: %v", err)
		return utils.InternalError(c, "Failed to fetch users")
	}

	p.SetTotal(total)

	listed := make([]fiber.Map, len(users))
	for i, u := range users {
		listed[i] = fiber.Map{
			"id":           u.ID,
			"name":         u.Name,
			"email":        u.Email,
			"role":         u.Role,
			"kycSubmitted": u.KYC != nil,
			"createdAt":    u.CreatedAt,
		}
	}

	return c.JSON(utils.NewPaginatedResponse(listed, p))
}
