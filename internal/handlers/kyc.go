package handlers

import (
	"errors"
	"log"

	"surveyhub/internal/models"
	"surveyhub/internal/repositories"
	"surveyhub/internal/services/kyc"
	"surveyhub/internal/utils"
	"surveyhub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type KYCHandler struct {
	service kyc.Service
}

func NewKYCHandler(service kyc.Service) *KYCHandler {
	return &KYCHandler{service: service}
}

// SubmitKYC creates the caller's single identity verification record.
func (h *KYCHandler) SubmitKYC(c *fiber.Ctx) error {
	var input models.SubmitKYCInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.KYCSubmission(&input)
	if !v.Valid() {
		return utils.BadRequest(c, v.First())
	}

	record, err := h.service.Submit(&input)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrUserNotFound):
			return utils.NotFound(c, "User not found")
		case errors.Is(err, kyc.ErrNotSurveyor):
			return utils.Forbidden(c, err.Error())
		case errors.Is(err, kyc.ErrAlreadySubmitted):
			return utils.BadRequest(c, err.Error())
		}
		log.Printf("KYC submission error: %v", err)
		return utils.InternalError(c, internalMessage(err, "Failed to submit KYC. Please try again."))
	}

	return utils.Created(c, fiber.Map{
		"message": "KYC submitted successfully",
		"kyc":     record.Public(),
	})
}

// GetKYC reports whether a KYC record exists for a user, with its public
// fields when it does. Unknown users read as not-submitted.
func (h *KYCHandler) GetKYC(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return utils.BadRequest(c, "User ID is required")
	}

	record, exists, err := h.service.Get(userID)
	if err != nil {
		log.Printf("KYC status check error: %v", err)
		return utils.InternalError(c, "Failed to check KYC status")
	}

	resp := fiber.Map{"exists": exists, "kyc": nil}
	if exists {
		resp["kyc"] = record.Public()
	}
	return utils.Success(c, resp)
}

// CheckKYC drives the client gate: it returns the user's role and the
// verification flag (null for roles that never submit KYC).
func (h *KYCHandler) CheckKYC(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return utils.BadRequest(c, "User ID is required")
	}

	status, err := h.service.CheckStatus(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return utils.NotFound(c, "User not found")
		}
		log.Printf("KYC check error: %v", err)
		return utils.InternalError(c, "Failed to check KYC status")
	}

	return utils.Success(c, fiber.Map{
		"hasKYC": status.HasKYC,
		"role":   status.Role,
	})
}
