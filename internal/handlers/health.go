package handlers

import (
	"surveyhub/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

func HealthCheck(c *fiber.Ctx) error {
	dbStatus := "connected"
	if err := repositories.Ping(); err != nil {
		dbStatus = "unreachable"
	}

	redisStatus := "disabled"
	if repositories.CacheService != nil {
		redisStatus = "connected"
		if err := repositories.CacheService.HealthCheck(c.Context()); err != nil {
			redisStatus = "unreachable"
		}
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
		"services": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
	})
}
