package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/lms-go-api/internal/middleware"
	"github.com/noah-isme/lms-go-api/internal/models"
)

func parseUintParam(c *fiber.Ctx, key string) (uint, error) {
	value := c.Params(key)
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, errors.New("invalid " + key)
	}
	return uint(parsed), nil
}

func currentUserFromContext(c *fiber.Ctx) models.User {
	if v := c.Locals(middleware.LocalUser); v != nil {
		if user, ok := v.(models.User); ok {
			return user
		}
	}
	return models.User{}
}

func userIDFromContext(c *fiber.Ctx) uint {
	if v := c.Locals(middleware.LocalID); v != nil {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
