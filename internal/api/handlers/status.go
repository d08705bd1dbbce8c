package handlers

import (
	"FarmToFork-Backend/domain"
	"FarmToFork-Backend/entities"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps service errors onto HTTP status codes. Anything unrecognised is a bad request.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrBatchNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrRoleMismatch), errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}

func currentUser(c *fiber.Ctx) entities.User {
	u, _ := c.Locals("user").(entities.User)
	return u
}
