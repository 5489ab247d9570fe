package server

import (
	"strconv"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// currentUser returns the authenticated user attached by AuthRequired,
// or nil if the middleware did not run.
func (s *Server) currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("currentUser").(*models.User)
	return user
}

// paramID parses a numeric route parameter.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid ID")
	}
	return uint(id), nil
}

// statusForError maps an application error to its HTTP status.
func statusForError(err error) int {
	appErr, ok := err.(*models.AppError)
	if !ok {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case "NOT_FOUND":
		return fiber.StatusNotFound
	case "VALIDATION_ERROR", "ALREADY_EXISTS":
		return fiber.StatusBadRequest
	case "UNAUTHORIZED":
		return fiber.StatusUnauthorized
	case "FORBIDDEN":
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes the JSON error body with the status implied by the
// error's code. Handlers use this when the repository decides the failure.
func respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, statusForError(err), err)
}

// respondMessage writes the {"message": ...} success body.
func respondMessage(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"message": message})
}
