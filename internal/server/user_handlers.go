package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /users/me. The relationship sets are resolved
// from the social graph rows on every call, never cached.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user := s.currentUser(c)

	followers, err := s.socialRepo.FollowerIDs(c.Context(), user.ID)
	if err != nil {
		return respondError(c, err)
	}
	following, err := s.socialRepo.FollowingIDs(c.Context(), user.ID)
	if err != nil {
		return respondError(c, err)
	}
	blocked, err := s.socialRepo.BlockedIDs(c.Context(), user.ID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.Profile{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		Role:         user.Role,
		Followers:    followers,
		Following:    following,
		BlockedUsers: blocked,
	})
}

// GetAllUsers handles GET /users, listing every account except the requester.
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	user := s.currentUser(c)

	users, err := s.userRepo.List(c.Context(), user.ID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(users)
}

// GetUser handles GET /users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	user, err := s.userRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}
