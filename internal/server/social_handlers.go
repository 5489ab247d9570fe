package server

import (
	"fmt"

	"ripple/internal/activity"
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	user := s.currentUser(c)

	targetID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	target, err := s.userRepo.GetByID(c.Context(), targetID)
	if err != nil {
		return respondError(c, err)
	}

	if user.ID == target.ID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Cannot follow yourself"))
	}

	if err := s.socialRepo.Follow(c.Context(), user.ID, target.ID); err != nil {
		return respondError(c, err)
	}

	s.recorder.Record(c.Context(), models.ActivityFollow,
		activity.Ref(user.ID), activity.Ref(target.ID), nil,
		fmt.Sprintf("%s followed %s", user.Username, target.Username))

	return respondMessage(c, "Successfully followed user")
}

// UnfollowUser handles POST /users/:id/unfollow. Removing an edge that is
// not there succeeds; only a missing target is an error.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	user := s.currentUser(c)

	targetID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	target, err := s.userRepo.GetByID(c.Context(), targetID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.socialRepo.Unfollow(c.Context(), user.ID, target.ID); err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, "Successfully unfollowed user")
}

// BlockUser handles POST /users/:id/block. Blocking is one-directional and
// leaves any existing follow edges alone.
func (s *Server) BlockUser(c *fiber.Ctx) error {
	user := s.currentUser(c)

	targetID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	target, err := s.userRepo.GetByID(c.Context(), targetID)
	if err != nil {
		return respondError(c, err)
	}

	if user.ID == target.ID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Cannot block yourself"))
	}

	if err := s.socialRepo.Block(c.Context(), user.ID, target.ID); err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, "User blocked successfully")
}

// UnblockUser handles POST /users/:id/unblock. Always succeeds: the target
// is never looked up, and removing an absent block is a no-op.
func (s *Server) UnblockUser(c *fiber.Ctx) error {
	user := s.currentUser(c)

	if targetID, err := paramID(c, "id"); err == nil {
		if err := s.socialRepo.Unblock(c.Context(), user.ID, targetID); err != nil {
			return respondError(c, err)
		}
	}

	return respondMessage(c, "User unblocked successfully")
}
