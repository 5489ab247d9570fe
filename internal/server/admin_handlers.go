package server

import (
	"fmt"

	"ripple/internal/activity"
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// PromoteRequest represents the admin-promotion request body
type PromoteRequest struct {
	UserID uint `json:"userId"`
}

// DeleteUser handles DELETE /admin/users/:id. The owner account can never
// be deleted; for anyone else the account and everything referencing it go
// in one transaction, so a refused delete leaves no partial state.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	actor := s.currentUser(c)

	targetID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	target, err := s.userRepo.GetByID(c.Context(), targetID)
	if err != nil {
		return respondError(c, err)
	}

	if target.Role == models.RoleOwner {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Cannot delete owner"))
	}

	if err := s.userRepo.Delete(c.Context(), target.ID); err != nil {
		return respondError(c, err)
	}

	s.recorder.Record(c.Context(), models.ActivityDeleteUser,
		activity.Ref(actor.ID), activity.Ref(target.ID), nil,
		fmt.Sprintf("User %s deleted by '%s'", target.Username, actor.Role))

	return respondMessage(c, "User deleted successfully")
}

// DeletePostModerated handles DELETE /admin/posts/:id, bypassing the
// ownership check that the ordinary delete endpoint applies.
func (s *Server) DeletePostModerated(c *fiber.Ctx) error {
	actor := s.currentUser(c)

	postID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	post, err := s.postRepo.GetByID(c.Context(), postID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.postRepo.Delete(c.Context(), post.ID); err != nil {
		return respondError(c, err)
	}

	s.recorder.Record(c.Context(), models.ActivityDeletePost,
		activity.Ref(actor.ID), nil, nil,
		fmt.Sprintf("Post by %s deleted by '%s'", post.Author.Username, actor.Role))

	return respondMessage(c, "Post deleted successfully")
}

// RemoveLike handles DELETE /admin/likes/:postId/:userId. Idempotent: only
// a missing post is an error.
func (s *Server) RemoveLike(c *fiber.Ctx) error {
	postID, err := paramID(c, "postId")
	if err != nil {
		return respondError(c, err)
	}
	userID, err := paramID(c, "userId")
	if err != nil {
		return respondError(c, err)
	}

	post, err := s.postRepo.GetByID(c.Context(), postID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.postRepo.Unlike(c.Context(), userID, post.ID); err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, "Like deleted successfully")
}

// PromoteToAdmin handles POST /owner/admins. The owner role is out of
// bounds in both directions: it is never granted here and never replaced.
func (s *Server) PromoteToAdmin(c *fiber.Ctx) error {
	var req PromoteRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	target, err := s.userRepo.GetByID(c.Context(), req.UserID)
	if err != nil {
		return respondError(c, err)
	}

	if target.Role == models.RoleOwner {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Cannot modify owner role"))
	}
	if target.Role == models.RoleAdmin {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("User is already an admin"))
	}

	target.Role = models.RoleAdmin
	if err := s.userRepo.Update(c.Context(), target); err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, "Admin created successfully")
}

// DemoteAdmin handles DELETE /owner/admins/:id. Only a current admin can
// be demoted, which also keeps the owner untouchable here.
func (s *Server) DemoteAdmin(c *fiber.Ctx) error {
	targetID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	target, err := s.userRepo.GetByID(c.Context(), targetID)
	if err != nil {
		return respondError(c, err)
	}

	if target.Role != models.RoleAdmin {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("User is not an admin"))
	}

	target.Role = models.RoleUser
	if err := s.userRepo.Update(c.Context(), target); err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, "Admin removed successfully")
}
