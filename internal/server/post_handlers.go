package server

import (
	"fmt"
	"strings"

	"ripple/internal/activity"
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreatePostRequest represents the post creation request body
type CreatePostRequest struct {
	Content string `json:"content"`
}

// CreatePost handles POST /posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	user := s.currentUser(c)

	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if strings.TrimSpace(req.Content) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Post content required"))
	}

	post := &models.Post{
		Content:  req.Content,
		AuthorID: user.ID,
	}
	if err := s.postRepo.Create(c.Context(), post); err != nil {
		return respondError(c, err)
	}
	post.Author = *user

	s.recorder.Record(c.Context(), models.ActivityPost,
		activity.Ref(user.ID), nil, activity.Ref(post.ID),
		fmt.Sprintf("%s made a post", user.Username))

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /posts, newest-first with the requester's blocked
// authors filtered out.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	user := s.currentUser(c)

	posts, err := s.postRepo.List(c.Context(), user.ID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(posts)
}

// DeletePost handles DELETE /posts/:id. The author may always delete their
// own post; admins and the owner may delete anyone's. Only a moderator
// deleting someone else's post leaves an audit record.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	user := s.currentUser(c)

	postID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	post, err := s.postRepo.GetByID(c.Context(), postID)
	if err != nil {
		return respondError(c, err)
	}

	isAuthor := post.AuthorID == user.ID
	if !isAuthor && !user.Role.CanModerate() {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Not authorized"))
	}

	if err := s.postRepo.Delete(c.Context(), post.ID); err != nil {
		return respondError(c, err)
	}

	if !isAuthor {
		s.recorder.Record(c.Context(), models.ActivityDeletePost,
			activity.Ref(user.ID), nil, nil,
			fmt.Sprintf("Post by %s deleted by '%s'", post.Author.Username, user.Role))
	}

	return respondMessage(c, "Post deleted successfully")
}

// LikePost handles POST /posts/:id/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	user := s.currentUser(c)

	postID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	post, err := s.postRepo.GetByID(c.Context(), postID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.postRepo.Like(c.Context(), user.ID, post.ID); err != nil {
		return respondError(c, err)
	}

	s.recorder.Record(c.Context(), models.ActivityLike,
		activity.Ref(user.ID), nil, activity.Ref(post.ID),
		fmt.Sprintf("%s liked %s's post", user.Username, post.Author.Username))

	return respondMessage(c, "Post liked successfully")
}

// UnlikePost handles POST /posts/:id/unlike. Idempotent.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	user := s.currentUser(c)

	postID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	post, err := s.postRepo.GetByID(c.Context(), postID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.postRepo.Unlike(c.Context(), user.ID, post.ID); err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, "Post unliked successfully")
}
