package server

import (
	"fmt"
	"testing"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listPosts(t *testing.T, app *fiber.App, token string) []models.Post {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodGet, "/posts", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var posts []models.Post
	decodeBody(t, resp, &posts)
	return posts
}

func TestCreatePost(t *testing.T) {
	_, app := setupTestServer(t)
	alice, aliceToken := signupUser(t, app, "alice")

	t.Run("success", func(t *testing.T) {
		post := createPost(t, app, aliceToken, "hello world")
		assert.Equal(t, "hello world", post.Content)
		assert.Equal(t, alice.ID, post.AuthorID)
		assert.Equal(t, "alice", post.Author.Username)
	})

	t.Run("empty content", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, "/posts", aliceToken, fiber.Map{"content": "   "})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "Post content required", body.Error)
	})
}

func TestListPosts(t *testing.T) {
	_, app := setupTestServer(t)
	_, aliceToken := signupUser(t, app, "alice")
	bob, bobToken := signupUser(t, app, "bob")
	_, carolToken := signupUser(t, app, "carol")

	first := createPost(t, app, aliceToken, "first")
	second := createPost(t, app, bobToken, "second")

	t.Run("newest first with author and likes", func(t *testing.T) {
		posts := listPosts(t, app, carolToken)
		require.Len(t, posts, 2)
		assert.Equal(t, second.ID, posts[0].ID)
		assert.Equal(t, first.ID, posts[1].ID)
		assert.Equal(t, "bob", posts[0].Author.Username)
		assert.Equal(t, 0, posts[0].LikesCount)
	})

	t.Run("blocked author filtered for the blocker only", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/users/%d/block", bob.ID), aliceToken, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		// Blocker no longer sees bob's post.
		for _, p := range listPosts(t, app, aliceToken) {
			assert.NotEqual(t, bob.ID, p.AuthorID)
		}

		// A third party still sees everything; so does the blocked user.
		assert.Len(t, listPosts(t, app, carolToken), 2)
		assert.Len(t, listPosts(t, app, bobToken), 2)
	})
}

func TestLikeUnlike(t *testing.T) {
	_, app := setupTestServer(t)
	_, aliceToken := signupUser(t, app, "alice")
	_, bobToken := signupUser(t, app, "bob")
	post := createPost(t, app, bobToken, "like me")

	t.Run("like increments count", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/posts/%d/like", post.ID), aliceToken, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		posts := listPosts(t, app, aliceToken)
		require.Len(t, posts, 1)
		assert.Equal(t, 1, posts[0].LikesCount)
	})

	t.Run("double like fails", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/posts/%d/like", post.ID), aliceToken, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "Already liked this post", body.Error)
	})

	t.Run("unlike is idempotent", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/posts/%d/unlike", post.ID), aliceToken, nil)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		}

		posts := listPosts(t, app, aliceToken)
		require.Len(t, posts, 1)
		assert.Equal(t, 0, posts[0].LikesCount)
	})

	t.Run("missing post", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, "/posts/999/like", aliceToken, nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		resp = doJSON(t, app, fiber.MethodPost, "/posts/999/unlike", aliceToken, nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestDeletePost(t *testing.T) {
	_, app := setupTestServer(t)
	_, ownerToken := signupUser(t, app, "root")
	_, aliceToken := signupUser(t, app, "alice")
	_, bobToken := signupUser(t, app, "bob")

	t.Run("author deletes own post", func(t *testing.T) {
		post := createPost(t, app, aliceToken, "mine")
		resp := doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/posts/%d", post.ID), aliceToken, nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Empty(t, listPosts(t, app, aliceToken))
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		post := createPost(t, app, aliceToken, "hands off")
		resp := doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/posts/%d", post.ID), bobToken, nil)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

		var body models.ErrorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "Not authorized", body.Error)
	})

	t.Run("moderator deletes through the ordinary endpoint", func(t *testing.T) {
		post := createPost(t, app, bobToken, "moderated away")
		resp := doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/posts/%d", post.ID), ownerToken, nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing post", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodDelete, "/posts/999", aliceToken, nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
