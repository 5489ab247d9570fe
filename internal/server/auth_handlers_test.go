package server

import (
	"testing"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	_, app := setupTestServer(t)

	t.Run("first user becomes owner", func(t *testing.T) {
		user, token := signupUser(t, app, "alice")
		assert.Equal(t, models.RoleOwner, user.Role)

		resp := doJSON(t, app, fiber.MethodGet, "/users/me", token, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var profile models.Profile
		decodeBody(t, resp, &profile)
		assert.Equal(t, "alice", profile.Username)
		assert.Equal(t, models.RoleOwner, profile.Role)
	})

	t.Run("later users are plain users", func(t *testing.T) {
		user, _ := signupUser(t, app, "bob")
		assert.Equal(t, models.RoleUser, user.Role)
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, "/auth/signup", "", fiber.Map{
			"username": "carol",
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "Missing fields", body.Error)
	})

	t.Run("duplicate user", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, "/auth/signup", "", fiber.Map{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "password123",
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "User already exists", body.Error)
	})

	t.Run("password is never serialized", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, "/auth/signup", "", fiber.Map{
			"username": "dave",
			"email":    "dave@example.com",
			"password": "password123",
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var raw map[string]any
		decodeBody(t, resp, &raw)
		userMap, ok := raw["user"].(map[string]any)
		require.True(t, ok)
		assert.NotContains(t, userMap, "password")
	})
}

func TestLogin(t *testing.T) {
	_, app := setupTestServer(t)
	signupUser(t, app, "alice")

	t.Run("success", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, "/auth/login", "", fiber.Map{
			"email":    "alice@example.com",
			"password": "password123",
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var auth AuthResponse
		decodeBody(t, resp, &auth)
		assert.NotEmpty(t, auth.Token)
		assert.Equal(t, "alice", auth.User.Username)

		// The issued token authenticates.
		resp = doJSON(t, app, fiber.MethodGet, "/users/me", auth.Token, nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, "/auth/login", "", fiber.Map{
			"email":    "alice@example.com",
			"password": "nope",
		})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		var body models.ErrorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "Invalid credentials", body.Error)
	})

	t.Run("unknown email", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, "/auth/login", "", fiber.Map{
			"email":    "nobody@example.com",
			"password": "password123",
		})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, "/auth/login", "", fiber.Map{
			"email": "alice@example.com",
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
