package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"pustakaku_backend/internals/configs"
	authController "pustakaku_backend/internals/features/auth/controller"
	"pustakaku_backend/internals/middlewares/auth"
)

func setupAuth(t *testing.T) *fiber.App {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	require.NoError(t, err)
	configs.JWTSecret = "test-secret"
	configs.LibrarianUsername = "librarian"
	configs.LibrarianPasswordHash = string(hash)

	ctl := &authController.AuthController{Validator: validator.New()}
	app := fiber.New()
	app.Post("/auth/login", ctl.Login)
	app.Post("/protected", auth.AuthMiddleware(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func login(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLoginIssuesUsableToken(t *testing.T) {
	app := setupAuth(t)

	resp := login(t, app, `{"username":"librarian","password":"rahasia123"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Bearer", body.Data.TokenType)
	require.NotEmpty(t, body.Data.AccessToken)

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+body.Data.AccessToken)
	protected, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, protected.StatusCode)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app := setupAuth(t)
	resp := login(t, app, `{"username":"librarian","password":"salah"}`)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRouteRejectsMissingToken(t *testing.T) {
	app := setupAuth(t)
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRouteRejectsGarbageToken(t *testing.T) {
	app := setupAuth(t)
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
