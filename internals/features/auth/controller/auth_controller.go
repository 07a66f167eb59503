// file: internals/features/auth/controller/auth_controller.go
package controller

import (
	"crypto/subtle"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"pustakaku_backend/internals/configs"
	"pustakaku_backend/internals/constants"
	dto "pustakaku_backend/internals/features/auth/dto"
	helper "pustakaku_backend/internals/helpers"
)

const tokenTTL = 12 * time.Hour

type AuthController struct {
	Validator *validator.Validate
}

// POST /api/auth/login — login pustakawan, kredensial dari ENV.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var p dto.LoginRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	p.Normalize()
	if err := h.Validator.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	if configs.LibrarianPasswordHash == "" || configs.JWTSecret == "" {
		log.Println("[AUTH][LOGIN] kredensial pustakawan / JWT_SECRET belum diset")
		return helper.Error(c, fiber.StatusInternalServerError, "Auth is not configured")
	}

	userOK := subtle.ConstantTimeCompare([]byte(p.Username), []byte(configs.LibrarianUsername)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(configs.LibrarianPasswordHash), []byte(p.Password))
	if !userOK || passErr != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  p.Username,
		"role": constants.RoleLibrarian,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Printf("[AUTH][LOGIN] sign err: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.Success(c, "Login success", dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(tokenTTL.Seconds()),
	})
}
