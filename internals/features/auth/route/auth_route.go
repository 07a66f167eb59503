package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	authController "pustakaku_backend/internals/features/auth/controller"
)

// Panggil: route.AuthRoutes(app.Group("/api"))
//
//	POST /api/auth/login
func AuthRoutes(r fiber.Router) {
	ctl := &authController.AuthController{Validator: validator.New()}

	authGroup := r.Group("/auth")
	authGroup.Post("/login", ctl.Login)
}
