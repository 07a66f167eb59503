package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "pustakaku_backend/internals/features/library/users/controller"
	"pustakaku_backend/internals/middlewares/auth"
)

// Panggil: route.UserRoutes(app.Group("/api"), db)
//
//	GET  /api/users
//	GET  /api/users/:id
//	POST /api/users        (perlu token pustakawan)
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &userController.UsersController{
		DB:        db,
		Validator: validator.New(),
	}

	users := r.Group("/users")
	users.Get("/", ctl.List)
	users.Get("/:id", ctl.GetByID)
	users.Post("/", auth.AuthMiddleware(), ctl.Create)
}
