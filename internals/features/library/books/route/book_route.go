package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookController "pustakaku_backend/internals/features/library/books/controller"
	"pustakaku_backend/internals/middlewares/auth"
)

// Panggil: route.BookRoutes(app.Group("/api"), db)
//
//	GET  /api/books
//	GET  /api/books/:id
//	POST /api/books        (perlu token pustakawan)
func BookRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &bookController.BooksController{
		DB:        db,
		Validator: validator.New(),
	}

	books := r.Group("/books")
	books.Get("/", ctl.List)
	books.Get("/:id", ctl.GetByID)
	books.Post("/", auth.AuthMiddleware(), ctl.Create)
}
