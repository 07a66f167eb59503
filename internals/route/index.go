// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "pustakaku_backend/internals/features/auth/route"
	bookRoute "pustakaku_backend/internals/features/library/books/route"
	loanRoute "pustakaku_backend/internals/features/library/loans/route"
	userRoute "pustakaku_backend/internals/features/library/users/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")

	authRoute.AuthRoutes(api)
	bookRoute.BookRoutes(api, db)
	userRoute.UserRoutes(api, db)
	loanRoute.LoanRoutes(api, db)
}
