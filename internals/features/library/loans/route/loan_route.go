package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	loanController "pustakaku_backend/internals/features/library/loans/controller"
	loanService "pustakaku_backend/internals/features/library/loans/service"
	"pustakaku_backend/internals/middlewares/auth"
)

// Panggil: route.LoanRoutes(app.Group("/api"), db)
//
//	POST /api/users/:user_id/borrow/:book_id   (perlu token pustakawan)
//	POST /api/users/:user_id/return/:book_id   (perlu token pustakawan)
func LoanRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &loanController.LoansController{
		Service:   loanService.New(db),
		Validator: validator.New(),
	}

	guard := auth.AuthMiddleware()
	users := r.Group("/users")
	users.Post("/:user_id/borrow/:book_id", guard, ctl.Borrow)
	users.Post("/:user_id/return/:book_id", guard, ctl.Return)
}
