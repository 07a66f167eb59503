// file: internals/features/library/loans/controller/loan_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	dto "pustakaku_backend/internals/features/library/loans/dto"
	service "pustakaku_backend/internals/features/library/loans/service"
	helper "pustakaku_backend/internals/helpers"
)

type LoansController struct {
	Service   *service.LoanService
	Validator *validator.Validate
}

// POST /api/users/:user_id/borrow/:book_id
func (h *LoansController) Borrow(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("user_id")
	if err != nil || userID < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}
	bookID, err := c.ParamsInt("book_id")
	if err != nil || bookID < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid book id")
	}

	loan, err := h.Service.Borrow(c.UserContext(), userID, bookID)
	if err != nil {
		return writeLoanError(c, "BORROW", err)
	}

	return helper.Success(c, "Book borrowed", dto.FromModel(loan))
}

// POST /api/users/:user_id/return/:book_id
func (h *LoansController) Return(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("user_id")
	if err != nil || userID < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}
	bookID, err := c.ParamsInt("book_id")
	if err != nil || bookID < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid book id")
	}

	var p dto.ReturnBookRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := p.Validate(h.Validator); err != nil {
		if errors.Is(err, dto.ErrScoreTooPrecise) {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.ValidationError(c, err)
	}

	loan, err := h.Service.Return(c.UserContext(), userID, bookID, *p.Score)
	if err != nil {
		return writeLoanError(c, "RETURN", err)
	}

	return helper.Success(c, "Book returned", dto.FromModel(loan))
}

// writeLoanError memetakan error service ke status HTTP:
// NotFound → 404, pelanggaran state machine → 400, sisanya → 500.
func writeLoanError(c *fiber.Ctx, op string, err error) error {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrBookNotFound),
		errors.Is(err, service.ErrActiveLoanNotFound):
		return helper.Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAlreadyBorrowedBySameUser),
		errors.Is(err, service.ErrAlreadyBorrowedByOther),
		errors.Is(err, service.ErrAlreadyReturned):
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	default:
		log.Printf("[LOANS][%s] err: %v", op, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
