// file: internals/features/library/books/controller/book_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "pustakaku_backend/internals/features/library/books/dto"
	bookModel "pustakaku_backend/internals/features/library/books/model"
	helper "pustakaku_backend/internals/helpers"
)

type BooksController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

// POST /api/books
func (h *BooksController) Create(c *fiber.Ctx) error {
	var p dto.BookCreateRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	p.Normalize()
	if err := h.Validator.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	book := p.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(book).Error; err != nil {
		log.Printf("[BOOKS][CREATE] insert err: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create book")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Book created", dto.FromModel(book))
}

// GET /api/books
func (h *BooksController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&bookModel.BookModel{}).
		Count(&total).Error; err != nil {
		log.Printf("[BOOKS][LIST] count err: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list books")
	}

	var books []bookModel.BookModel
	if err := h.DB.WithContext(c.UserContext()).
		Order("book_id ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&books).Error; err != nil {
		log.Printf("[BOOKS][LIST] query err: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list books")
	}

	return helper.Success(c, "OK", fiber.Map{
		"books":      dto.FromModels(books),
		"pagination": helper.BuildPagination(paging, total, len(books)),
	})
}

// GET /api/books/:id
func (h *BooksController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid book id")
	}

	var book bookModel.BookModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("book_id = ?", id).
		First(&book).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Book not found")
		}
		log.Printf("[BOOKS][GET] query err: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load book")
	}

	return helper.Success(c, "OK", dto.FromModel(&book))
}
