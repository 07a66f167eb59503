// file: internals/features/library/users/controller/user_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "pustakaku_backend/internals/features/library/users/dto"
	userModel "pustakaku_backend/internals/features/library/users/model"
	helper "pustakaku_backend/internals/helpers"
)

type UsersController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

// POST /api/users
func (h *UsersController) Create(c *fiber.Ctx) error {
	var p dto.UserCreateRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	p.Normalize()
	if err := h.Validator.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	user := p.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(user).Error; err != nil {
		log.Printf("[USERS][CREATE] insert err: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created", dto.FromModel(user))
}

// GET /api/users
func (h *UsersController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&userModel.UserModel{}).
		Count(&total).Error; err != nil {
		log.Printf("[USERS][LIST] count err: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list users")
	}

	var users []userModel.UserModel
	if err := h.DB.WithContext(c.UserContext()).
		Order("user_id ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&users).Error; err != nil {
		log.Printf("[USERS][LIST] query err: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list users")
	}

	return helper.Success(c, "OK", fiber.Map{
		"users":      dto.FromModels(users),
		"pagination": helper.BuildPagination(paging, total, len(users)),
	})
}

// GET /api/users/:id — ikut memuat riwayat pinjaman
func (h *UsersController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user userModel.UserModel
	if err := h.DB.WithContext(c.UserContext()).
		Preload("Loans").
		Where("user_id = ?", id).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("[USERS][GET] query err: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	return helper.Success(c, "OK", dto.FromModel(&user))
}
