// file: internals/features/library/users/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	loanDTO "pustakaku_backend/internals/features/library/loans/dto"
	model "pustakaku_backend/internals/features/library/users/model"
)

/* =========================================================
   REQUEST
   ========================================================= */

type UserCreateRequest struct {
	UserName string `json:"user_name" validate:"required,min=1,max=100"`
}

func (r *UserCreateRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
}

func (r *UserCreateRequest) ToModel() *model.UserModel {
	return &model.UserModel{
		UserName: r.UserName,
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type UserResponse struct {
	UserID        int                    `json:"user_id"`
	UserName      string                 `json:"user_name"`
	UserCreatedAt time.Time              `json:"user_created_at"`
	Loans         []loanDTO.LoanResponse `json:"loans,omitempty"`
}

func FromModel(m *model.UserModel) *UserResponse {
	return &UserResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserCreatedAt: m.UserCreatedAt,
		Loans:         loanDTO.FromModels(m.Loans),
	}
}

func FromModels(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModel(&ms[i]))
	}
	return out
}
