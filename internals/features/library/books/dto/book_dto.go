// file: internals/features/library/books/dto/book_dto.go
package dto

import (
	"strings"
	"time"

	model "pustakaku_backend/internals/features/library/books/model"
)

// Nilai rating yang dikembalikan API selama buku belum pernah dirating.
const UnratedRating = -1

/* =========================================================
   REQUEST
   ========================================================= */

type BookCreateRequest struct {
	BookName string `json:"book_name" validate:"required,min=1,max=250"`
}

func (r *BookCreateRequest) Normalize() {
	r.BookName = strings.TrimSpace(r.BookName)
}

func (r *BookCreateRequest) ToModel() *model.BookModel {
	return &model.BookModel{
		BookName: r.BookName,
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type BookResponse struct {
	BookID            int       `json:"book_id"`
	BookName          string    `json:"book_name"`
	BookAverageRating float64   `json:"book_average_rating"`
	BookCreatedAt     time.Time `json:"book_created_at"`
}

func FromModel(m *model.BookModel) *BookResponse {
	rating := float64(UnratedRating)
	if m.BookAverageRating != nil {
		rating = *m.BookAverageRating
	}
	return &BookResponse{
		BookID:            m.BookID,
		BookName:          m.BookName,
		BookAverageRating: rating,
		BookCreatedAt:     m.BookCreatedAt,
	}
}

func FromModels(ms []model.BookModel) []BookResponse {
	out := make([]BookResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModel(&ms[i]))
	}
	return out
}
