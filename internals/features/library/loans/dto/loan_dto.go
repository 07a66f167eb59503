// file: internals/features/library/loans/dto/loan_dto.go
package dto

import (
	"errors"
	"math"
	"time"

	"github.com/go-playground/validator/v10"

	model "pustakaku_backend/internals/features/library/loans/model"
)

/* =========================================================
   REQUEST
   ========================================================= */

// ReturnBookRequest: skor wajib, 0..10 inklusif, maksimal 2 angka desimal.
// Pointer supaya skor 0 tetap lolos "required".
type ReturnBookRequest struct {
	Score *float64 `json:"score" validate:"required,gte=0,lte=10"`
}

var ErrScoreTooPrecise = errors.New("score must have at most 2 decimal places")

// Validate menjalankan validasi struct + cek 2 desimal (validator tidak punya tag-nya).
func (r *ReturnBookRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	s := *r.Score * 100
	if math.Abs(s-math.Round(s)) > 1e-9 {
		return ErrScoreTooPrecise
	}
	return nil
}

/* =========================================================
   RESPONSE
   ========================================================= */

type LoanResponse struct {
	LoanID         int        `json:"loan_id"`
	LoanUserID     int        `json:"loan_user_id"`
	LoanBookID     int        `json:"loan_book_id"`
	LoanBorrowedAt time.Time  `json:"loan_borrowed_at"`
	LoanReturnedAt *time.Time `json:"loan_returned_at"`
	LoanScore      *float64   `json:"loan_score"`
}

func FromModel(m *model.LoanModel) *LoanResponse {
	return &LoanResponse{
		LoanID:         m.LoanID,
		LoanUserID:     m.LoanUserID,
		LoanBookID:     m.LoanBookID,
		LoanBorrowedAt: m.LoanBorrowedAt,
		LoanReturnedAt: m.LoanReturnedAt,
		LoanScore:      m.LoanScore,
	}
}

func FromModels(ms []model.LoanModel) []LoanResponse {
	if len(ms) == 0 {
		return nil
	}
	out := make([]LoanResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModel(&ms[i]))
	}
	return out
}
