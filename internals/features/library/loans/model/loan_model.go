// file: internals/features/library/loans/model/loan_model.go
package model

import (
	"time"
)

// LoanModel: satu baris per peminjaman. loan_returned_at NULL = pinjaman aktif.
// loan_score hanya terisi saat pengembalian (score ⇔ returned).
type LoanModel struct {
	LoanID     int `gorm:"primaryKey;autoIncrement;column:loan_id" json:"loan_id"`
	LoanUserID int `gorm:"not null;index;column:loan_user_id" json:"loan_user_id"`
	LoanBookID int `gorm:"not null;index;column:loan_book_id" json:"loan_book_id"`

	LoanBorrowedAt time.Time  `gorm:"type:timestamptz;not null;default:now();column:loan_borrowed_at" json:"loan_borrowed_at"`
	LoanReturnedAt *time.Time `gorm:"type:timestamptz;column:loan_returned_at" json:"loan_returned_at,omitempty"`
	LoanScore      *float64   `gorm:"type:numeric(5,2);column:loan_score" json:"loan_score,omitempty"`
}

func (LoanModel) TableName() string { return "loans" }

// IsActive: buku masih di luar.
func (l *LoanModel) IsActive() bool { return l.LoanReturnedAt == nil }
