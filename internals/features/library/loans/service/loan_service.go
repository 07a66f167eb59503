// file: internals/features/library/loans/service/loan_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	bookModel "pustakaku_backend/internals/features/library/books/model"
	loanModel "pustakaku_backend/internals/features/library/loans/model"
	userModel "pustakaku_backend/internals/features/library/users/model"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrBookNotFound       = errors.New("book not found")
	ErrActiveLoanNotFound = errors.New("active loan not found for this user and book")

	ErrAlreadyBorrowedBySameUser = errors.New("book is already borrowed by this user")
	ErrAlreadyBorrowedByOther    = errors.New("book is already borrowed by another user")
	ErrAlreadyReturned           = errors.New("book has already been returned")

	ErrPersistence = errors.New("persistence failure")
)

// LoanService menjalankan state machine peminjaman: borrow dan return,
// keduanya dalam satu transaksi dengan kunci baris buku (FOR UPDATE).
type LoanService struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *LoanService { return &LoanService{DB: db} }

// Borrow membuat pinjaman aktif baru untuk (user, book).
// Urutan cek-lalu-insert dikunci lewat baris buku; dua borrow bersamaan
// untuk buku yang sama tidak mungkin dua-duanya sukses. Index unik partial
// uq_loans_one_active_per_book jadi backstop kalau kunci tidak terpakai
// (mis. lewat jalur tulis lain).
func (s *LoanService) Borrow(ctx context.Context, userID, bookID int) (*loanModel.LoanModel, error) {
	tx := s.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, persistence(tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// 1) Kunci baris buku (FOR UPDATE) — serialisasi borrow per buku
	var book bookModel.BookModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("book_id = ?", bookID).
		First(&book).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, persistence(err)
	}

	// 2) User harus ada
	var user userModel.UserModel
	if err := tx.
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, persistence(err)
	}

	// 3) Pinjaman aktif milik user yang sama?
	var existing loanModel.LoanModel
	err := tx.
		Where("loan_user_id = ? AND loan_book_id = ? AND loan_returned_at IS NULL", userID, bookID).
		First(&existing).Error
	switch {
	case err == nil:
		tx.Rollback()
		return nil, ErrAlreadyBorrowedBySameUser
	case !errors.Is(err, gorm.ErrRecordNotFound):
		tx.Rollback()
		return nil, persistence(err)
	}

	// 4) Pinjaman aktif oleh user lain?
	err = tx.
		Where("loan_book_id = ? AND loan_returned_at IS NULL", bookID).
		First(&existing).Error
	switch {
	case err == nil:
		tx.Rollback()
		return nil, ErrAlreadyBorrowedByOther
	case !errors.Is(err, gorm.ErrRecordNotFound):
		tx.Rollback()
		return nil, persistence(err)
	}

	// 5) Insert pinjaman baru (returned_at & score NULL)
	loan := loanModel.LoanModel{
		LoanUserID:     userID,
		LoanBookID:     bookID,
		LoanBorrowedAt: time.Now(),
	}
	if err := tx.Create(&loan).Error; err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			// race kalah lawan borrow lain → sama dengan "sudah dipinjam"
			return nil, ErrAlreadyBorrowedByOther
		}
		return nil, persistence(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, persistence(err)
	}

	log.Printf("[LOANS][BORROW] user=%d book=%d loan=%d", userID, bookID, loan.LoanID)
	return &loan, nil
}

// Return menutup pinjaman aktif, menyimpan skor, dan menghitung ulang
// rata-rata rating buku — ketiga tulisan dalam satu transaksi: semua
// terlihat atau tidak sama sekali.
func (s *LoanService) Return(ctx context.Context, userID, bookID int, score float64) (*loanModel.LoanModel, error) {
	tx := s.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, persistence(tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// 1) Kunci baris buku — return untuk buku yang sama serial,
	//    buku berbeda tidak saling blok
	var book bookModel.BookModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("book_id = ?", bookID).
		First(&book).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, persistence(err)
	}

	// 2) Cari pinjaman aktif (user, book)
	var loan loanModel.LoanModel
	if err := tx.
		Where("loan_user_id = ? AND loan_book_id = ? AND loan_returned_at IS NULL", userID, bookID).
		First(&loan).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActiveLoanNotFound
		}
		return nil, persistence(err)
	}

	// 3) Re-check defensif; filter di atas sudah menjamin, tapi murah dicek
	if loan.LoanReturnedAt != nil {
		tx.Rollback()
		return nil, ErrAlreadyReturned
	}

	// 4) Tutup pinjaman: returned_at + score
	now := time.Now()
	if err := tx.
		Model(&loanModel.LoanModel{}).
		Where("loan_id = ?", loan.LoanID).
		Updates(map[string]interface{}{
			"loan_returned_at": now,
			"loan_score":       score,
		}).Error; err != nil {
		tx.Rollback()
		return nil, persistence(err)
	}
	loan.LoanReturnedAt = &now
	loan.LoanScore = &score

	// 5) Hitung ulang rating dari semua pinjaman yang sudah kembali
	var scores []float64
	if err := tx.
		Model(&loanModel.LoanModel{}).
		Where("loan_book_id = ? AND loan_returned_at IS NOT NULL", bookID).
		Pluck("loan_score", &scores).Error; err != nil {
		tx.Rollback()
		return nil, persistence(err)
	}

	avg := ComputeAverage(scores)
	var ratingValue interface{} = avg
	if avg == UnratedSentinel {
		ratingValue = gorm.Expr("NULL")
	}

	// 6) Simpan rating buku
	if err := tx.
		Model(&bookModel.BookModel{}).
		Where("book_id = ?", bookID).
		Update("book_average_rating", ratingValue).Error; err != nil {
		tx.Rollback()
		return nil, persistence(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, persistence(err)
	}

	log.Printf("[LOANS][RETURN] user=%d book=%d loan=%d score=%.2f avg=%.2f", userID, bookID, loan.LoanID, score, avg)
	return &loan, nil
}

func persistence(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
