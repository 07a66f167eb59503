package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	loanController "pustakaku_backend/internals/features/library/loans/controller"
	loanService "pustakaku_backend/internals/features/library/loans/service"
)

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	ctl := &loanController.LoansController{
		Service:   loanService.New(gdb),
		Validator: validator.New(),
	}

	app := fiber.New()
	app.Post("/users/:user_id/borrow/:book_id", ctl.Borrow)
	app.Post("/users/:user_id/return/:book_id", ctl.Return)
	return app, mock
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestBorrowConflictMapsToBadRequest(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "books" WHERE book_id = (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"book_id", "book_name", "book_average_rating", "book_created_at", "book_updated_at"}).
			AddRow(1, "Laskar Pelangi", nil, time.Now(), time.Now()))
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE user_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "user_name", "user_created_at", "user_updated_at"}).
			AddRow(1, "Andi Pratama", time.Now(), time.Now()))
	mock.ExpectQuery(`SELECT (.+) FROM "loans" WHERE loan_user_id = (.+) AND loan_book_id = (.+) AND loan_returned_at IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"loan_id", "loan_user_id", "loan_book_id", "loan_borrowed_at", "loan_returned_at", "loan_score"}).
			AddRow(5, 1, 1, time.Now(), nil, nil))
	mock.ExpectRollback()

	resp := doJSON(t, app, http.MethodPost, "/users/1/borrow/1", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, loanService.ErrAlreadyBorrowedBySameUser.Error(), body["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBorrowMissingBookMapsToNotFound(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "books" WHERE book_id = (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"book_id", "book_name", "book_average_rating", "book_created_at", "book_updated_at"}))
	mock.ExpectRollback()

	resp := doJSON(t, app, http.MethodPost, "/users/1/borrow/42", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBorrowRejectsBadUserParam(t *testing.T) {
	app, _ := newTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/users/abc/borrow/1", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestReturnRejectsOutOfRangeScore(t *testing.T) {
	app, _ := newTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/users/1/return/1", `{"score": 11}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestReturnRejectsTooPreciseScore(t *testing.T) {
	app, _ := newTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/users/1/return/1", `{"score": 7.123}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestReturnHappyPathReturnsClosedLoan(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "books" WHERE book_id = (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"book_id", "book_name", "book_average_rating", "book_created_at", "book_updated_at"}).
			AddRow(1, "Laskar Pelangi", nil, time.Now(), time.Now()))
	mock.ExpectQuery(`SELECT (.+) FROM "loans" WHERE loan_user_id = (.+) AND loan_book_id = (.+) AND loan_returned_at IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"loan_id", "loan_user_id", "loan_book_id", "loan_borrowed_at", "loan_returned_at", "loan_score"}).
			AddRow(7, 1, 1, time.Now().Add(-24*time.Hour), nil, nil))
	mock.ExpectExec(`UPDATE "loans" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT "loan_score" FROM "loans" WHERE loan_book_id = (.+) AND loan_returned_at IS NOT NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"loan_score"}).AddRow(7.0))
	mock.ExpectExec(`UPDATE "books" SET "book_average_rating"`).
		WithArgs(7.0, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp := doJSON(t, app, http.MethodPost, "/users/1/return/1", `{"score": 7}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Status string `json:"status"`
		Data   struct {
			LoanID         int      `json:"loan_id"`
			LoanReturnedAt *string  `json:"loan_returned_at"`
			LoanScore      *float64 `json:"loan_score"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, 7, body.Data.LoanID)
	require.NotNil(t, body.Data.LoanReturnedAt)
	require.NotNil(t, body.Data.LoanScore)
	assert.Equal(t, 7.0, *body.Data.LoanScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}
