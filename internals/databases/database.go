package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pustakaku_backend/internals/configs"
	bookModel "pustakaku_backend/internals/features/library/books/model"
	loanModel "pustakaku_backend/internals/features/library/loans/model"
	userModel "pustakaku_backend/internals/features/library/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=pustakaku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menyiapkan skema: tabel + index unik partial yang menjaga
// "maksimal satu pinjaman aktif per buku" di level storage.
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&bookModel.BookModel{},
		&loanModel.LoanModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}

	// Backstop untuk race borrow: insert kedua kena unique_violation (23505),
	// bukan dua loan aktif untuk buku yang sama.
	if err := DB.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_loans_one_active_per_book
		 ON loans (loan_book_id) WHERE loan_returned_at IS NULL`,
	).Error; err != nil {
		log.Fatalf("❌ Gagal membuat index uq_loans_one_active_per_book: %v", err)
	}

	log.Println("✅ Schema ready.")
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
