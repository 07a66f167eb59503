// file: internals/seeds/runner.go
package seeds

import (
	"log"

	"gorm.io/gorm"

	bookModel "pustakaku_backend/internals/features/library/books/model"
	userModel "pustakaku_backend/internals/features/library/users/model"
)

// Run mengisi data demo kalau tabel masih kosong (aktif via SEED_DATA=true).
func Run(db *gorm.DB) {
	var userCount int64
	if err := db.Model(&userModel.UserModel{}).Count(&userCount).Error; err != nil {
		log.Printf("[SEEDS] count users err: %v", err)
		return
	}
	if userCount == 0 {
		users := []userModel.UserModel{
			{UserName: "Andi Pratama"},
			{UserName: "Siti Rahma"},
			{UserName: "Budi Santoso"},
		}
		if err := db.Create(&users).Error; err != nil {
			log.Printf("[SEEDS] seed users err: %v", err)
		} else {
			log.Printf("[SEEDS] %d users seeded", len(users))
		}
	}

	var bookCount int64
	if err := db.Model(&bookModel.BookModel{}).Count(&bookCount).Error; err != nil {
		log.Printf("[SEEDS] count books err: %v", err)
		return
	}
	if bookCount == 0 {
		books := []bookModel.BookModel{
			{BookName: "Laskar Pelangi"},
			{BookName: "Bumi Manusia"},
			{BookName: "Cantik Itu Luka"},
		}
		if err := db.Create(&books).Error; err != nil {
			log.Printf("[SEEDS] seed books err: %v", err)
		} else {
			log.Printf("[SEEDS] %d books seeded", len(books))
		}
	}
}
