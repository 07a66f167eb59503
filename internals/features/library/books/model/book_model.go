// file: internals/features/library/books/model/book_model.go
package model

import (
	"time"
)

type BookModel struct {
	BookID   int    `gorm:"primaryKey;autoIncrement;column:book_id" json:"book_id"`
	BookName string `gorm:"type:varchar(250);not null;column:book_name" json:"book_name"`

	// NULL = belum pernah dirating (beda dengan skor 0). API merender NULL sebagai -1.
	BookAverageRating *float64 `gorm:"type:numeric(5,2);column:book_average_rating" json:"book_average_rating,omitempty"`

	BookCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:book_created_at" json:"book_created_at"`
	BookUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:book_updated_at" json:"book_updated_at"`
}

func (BookModel) TableName() string { return "books" }
