package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	dto "pustakaku_backend/internals/features/library/books/dto"
	model "pustakaku_backend/internals/features/library/books/model"
)

func TestFromModelRendersUnratedAsSentinel(t *testing.T) {
	resp := dto.FromModel(&model.BookModel{BookID: 1, BookName: "Bumi Manusia"})
	assert.Equal(t, float64(-1), resp.BookAverageRating)
}

func TestFromModelKeepsRealRating(t *testing.T) {
	rating := 4.33
	resp := dto.FromModel(&model.BookModel{BookID: 1, BookName: "Bumi Manusia", BookAverageRating: &rating})
	assert.Equal(t, 4.33, resp.BookAverageRating)
}

func TestBookCreateRequestNormalizeTrims(t *testing.T) {
	req := dto.BookCreateRequest{BookName: "  Laskar Pelangi  "}
	req.Normalize()
	assert.Equal(t, "Laskar Pelangi", req.BookName)
}
