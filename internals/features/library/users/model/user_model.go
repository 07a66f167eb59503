// file: internals/features/library/users/model/user_model.go
package model

import (
	"time"

	loanModel "pustakaku_backend/internals/features/library/loans/model"
)

type UserModel struct {
	UserID   int    `gorm:"primaryKey;autoIncrement;column:user_id" json:"user_id"`
	UserName string `gorm:"type:varchar(100);not null;column:user_name" json:"user_name"`

	UserCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:user_updated_at" json:"user_updated_at"`

	Loans []loanModel.LoanModel `gorm:"foreignKey:LoanUserID;references:UserID" json:"loans,omitempty"`
}

func (UserModel) TableName() string { return "users" }
