package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is an account holder. Email is the login key.
type User struct {
	ID            uint                `json:"id" gorm:"primaryKey"`
	Email         string              `json:"email" gorm:"uniqueIndex;size:100;not null"`
	Password      string              `json:"-" gorm:"size:255;not null"`
	Name          string              `json:"name" gorm:"size:100;not null"`
	MonthlyIncome decimal.NullDecimal `json:"monthly_income" gorm:"type:decimal(14,2)"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}
