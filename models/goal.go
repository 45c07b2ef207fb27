package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings or spending target. CurrentAmount is set at creation only.
type Goal struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	UserID        uint            `json:"user_id" gorm:"index;not null"`
	Name          string          `json:"name" gorm:"size:100;not null"`
	TargetAmount  decimal.Decimal `json:"target_amount" gorm:"type:decimal(14,2);not null"`
	CurrentAmount decimal.Decimal `json:"current_amount" gorm:"type:decimal(14,2);not null"`
	StartDate     string          `json:"start_date" gorm:"size:32"`
	EndDate       string          `json:"end_date" gorm:"size:32"`
	CategoryID    *uint           `json:"category_id"`
	CreatedAt     time.Time       `json:"created_at"`
	User          User            `json:"-" gorm:"foreignKey:UserID"`
	Category      *Category       `json:"-" gorm:"foreignKey:CategoryID"`
}

func (Goal) TableName() string {
	return "goals"
}

// Remaining is how much is left to reach the target, never negative.
func (g Goal) Remaining() decimal.Decimal {
	r := g.TargetAmount.Sub(g.CurrentAmount)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}
