package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// ValidType reports whether t is one of the ledger entry types.
func ValidType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a ledger entry. Amount is stored as given: its sign is not
// checked against Type, and Date is an opaque string.
type Transaction struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	UserID      uint            `json:"user_id" gorm:"index;not null"`
	Description string          `json:"description" gorm:"size:255"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(14,2);not null"`
	Type        string          `json:"type" gorm:"size:10;index;not null"`
	CategoryID  *uint           `json:"category_id"`
	Date        string          `json:"date" gorm:"size:32;index"`
	CreatedAt   time.Time       `json:"created_at"`
	User        User            `json:"-" gorm:"foreignKey:UserID"`
	Category    *Category       `json:"-" gorm:"foreignKey:CategoryID"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// Totals aggregates a user's ledger.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// NewTotals derives the balance from income and expense.
func NewTotals(income, expense decimal.Decimal) Totals {
	return Totals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// MonthSummary is one row of the monthly report.
type MonthSummary struct {
	Month string `json:"month"`
	Totals
}
