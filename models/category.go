package models

import (
	"time"
)

// Category groups transactions. A nil UserID marks a default category.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    *uint     `json:"user_id" gorm:"index"`
	Name      string    `json:"name" gorm:"size:50;not null"`
	Type      string    `json:"type" gorm:"size:10;not null"`
	CreatedAt time.Time `json:"created_at"`
	User      *User     `json:"-" gorm:"foreignKey:UserID"`
}

func (Category) TableName() string {
	return "categories"
}

// IsDefault reports whether the category is shared by every user.
func (c Category) IsDefault() bool {
	return c.UserID == nil
}

// DefaultCategory is a seed entry.
type DefaultCategory struct {
	Name string
	Type string
}

// GetDefaultCategories returns the categories seeded into an empty table.
func GetDefaultCategories() []DefaultCategory {
	return []DefaultCategory{
		{"Salário", TypeIncome},
		{"Freelance", TypeIncome},
		{"Investimentos", TypeIncome},
		{"Outros", TypeIncome},
		{"Alimentação", TypeExpense},
		{"Transporte", TypeExpense},
		{"Moradia", TypeExpense},
		{"Saúde", TypeExpense},
		{"Educação", TypeExpense},
		{"Lazer", TypeExpense},
		{"Compras", TypeExpense},
		{"Outros", TypeExpense},
	}
}
