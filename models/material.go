package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material is a supply tracked by the entrepreneur view.
type Material struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"index;not null"`
	Name      string          `json:"name" gorm:"size:100;not null"`
	Unit      string          `json:"unit" gorm:"size:20"`
	Quantity  decimal.Decimal `json:"quantity" gorm:"type:decimal(14,3);not null"`
	UnitCost  decimal.Decimal `json:"unit_cost" gorm:"type:decimal(14,2);not null"`
	Supplier  string          `json:"supplier" gorm:"size:100"`
	CreatedAt time.Time       `json:"created_at"`
	User      User            `json:"-" gorm:"foreignKey:UserID"`
}

func (Material) TableName() string {
	return "materials"
}

// TotalCost is quantity times unit cost.
func (m Material) TotalCost() decimal.Decimal {
	return m.Quantity.Mul(m.UnitCost)
}
