package models

import "github.com/shopspring/decimal"

// Item is a catalog entry. Price is the source of truth for order line unit
// prices; clients never supply one.
type Item struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	IsActive    bool            `gorm:"not null;default:true" json:"is_active"`
}

func (Item) TableName() string {
	return "item"
}
