package models

import "github.com/shopspring/decimal"

// Neighborhood carries the default delivery fee applied to addresses created
// without an explicit fee.
type Neighborhood struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	DeliveryFee decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"delivery_fee"`
}

func (Neighborhood) TableName() string {
	return "neighborhood"
}
