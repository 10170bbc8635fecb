package models

import "github.com/shopspring/decimal"

// Motoboy is a delivery courier on a daily salary.
type Motoboy struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	Phone       string          `gorm:"type:varchar(30);not null" json:"phone"`
	DailySalary decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"daily_salary"`
	IsActive    bool            `gorm:"not null;default:true" json:"is_active"`
}

func (Motoboy) TableName() string {
	return "motoboy"
}
