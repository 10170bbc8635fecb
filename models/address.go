package models

import "github.com/shopspring/decimal"

// Address is a delivery destination. Number is a string on purpose: house
// numbers like "123A" exist. DeliveryFee is snapshotted from the neighborhood
// default at write time when the caller omits it.
type Address struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Street         string          `gorm:"type:varchar(255);not null" json:"street"`
	Number         string          `gorm:"type:varchar(20);not null" json:"number"`
	NeighborhoodID uint            `gorm:"index;not null" json:"neighborhood_id"`
	Complement     *string         `gorm:"type:varchar(255)" json:"complement"`
	Observation    *string         `gorm:"type:varchar(255)" json:"observation"`
	DeliveryFee    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"delivery_fee"`

	Neighborhood *Neighborhood `gorm:"foreignKey:NeighborhoodID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}

func (Address) TableName() string {
	return "address"
}
