package models

import (
	"github.com/shopspring/decimal"

	"github.com/vitoraqdev/SalesOrderManagement/packages/datetypes"
)

// OrderSource is the channel the order came in through.
type OrderSource int16

const (
	SourceCounter  OrderSource = iota // walk-in
	SourcePhone                       // phone call
	SourceIFood                       // iFood marketplace
	SourceWhatsApp                    // WhatsApp message
)

// OrderStatus tracks an order through its lifecycle.
type OrderStatus int16

const (
	StatusOpen OrderStatus = iota
	StatusDelivered
	StatusCancelled
	StatusPaid
)

// CustomerOrder is one order on a given date. MotoboyID and AddressID are
// optional: counter orders have neither.
type CustomerOrder struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Date        datetypes.Date  `gorm:"type:date;not null" json:"date"`
	CustomerID  uint            `gorm:"index;not null" json:"customer_id"`
	MotoboyID   *uint           `gorm:"index" json:"motoboy_id"`
	AddressID   *uint           `gorm:"index" json:"address_id"`
	Source      OrderSource     `gorm:"type:smallint;not null" json:"source"`
	Additional  decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"additional"`
	DeliveryFee decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"delivery_fee"`
	Discount    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"discount"`
	Status      OrderStatus     `gorm:"type:smallint;not null" json:"status"`

	Customer *Customer `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	Motoboy  *Motoboy  `gorm:"foreignKey:MotoboyID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	Address  *Address  `gorm:"foreignKey:AddressID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}

func (CustomerOrder) TableName() string {
	return "customer_order"
}
