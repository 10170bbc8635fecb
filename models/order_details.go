package models

import "github.com/shopspring/decimal"

// OrderDetails is one line of an order, identified by (order_id, item_id).
// UnitPrice is resolved from the catalog at creation; TotalPrice is a stored
// generated column, the application never writes it.
type OrderDetails struct {
	OrderID    uint            `gorm:"primaryKey" json:"order_id"`
	ItemID     uint            `gorm:"primaryKey" json:"item_id"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	TotalPrice decimal.Decimal `gorm:"->;type:numeric(12,2) GENERATED ALWAYS AS (unit_price * quantity) STORED" json:"total_price"`

	Order *CustomerOrder `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Item  *Item          `gorm:"foreignKey:ItemID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}

func (OrderDetails) TableName() string {
	return "order_details"
}
