package models

// Customer is anyone who can place an order. Phone is optional; some order
// channels (iFood, for example) never hand one over.
type Customer struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"type:varchar(100);not null" json:"name"`
	Phone     *string `gorm:"type:varchar(30)" json:"phone"`
	AddressID uint    `gorm:"index;not null" json:"address_id"`

	Address *Address `gorm:"foreignKey:AddressID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}

func (Customer) TableName() string {
	return "customer"
}
