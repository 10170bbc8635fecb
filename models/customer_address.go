package models

// CustomerAddress links a customer to the addresses they order from. Pure
// join table, composite key.
type CustomerAddress struct {
	CustomerID uint `gorm:"primaryKey" json:"customer_id"`
	AddressID  uint `gorm:"primaryKey" json:"address_id"`

	Customer *Customer `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Address  *Address  `gorm:"foreignKey:AddressID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (CustomerAddress) TableName() string {
	return "customer_address"
}
