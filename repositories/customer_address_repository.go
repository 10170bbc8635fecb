package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/vitoraqdev/SalesOrderManagement/models"
	"github.com/vitoraqdev/SalesOrderManagement/packages/apperr"
)

type ICustomerAddressRepository interface {
	GetAddressesByCustomerID(ctx context.Context, customerID uint) ([]models.Address, error)
	CreateCustomerAddress(ctx context.Context, link *models.CustomerAddress) error
}

type CustomerAddressRepository struct {
	db *gorm.DB
}

func NewCustomerAddressRepository(db *gorm.DB) ICustomerAddressRepository {
	return &CustomerAddressRepository{db: db}
}

const customerAddressEntity = "Customer address"

// GetAddressesByCustomerID resolves the link table to the full address rows.
// A customer with no links gets an empty list, not NotFound.
func (r *CustomerAddressRepository) GetAddressesByCustomerID(ctx context.Context, customerID uint) ([]models.Address, error) {
	addresses := make([]models.Address, 0)
	err := r.db.WithContext(ctx).
		Joins("JOIN customer_address ON customer_address.address_id = address.id").
		Where("customer_address.customer_id = ?", customerID).
		Find(&addresses).Error
	if err != nil {
		return nil, apperr.FromStorage(err, customerAddressEntity)
	}
	return addresses, nil
}

func (r *CustomerAddressRepository) CreateCustomerAddress(ctx context.Context, link *models.CustomerAddress) error {
	return create(ctx, r.db, customerAddressEntity, link)
}

var _ ICustomerAddressRepository = (*CustomerAddressRepository)(nil)
