package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/vitoraqdev/SalesOrderManagement/models"
)

type IAddressRepository interface {
	GetAddressByID(ctx context.Context, id uint) (*models.Address, error)
	GetAllAddresses(ctx context.Context) ([]models.Address, error)
	CreateAddress(ctx context.Context, address *models.Address) error
	UpdateAddress(ctx context.Context, id uint, data map[string]interface{}) (*models.Address, error)
	DeleteAddress(ctx context.Context, id uint) error
}

type AddressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) IAddressRepository {
	return &AddressRepository{db: db}
}

const addressEntity = "Address"

func (r *AddressRepository) GetAddressByID(ctx context.Context, id uint) (*models.Address, error) {
	return getByID[models.Address](ctx, r.db, addressEntity, id)
}

func (r *AddressRepository) GetAllAddresses(ctx context.Context) ([]models.Address, error) {
	return getAll[models.Address](ctx, r.db, addressEntity)
}

func (r *AddressRepository) CreateAddress(ctx context.Context, address *models.Address) error {
	return create(ctx, r.db, addressEntity, address)
}

func (r *AddressRepository) UpdateAddress(ctx context.Context, id uint, data map[string]interface{}) (*models.Address, error) {
	return updateByID[models.Address](ctx, r.db, addressEntity, id, data)
}

func (r *AddressRepository) DeleteAddress(ctx context.Context, id uint) error {
	return deleteByID[models.Address](ctx, r.db, addressEntity, id)
}

var _ IAddressRepository = (*AddressRepository)(nil)
