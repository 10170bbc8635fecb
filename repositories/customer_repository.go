package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/vitoraqdev/SalesOrderManagement/models"
)

type ICustomerRepository interface {
	GetCustomerByID(ctx context.Context, id uint) (*models.Customer, error)
	GetAllCustomers(ctx context.Context) ([]models.Customer, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	UpdateCustomer(ctx context.Context, id uint, data map[string]interface{}) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id uint) error
}

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) ICustomerRepository {
	return &CustomerRepository{db: db}
}

const customerEntity = "Customer"

func (r *CustomerRepository) GetCustomerByID(ctx context.Context, id uint) (*models.Customer, error) {
	return getByID[models.Customer](ctx, r.db, customerEntity, id)
}

func (r *CustomerRepository) GetAllCustomers(ctx context.Context) ([]models.Customer, error) {
	return getAll[models.Customer](ctx, r.db, customerEntity)
}

func (r *CustomerRepository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	return create(ctx, r.db, customerEntity, customer)
}

func (r *CustomerRepository) UpdateCustomer(ctx context.Context, id uint, data map[string]interface{}) (*models.Customer, error) {
	return updateByID[models.Customer](ctx, r.db, customerEntity, id, data)
}

func (r *CustomerRepository) DeleteCustomer(ctx context.Context, id uint) error {
	return deleteByID[models.Customer](ctx, r.db, customerEntity, id)
}

var _ ICustomerRepository = (*CustomerRepository)(nil)
