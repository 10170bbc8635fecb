package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/vitoraqdev/SalesOrderManagement/models"
)

type IOrderRepository interface {
	GetOrderByID(ctx context.Context, id uint) (*models.CustomerOrder, error)
	GetAllOrders(ctx context.Context) ([]models.CustomerOrder, error)
	CreateOrder(ctx context.Context, order *models.CustomerOrder) error
	UpdateOrder(ctx context.Context, id uint, data map[string]interface{}) (*models.CustomerOrder, error)
	DeleteOrder(ctx context.Context, id uint) error
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{db: db}
}

const orderEntity = "Order"

func (r *OrderRepository) GetOrderByID(ctx context.Context, id uint) (*models.CustomerOrder, error) {
	return getByID[models.CustomerOrder](ctx, r.db, orderEntity, id)
}

func (r *OrderRepository) GetAllOrders(ctx context.Context) ([]models.CustomerOrder, error) {
	return getAll[models.CustomerOrder](ctx, r.db, orderEntity)
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order *models.CustomerOrder) error {
	return create(ctx, r.db, orderEntity, order)
}

func (r *OrderRepository) UpdateOrder(ctx context.Context, id uint, data map[string]interface{}) (*models.CustomerOrder, error) {
	return updateByID[models.CustomerOrder](ctx, r.db, orderEntity, id, data)
}

func (r *OrderRepository) DeleteOrder(ctx context.Context, id uint) error {
	return deleteByID[models.CustomerOrder](ctx, r.db, orderEntity, id)
}

var _ IOrderRepository = (*OrderRepository)(nil)
