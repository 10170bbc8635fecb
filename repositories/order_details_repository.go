package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/vitoraqdev/SalesOrderManagement/models"
	"github.com/vitoraqdev/SalesOrderManagement/packages/apperr"
)

type IOrderDetailsRepository interface {
	GetOrderDetailsByOrderID(ctx context.Context, orderID uint) ([]models.OrderDetails, error)
	GetAllOrderDetails(ctx context.Context) ([]models.OrderDetails, error)
	CreateOrderDetails(ctx context.Context, details *models.OrderDetails) error
	UpdateOrderDetails(ctx context.Context, orderID uint, details *models.OrderDetails) (*models.OrderDetails, error)
	DeleteOrderDetails(ctx context.Context, orderID uint) error
}

type OrderDetailsRepository struct {
	db *gorm.DB
}

func NewOrderDetailsRepository(db *gorm.DB) IOrderDetailsRepository {
	return &OrderDetailsRepository{db: db}
}

const orderDetailsEntity = "Order details"

// GetOrderDetailsByOrderID returns every line of one order. An order with no
// lines yields an empty slice, not an error; only update and delete treat
// zero matched rows as NotFound.
func (r *OrderDetailsRepository) GetOrderDetailsByOrderID(ctx context.Context, orderID uint) ([]models.OrderDetails, error) {
	details := make([]models.OrderDetails, 0)
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&details).Error
	if err != nil {
		return nil, apperr.FromStorage(err, orderDetailsEntity)
	}
	return details, nil
}

func (r *OrderDetailsRepository) GetAllOrderDetails(ctx context.Context) ([]models.OrderDetails, error) {
	return getAll[models.OrderDetails](ctx, r.db, orderDetailsEntity)
}

// CreateOrderDetails inserts the line and reloads it so the response carries
// the total_price the database computed.
func (r *OrderDetailsRepository) CreateOrderDetails(ctx context.Context, details *models.OrderDetails) error {
	if err := r.db.WithContext(ctx).Create(details).Error; err != nil {
		return apperr.FromStorage(err, orderDetailsEntity)
	}
	return r.reload(ctx, details)
}

// UpdateOrderDetails replaces the line identified by the path order id and the
// payload item id.
func (r *OrderDetailsRepository) UpdateOrderDetails(ctx context.Context, orderID uint, details *models.OrderDetails) (*models.OrderDetails, error) {
	res := r.db.WithContext(ctx).
		Model(&models.OrderDetails{}).
		Where("order_id = ? AND item_id = ?", orderID, details.ItemID).
		Updates(map[string]interface{}{
			"order_id":   details.OrderID,
			"item_id":    details.ItemID,
			"quantity":   details.Quantity,
			"unit_price": details.UnitPrice,
		})
	if res.Error != nil {
		return nil, apperr.FromStorage(res.Error, orderDetailsEntity)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound(orderDetailsEntity)
	}

	if err := r.reload(ctx, details); err != nil {
		return nil, err
	}
	return details, nil
}

// DeleteOrderDetails removes every line of the order.
func (r *OrderDetailsRepository) DeleteOrderDetails(ctx context.Context, orderID uint) error {
	res := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&models.OrderDetails{})
	if res.Error != nil {
		return apperr.FromStorage(res.Error, orderDetailsEntity)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(orderDetailsEntity)
	}
	return nil
}

func (r *OrderDetailsRepository) reload(ctx context.Context, details *models.OrderDetails) error {
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND item_id = ?", details.OrderID, details.ItemID).
		First(details).Error
	if err != nil {
		return apperr.FromStorage(err, orderDetailsEntity)
	}
	return nil
}

var _ IOrderDetailsRepository = (*OrderDetailsRepository)(nil)
