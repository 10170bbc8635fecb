package services

import (
	"context"

	"github.com/vitoraqdev/SalesOrderManagement/models"
	"github.com/vitoraqdev/SalesOrderManagement/repositories"
	"github.com/vitoraqdev/SalesOrderManagement/requests"
)

type IOrderDetailsService interface {
	GetByOrderID(ctx context.Context, orderID uint) ([]models.OrderDetails, error)
	GetAll(ctx context.Context) ([]models.OrderDetails, error)
	Create(ctx context.Context, req requests.OrderDetailsRequest) (*models.OrderDetails, error)
	Update(ctx context.Context, orderID uint, req requests.OrderDetailsRequest) (*models.OrderDetails, error)
	Delete(ctx context.Context, orderID uint) error
}

// OrderDetailsService prices every line from the catalog. The payload never
// carries a unit price; whatever Item.Price holds at write time is what gets
// stored, and the database derives total_price from it.
type OrderDetailsService struct {
	repo  repositories.IOrderDetailsRepository
	items repositories.IItemRepository
}

func NewOrderDetailsService(repo repositories.IOrderDetailsRepository, items repositories.IItemRepository) IOrderDetailsService {
	return &OrderDetailsService{repo: repo, items: items}
}

func (s *OrderDetailsService) GetByOrderID(ctx context.Context, orderID uint) ([]models.OrderDetails, error) {
	return s.repo.GetOrderDetailsByOrderID(ctx, orderID)
}

func (s *OrderDetailsService) GetAll(ctx context.Context) ([]models.OrderDetails, error) {
	return s.repo.GetAllOrderDetails(ctx)
}

func (s *OrderDetailsService) Create(ctx context.Context, req requests.OrderDetailsRequest) (*models.OrderDetails, error) {
	price, err := s.items.GetItemPrice(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	details := &models.OrderDetails{
		OrderID:   req.OrderID,
		ItemID:    req.ItemID,
		Quantity:  req.Quantity,
		UnitPrice: price,
	}
	if err := s.repo.CreateOrderDetails(ctx, details); err != nil {
		return nil, err
	}
	return details, nil
}

// Update replaces the line and re-reads the catalog price, so a replaced line
// is priced the same way a created one is.
func (s *OrderDetailsService) Update(ctx context.Context, orderID uint, req requests.OrderDetailsRequest) (*models.OrderDetails, error) {
	price, err := s.items.GetItemPrice(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	details := &models.OrderDetails{
		OrderID:   req.OrderID,
		ItemID:    req.ItemID,
		Quantity:  req.Quantity,
		UnitPrice: price,
	}
	return s.repo.UpdateOrderDetails(ctx, orderID, details)
}

func (s *OrderDetailsService) Delete(ctx context.Context, orderID uint) error {
	return s.repo.DeleteOrderDetails(ctx, orderID)
}
