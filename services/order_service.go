package services

import (
	"context"

	"github.com/vitoraqdev/SalesOrderManagement/models"
	"github.com/vitoraqdev/SalesOrderManagement/repositories"
	"github.com/vitoraqdev/SalesOrderManagement/requests"
)

type IOrderService interface {
	GetByID(ctx context.Context, id uint) (*models.CustomerOrder, error)
	GetAll(ctx context.Context) ([]models.CustomerOrder, error)
	Create(ctx context.Context, req requests.OrderRequest) (*models.CustomerOrder, error)
	Update(ctx context.Context, id uint, req requests.OrderRequest) (*models.CustomerOrder, error)
	Delete(ctx context.Context, id uint) error
}

type OrderService struct {
	repo repositories.IOrderRepository
}

func NewOrderService(repo repositories.IOrderRepository) IOrderService {
	return &OrderService{repo: repo}
}

func (s *OrderService) GetByID(ctx context.Context, id uint) (*models.CustomerOrder, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *OrderService) GetAll(ctx context.Context) ([]models.CustomerOrder, error) {
	return s.repo.GetAllOrders(ctx)
}

func (s *OrderService) Create(ctx context.Context, req requests.OrderRequest) (*models.CustomerOrder, error) {
	order := &models.CustomerOrder{
		Date:        req.Date,
		CustomerID:  req.CustomerID,
		MotoboyID:   req.MotoboyID,
		AddressID:   req.AddressID,
		Source:      req.Source,
		Additional:  req.Additional,
		DeliveryFee: req.DeliveryFee,
		Discount:    req.Discount,
		Status:      req.Status,
	}
	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Update(ctx context.Context, id uint, req requests.OrderRequest) (*models.CustomerOrder, error) {
	return s.repo.UpdateOrder(ctx, id, map[string]interface{}{
		"date":         req.Date,
		"customer_id":  req.CustomerID,
		"motoboy_id":   req.MotoboyID,
		"address_id":   req.AddressID,
		"source":       req.Source,
		"additional":   req.Additional,
		"delivery_fee": req.DeliveryFee,
		"discount":     req.Discount,
		"status":       req.Status,
	})
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	return s.repo.DeleteOrder(ctx, id)
}
