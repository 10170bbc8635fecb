package services

import (
	"context"

	"github.com/vitoraqdev/SalesOrderManagement/models"
	"github.com/vitoraqdev/SalesOrderManagement/repositories"
	"github.com/vitoraqdev/SalesOrderManagement/requests"
)

type ICustomerService interface {
	GetByID(ctx context.Context, id uint) (*models.Customer, error)
	GetAll(ctx context.Context) ([]models.Customer, error)
	Create(ctx context.Context, req requests.CustomerRequest) (*models.Customer, error)
	Update(ctx context.Context, id uint, req requests.CustomerRequest) (*models.Customer, error)
	Delete(ctx context.Context, id uint) error
}

type CustomerService struct {
	repo repositories.ICustomerRepository
}

func NewCustomerService(repo repositories.ICustomerRepository) ICustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	return s.repo.GetCustomerByID(ctx, id)
}

func (s *CustomerService) GetAll(ctx context.Context) ([]models.Customer, error) {
	return s.repo.GetAllCustomers(ctx)
}

func (s *CustomerService) Create(ctx context.Context, req requests.CustomerRequest) (*models.Customer, error) {
	customer := &models.Customer{
		Name:      req.Name,
		Phone:     req.Phone,
		AddressID: req.AddressID,
	}
	if err := s.repo.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Update(ctx context.Context, id uint, req requests.CustomerRequest) (*models.Customer, error) {
	return s.repo.UpdateCustomer(ctx, id, map[string]interface{}{
		"name":       req.Name,
		"phone":      req.Phone,
		"address_id": req.AddressID,
	})
}

func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	return s.repo.DeleteCustomer(ctx, id)
}
