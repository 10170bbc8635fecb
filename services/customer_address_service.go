package services

import (
	"context"

	"github.com/vitoraqdev/SalesOrderManagement/models"
	"github.com/vitoraqdev/SalesOrderManagement/repositories"
	"github.com/vitoraqdev/SalesOrderManagement/requests"
)

type ICustomerAddressService interface {
	GetAddressesByCustomerID(ctx context.Context, customerID uint) ([]models.Address, error)
	Create(ctx context.Context, req requests.CustomerAddressRequest) (*models.CustomerAddress, error)
}

type CustomerAddressService struct {
	repo repositories.ICustomerAddressRepository
}

func NewCustomerAddressService(repo repositories.ICustomerAddressRepository) ICustomerAddressService {
	return &CustomerAddressService{repo: repo}
}

func (s *CustomerAddressService) GetAddressesByCustomerID(ctx context.Context, customerID uint) ([]models.Address, error) {
	return s.repo.GetAddressesByCustomerID(ctx, customerID)
}

func (s *CustomerAddressService) Create(ctx context.Context, req requests.CustomerAddressRequest) (*models.CustomerAddress, error) {
	link := &models.CustomerAddress{
		CustomerID: req.CustomerID,
		AddressID:  req.AddressID,
	}
	if err := s.repo.CreateCustomerAddress(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}
