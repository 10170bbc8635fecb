package services

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vitoraqdev/SalesOrderManagement/configs/logconfig"
	"github.com/vitoraqdev/SalesOrderManagement/models"
	"github.com/vitoraqdev/SalesOrderManagement/repositories"
	"github.com/vitoraqdev/SalesOrderManagement/requests"
)

type IAddressService interface {
	GetByID(ctx context.Context, id uint) (*models.Address, error)
	GetAll(ctx context.Context) ([]models.Address, error)
	Create(ctx context.Context, req requests.AddressRequest) (*models.Address, error)
	Update(ctx context.Context, id uint, req requests.AddressRequest) (*models.Address, error)
	Delete(ctx context.Context, id uint) error
}

// AddressService owns the delivery-fee defaulting: when the payload carries
// no fee, the referenced neighborhood's default is read and snapshotted onto
// the address before the write. The read and the write are separate
// round-trips; a concurrent change to the neighborhood default between them
// is tolerated.
type AddressService struct {
	repo          repositories.IAddressRepository
	neighborhoods repositories.INeighborhoodRepository
}

func NewAddressService(repo repositories.IAddressRepository, neighborhoods repositories.INeighborhoodRepository) IAddressService {
	return &AddressService{repo: repo, neighborhoods: neighborhoods}
}

func (s *AddressService) GetByID(ctx context.Context, id uint) (*models.Address, error) {
	return s.repo.GetAddressByID(ctx, id)
}

func (s *AddressService) GetAll(ctx context.Context) ([]models.Address, error) {
	return s.repo.GetAllAddresses(ctx)
}

func (s *AddressService) Create(ctx context.Context, req requests.AddressRequest) (*models.Address, error) {
	fee, err := s.resolveDeliveryFee(ctx, req)
	if err != nil {
		return nil, err
	}

	address := &models.Address{
		Street:         req.Street,
		Number:         req.Number,
		NeighborhoodID: req.NeighborhoodID,
		Complement:     req.Complement,
		Observation:    req.Observation,
		DeliveryFee:    fee,
	}
	if err := s.repo.CreateAddress(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) Update(ctx context.Context, id uint, req requests.AddressRequest) (*models.Address, error) {
	fee, err := s.resolveDeliveryFee(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.repo.UpdateAddress(ctx, id, map[string]interface{}{
		"street":          req.Street,
		"number":          req.Number,
		"neighborhood_id": req.NeighborhoodID,
		"complement":      req.Complement,
		"observation":     req.Observation,
		"delivery_fee":    fee,
	})
}

func (s *AddressService) Delete(ctx context.Context, id uint) error {
	return s.repo.DeleteAddress(ctx, id)
}

// resolveDeliveryFee returns the explicit fee when the caller sent one, and
// the neighborhood default otherwise. A missing neighborhood surfaces as
// NotFound before anything is written.
func (s *AddressService) resolveDeliveryFee(ctx context.Context, req requests.AddressRequest) (decimal.Decimal, error) {
	if req.DeliveryFee != nil {
		return *req.DeliveryFee, nil
	}

	neighborhood, err := s.neighborhoods.GetNeighborhoodByID(ctx, req.NeighborhoodID)
	if err != nil {
		return decimal.Decimal{}, err
	}

	logconfig.Log.Debug("Delivery fee defaulted from neighborhood",
		zap.Uint("neighborhood_id", neighborhood.ID),
		zap.String("delivery_fee", neighborhood.DeliveryFee.String()),
	)
	return neighborhood.DeliveryFee, nil
}
