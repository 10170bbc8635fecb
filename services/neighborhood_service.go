package services

import (
	"context"

	"github.com/vitoraqdev/SalesOrderManagement/models"
	"github.com/vitoraqdev/SalesOrderManagement/repositories"
	"github.com/vitoraqdev/SalesOrderManagement/requests"
)

type INeighborhoodService interface {
	GetByID(ctx context.Context, id uint) (*models.Neighborhood, error)
	GetAll(ctx context.Context) ([]models.Neighborhood, error)
	Create(ctx context.Context, req requests.NeighborhoodRequest) (*models.Neighborhood, error)
	Update(ctx context.Context, id uint, req requests.NeighborhoodRequest) (*models.Neighborhood, error)
	Delete(ctx context.Context, id uint) error
}

type NeighborhoodService struct {
	repo repositories.INeighborhoodRepository
}

func NewNeighborhoodService(repo repositories.INeighborhoodRepository) INeighborhoodService {
	return &NeighborhoodService{repo: repo}
}

func (s *NeighborhoodService) GetByID(ctx context.Context, id uint) (*models.Neighborhood, error) {
	return s.repo.GetNeighborhoodByID(ctx, id)
}

func (s *NeighborhoodService) GetAll(ctx context.Context) ([]models.Neighborhood, error) {
	return s.repo.GetAllNeighborhoods(ctx)
}

func (s *NeighborhoodService) Create(ctx context.Context, req requests.NeighborhoodRequest) (*models.Neighborhood, error) {
	neighborhood := &models.Neighborhood{
		Name:        req.Name,
		DeliveryFee: *req.DeliveryFee,
	}
	if err := s.repo.CreateNeighborhood(ctx, neighborhood); err != nil {
		return nil, err
	}
	return neighborhood, nil
}

func (s *NeighborhoodService) Update(ctx context.Context, id uint, req requests.NeighborhoodRequest) (*models.Neighborhood, error) {
	return s.repo.UpdateNeighborhood(ctx, id, map[string]interface{}{
		"name":         req.Name,
		"delivery_fee": *req.DeliveryFee,
	})
}

func (s *NeighborhoodService) Delete(ctx context.Context, id uint) error {
	return s.repo.DeleteNeighborhood(ctx, id)
}
