package services

import (
	"context"

	"github.com/vitoraqdev/SalesOrderManagement/models"
	"github.com/vitoraqdev/SalesOrderManagement/repositories"
	"github.com/vitoraqdev/SalesOrderManagement/requests"
)

type IMotoboyService interface {
	GetByID(ctx context.Context, id uint) (*models.Motoboy, error)
	GetAll(ctx context.Context) ([]models.Motoboy, error)
	Create(ctx context.Context, req requests.MotoboyRequest) (*models.Motoboy, error)
	Update(ctx context.Context, id uint, req requests.MotoboyRequest) (*models.Motoboy, error)
	Delete(ctx context.Context, id uint) error
}

type MotoboyService struct {
	repo repositories.IMotoboyRepository
}

func NewMotoboyService(repo repositories.IMotoboyRepository) IMotoboyService {
	return &MotoboyService{repo: repo}
}

func (s *MotoboyService) GetByID(ctx context.Context, id uint) (*models.Motoboy, error) {
	return s.repo.GetMotoboyByID(ctx, id)
}

func (s *MotoboyService) GetAll(ctx context.Context) ([]models.Motoboy, error) {
	return s.repo.GetAllMotoboys(ctx)
}

func (s *MotoboyService) Create(ctx context.Context, req requests.MotoboyRequest) (*models.Motoboy, error) {
	motoboy := &models.Motoboy{
		Name:        req.Name,
		Phone:       req.Phone,
		DailySalary: *req.DailySalary,
		IsActive:    req.IsActive,
	}
	if err := s.repo.CreateMotoboy(ctx, motoboy); err != nil {
		return nil, err
	}
	return motoboy, nil
}

func (s *MotoboyService) Update(ctx context.Context, id uint, req requests.MotoboyRequest) (*models.Motoboy, error) {
	return s.repo.UpdateMotoboy(ctx, id, map[string]interface{}{
		"name":         req.Name,
		"phone":        req.Phone,
		"daily_salary": *req.DailySalary,
		"is_active":    req.IsActive,
	})
}

func (s *MotoboyService) Delete(ctx context.Context, id uint) error {
	return s.repo.DeleteMotoboy(ctx, id)
}
