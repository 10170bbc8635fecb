package services

import (
	"context"

	"github.com/vitoraqdev/SalesOrderManagement/models"
	"github.com/vitoraqdev/SalesOrderManagement/repositories"
	"github.com/vitoraqdev/SalesOrderManagement/requests"
)

type IItemService interface {
	GetByID(ctx context.Context, id uint) (*models.Item, error)
	GetAll(ctx context.Context) ([]models.Item, error)
	Create(ctx context.Context, req requests.ItemRequest) (*models.Item, error)
	Update(ctx context.Context, id uint, req requests.ItemRequest) (*models.Item, error)
	Delete(ctx context.Context, id uint) error
}

type ItemService struct {
	repo repositories.IItemRepository
}

func NewItemService(repo repositories.IItemRepository) IItemService {
	return &ItemService{repo: repo}
}

func (s *ItemService) GetByID(ctx context.Context, id uint) (*models.Item, error) {
	return s.repo.GetItemByID(ctx, id)
}

func (s *ItemService) GetAll(ctx context.Context) ([]models.Item, error) {
	return s.repo.GetAllItems(ctx)
}

func (s *ItemService) Create(ctx context.Context, req requests.ItemRequest) (*models.Item, error) {
	item := &models.Item{
		Name:        req.Name,
		Price:       *req.Price,
		Description: req.Description,
		IsActive:    req.IsActive,
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Update(ctx context.Context, id uint, req requests.ItemRequest) (*models.Item, error) {
	return s.repo.UpdateItem(ctx, id, map[string]interface{}{
		"name":        req.Name,
		"price":       *req.Price,
		"description": req.Description,
		"is_active":   req.IsActive,
	})
}

func (s *ItemService) Delete(ctx context.Context, id uint) error {
	return s.repo.DeleteItem(ctx, id)
}
