package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/vitoraqdev/SalesOrderManagement/models"
)

type INeighborhoodRepository interface {
	GetNeighborhoodByID(ctx context.Context, id uint) (*models.Neighborhood, error)
	GetAllNeighborhoods(ctx context.Context) ([]models.Neighborhood, error)
	CreateNeighborhood(ctx context.Context, neighborhood *models.Neighborhood) error
	UpdateNeighborhood(ctx context.Context, id uint, data map[string]interface{}) (*models.Neighborhood, error)
	DeleteNeighborhood(ctx context.Context, id uint) error
}

type NeighborhoodRepository struct {
	db *gorm.DB
}

func NewNeighborhoodRepository(db *gorm.DB) INeighborhoodRepository {
	return &NeighborhoodRepository{db: db}
}

const neighborhoodEntity = "Neighborhood"

func (r *NeighborhoodRepository) GetNeighborhoodByID(ctx context.Context, id uint) (*models.Neighborhood, error) {
	return getByID[models.Neighborhood](ctx, r.db, neighborhoodEntity, id)
}

func (r *NeighborhoodRepository) GetAllNeighborhoods(ctx context.Context) ([]models.Neighborhood, error) {
	return getAll[models.Neighborhood](ctx, r.db, neighborhoodEntity)
}

func (r *NeighborhoodRepository) CreateNeighborhood(ctx context.Context, neighborhood *models.Neighborhood) error {
	return create(ctx, r.db, neighborhoodEntity, neighborhood)
}

func (r *NeighborhoodRepository) UpdateNeighborhood(ctx context.Context, id uint, data map[string]interface{}) (*models.Neighborhood, error) {
	return updateByID[models.Neighborhood](ctx, r.db, neighborhoodEntity, id, data)
}

func (r *NeighborhoodRepository) DeleteNeighborhood(ctx context.Context, id uint) error {
	return deleteByID[models.Neighborhood](ctx, r.db, neighborhoodEntity, id)
}

var _ INeighborhoodRepository = (*NeighborhoodRepository)(nil)
