package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/vitoraqdev/SalesOrderManagement/models"
)

type IMotoboyRepository interface {
	GetMotoboyByID(ctx context.Context, id uint) (*models.Motoboy, error)
	GetAllMotoboys(ctx context.Context) ([]models.Motoboy, error)
	CreateMotoboy(ctx context.Context, motoboy *models.Motoboy) error
	UpdateMotoboy(ctx context.Context, id uint, data map[string]interface{}) (*models.Motoboy, error)
	DeleteMotoboy(ctx context.Context, id uint) error
}

type MotoboyRepository struct {
	db *gorm.DB
}

func NewMotoboyRepository(db *gorm.DB) IMotoboyRepository {
	return &MotoboyRepository{db: db}
}

const motoboyEntity = "Motoboy"

func (r *MotoboyRepository) GetMotoboyByID(ctx context.Context, id uint) (*models.Motoboy, error) {
	return getByID[models.Motoboy](ctx, r.db, motoboyEntity, id)
}

func (r *MotoboyRepository) GetAllMotoboys(ctx context.Context) ([]models.Motoboy, error) {
	return getAll[models.Motoboy](ctx, r.db, motoboyEntity)
}

func (r *MotoboyRepository) CreateMotoboy(ctx context.Context, motoboy *models.Motoboy) error {
	return create(ctx, r.db, motoboyEntity, motoboy)
}

func (r *MotoboyRepository) UpdateMotoboy(ctx context.Context, id uint, data map[string]interface{}) (*models.Motoboy, error) {
	return updateByID[models.Motoboy](ctx, r.db, motoboyEntity, id, data)
}

func (r *MotoboyRepository) DeleteMotoboy(ctx context.Context, id uint) error {
	return deleteByID[models.Motoboy](ctx, r.db, motoboyEntity, id)
}

var _ IMotoboyRepository = (*MotoboyRepository)(nil)
