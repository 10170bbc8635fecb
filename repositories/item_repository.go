package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vitoraqdev/SalesOrderManagement/models"
	"github.com/vitoraqdev/SalesOrderManagement/packages/apperr"
)

type IItemRepository interface {
	GetItemByID(ctx context.Context, id uint) (*models.Item, error)
	GetItemPrice(ctx context.Context, id uint) (decimal.Decimal, error)
	GetAllItems(ctx context.Context) ([]models.Item, error)
	CreateItem(ctx context.Context, item *models.Item) error
	UpdateItem(ctx context.Context, id uint, data map[string]interface{}) (*models.Item, error)
	DeleteItem(ctx context.Context, id uint) error
}

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) IItemRepository {
	return &ItemRepository{db: db}
}

const itemEntity = "Item"

func (r *ItemRepository) GetItemByID(ctx context.Context, id uint) (*models.Item, error) {
	return getByID[models.Item](ctx, r.db, itemEntity, id)
}

// GetItemPrice reads only the price column; the order-details create path
// needs nothing else from the catalog row.
func (r *ItemRepository) GetItemPrice(ctx context.Context, id uint) (decimal.Decimal, error) {
	var price decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Select("price").
		Where("id = ?", id).
		First(&price).Error
	if err != nil {
		return decimal.Decimal{}, apperr.FromStorage(err, itemEntity)
	}
	return price, nil
}

func (r *ItemRepository) GetAllItems(ctx context.Context) ([]models.Item, error) {
	return getAll[models.Item](ctx, r.db, itemEntity)
}

func (r *ItemRepository) CreateItem(ctx context.Context, item *models.Item) error {
	return create(ctx, r.db, itemEntity, item)
}

func (r *ItemRepository) UpdateItem(ctx context.Context, id uint, data map[string]interface{}) (*models.Item, error) {
	return updateByID[models.Item](ctx, r.db, itemEntity, id, data)
}

func (r *ItemRepository) DeleteItem(ctx context.Context, id uint) error {
	return deleteByID[models.Item](ctx, r.db, itemEntity, id)
}

var _ IItemRepository = (*ItemRepository)(nil)
