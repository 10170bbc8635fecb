// Package repositories is the storage accessor layer. Every operation is a
// single round-trip against the injected gorm handle; failures come back
// already translated into the apperr taxonomy with the entity kind attached.
package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/vitoraqdev/SalesOrderManagement/packages/apperr"
)

// getByID loads one row by primary key.
func getByID[T any](ctx context.Context, db *gorm.DB, entity string, id uint) (*T, error) {
	var row T
	if err := db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, apperr.FromStorage(err, entity)
	}
	return &row, nil
}

// getAll loads the full table, no pagination.
func getAll[T any](ctx context.Context, db *gorm.DB, entity string) ([]T, error) {
	rows := make([]T, 0)
	if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, apperr.FromStorage(err, entity)
	}
	return rows, nil
}

// create inserts the row and leaves the assigned id on it.
func create[T any](ctx context.Context, db *gorm.DB, entity string, row *T) error {
	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		return apperr.FromStorage(err, entity)
	}
	return nil
}

// updateByID replaces the mutable columns of one row and returns the stored
// result. The column map, not a struct, so zero values overwrite.
func updateByID[T any](ctx context.Context, db *gorm.DB, entity string, id uint, data map[string]interface{}) (*T, error) {
	var row T
	res := db.WithContext(ctx).Model(&row).Where("id = ?", id).Updates(data)
	if res.Error != nil {
		return nil, apperr.FromStorage(res.Error, entity)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound(entity)
	}
	return getByID[T](ctx, db, entity, id)
}

// deleteByID removes one row; deleting an absent id is NotFound, never a
// silent success.
func deleteByID[T any](ctx context.Context, db *gorm.DB, entity string, id uint) error {
	var row T
	res := db.WithContext(ctx).Delete(&row, id)
	if res.Error != nil {
		return apperr.FromStorage(res.Error, entity)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(entity)
	}
	return nil
}
