package repository

import (
	"context"
	"errors"

	"eato/internal/domain/model"
	repo "eato/internal/repository"

	"gorm.io/gorm"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

func (r *InventoryGormRepository) List(ctx context.Context, skip int, limit int) ([]model.InventoryItem, error) {
	items := []model.InventoryItem{}
	err := r.db.WithContext(ctx).
		Order("id asc").
		Offset(skip).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return []model.InventoryItem{}, err
	}
	return items, nil
}

func (r *InventoryGormRepository) FindByID(ctx context.Context, id int64) (model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.InventoryItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.InventoryItem{}, err
	}
	return item, nil
}

func (r *InventoryGormRepository) Create(ctx context.Context, item model.InventoryItem) (model.InventoryItem, error) {
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return model.InventoryItem{}, err
	}
	return item, nil
}

// 全フィールド置き換え
func (r *InventoryGormRepository) Update(ctx context.Context, item model.InventoryItem) error {
	res := r.db.WithContext(ctx).Model(&model.InventoryItem{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
		"name":      item.Name,
		"quantity":  item.Quantity,
		"unit":      item.Unit,
		"threshold": item.Threshold,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *InventoryGormRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.InventoryItem{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
