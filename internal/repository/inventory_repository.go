package repository

import (
	"context"

	"eato/internal/domain/model"
)

// 在庫の永続化だけを約束。注文処理からは参照されない。
type InventoryRepository interface {
	List(ctx context.Context, skip int, limit int) ([]model.InventoryItem, error)
	FindByID(ctx context.Context, id int64) (model.InventoryItem, error)

	Create(ctx context.Context, item model.InventoryItem) (model.InventoryItem, error)
	Update(ctx context.Context, item model.InventoryItem) error
	Delete(ctx context.Context, id int64) (bool, error)
}
