package repository

import (
	"context"

	"eato/internal/domain/model"
)

type OrderItemRepository interface {
	// 渡された順で作成し、生成IDを詰めて返す
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) ([]model.OrderItem, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
}
