package repository

import (
	"context"

	"eato/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	List(ctx context.Context, skip int, limit int) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (model.Order, error)

	// ステータスを無条件で上書き。履歴は残さない。
	UpdateStatus(ctx context.Context, orderID int64, status string) error
}
