package repository

import (
	"context"
	"errors"

	"eato/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// メニューの永続化（保存・取得）だけを約束。
type MenuRepository interface {
	List(ctx context.Context, skip int, limit int) ([]model.MenuItem, error)
	FindByID(ctx context.Context, id int64) (model.MenuItem, error)

	Create(ctx context.Context, m model.MenuItem) (model.MenuItem, error)
	Update(ctx context.Context, m model.MenuItem) error
	// 削除できたかどうかをboolで返す
	Delete(ctx context.Context, id int64) (bool, error)
}
