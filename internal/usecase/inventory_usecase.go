package usecase

import (
	"context"
	"net/http"
	"strings"

	"eato/internal/domain/model"
	repo "eato/internal/repository"
)

// 在庫のデフォルト低在庫しきい値。保存するだけで評価はしない。
const defaultThreshold = 10.0

type InventoryUsecase struct {
	inventoryRepo repo.InventoryRepository
}

// DI
func NewInventoryUsecase(inventoryRepo repo.InventoryRepository) *InventoryUsecase {
	return &InventoryUsecase{inventoryRepo: inventoryRepo}
}

type InventoryItemInput struct {
	Name      string
	Quantity  float64
	Unit      string
	Threshold *float64
}

func (u *InventoryUsecase) ListInventoryItems(ctx context.Context, skip int, limit int) ([]model.InventoryItem, error) {
	if skip < 0 {
		return []model.InventoryItem{}, NewHTTPError(http.StatusBadRequest, "invalid skip")
	}
	if limit < 0 {
		return []model.InventoryItem{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, err := u.inventoryRepo.List(ctx, skip, limit)
	if err != nil {
		return []model.InventoryItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *InventoryUsecase) GetInventoryItem(ctx context.Context, itemID int64) (model.InventoryItem, error) {
	item, err := u.inventoryRepo.FindByID(ctx, itemID)
	if err == repo.ErrNotFound {
		return model.InventoryItem{}, NewHTTPError(http.StatusNotFound, "Inventory item not found")
	}
	if err != nil {
		return model.InventoryItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return item, nil
}

func (u *InventoryUsecase) CreateInventoryItem(ctx context.Context, in InventoryItemInput) (model.InventoryItem, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.InventoryItem{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.Unit) == "" {
		return model.InventoryItem{}, NewHTTPError(http.StatusBadRequest, "unit required")
	}

	threshold := defaultThreshold
	if in.Threshold != nil {
		threshold = *in.Threshold
	}

	item, err := u.inventoryRepo.Create(ctx, model.InventoryItem{
		Name:      in.Name,
		Quantity:  in.Quantity,
		Unit:      in.Unit,
		Threshold: threshold,
	})
	if err != nil {
		return model.InventoryItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return item, nil
}

// 全フィールド置き換え
func (u *InventoryUsecase) UpdateInventoryItem(ctx context.Context, itemID int64, in InventoryItemInput) (model.InventoryItem, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.InventoryItem{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.Unit) == "" {
		return model.InventoryItem{}, NewHTTPError(http.StatusBadRequest, "unit required")
	}

	threshold := defaultThreshold
	if in.Threshold != nil {
		threshold = *in.Threshold
	}

	item := model.InventoryItem{
		ID:        itemID,
		Name:      in.Name,
		Quantity:  in.Quantity,
		Unit:      in.Unit,
		Threshold: threshold,
	}

	err := u.inventoryRepo.Update(ctx, item)
	if err == repo.ErrNotFound {
		return model.InventoryItem{}, NewHTTPError(http.StatusNotFound, "Inventory item not found")
	}
	if err != nil {
		return model.InventoryItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return item, nil
}

func (u *InventoryUsecase) DeleteInventoryItem(ctx context.Context, itemID int64) error {
	deleted, err := u.inventoryRepo.Delete(ctx, itemID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !deleted {
		return NewHTTPError(http.StatusNotFound, "Inventory item not found")
	}
	return nil
}
