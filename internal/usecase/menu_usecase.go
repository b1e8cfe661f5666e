package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"eato/internal/domain/model"
	repo "eato/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type MenuUsecase struct {
	menuRepo repo.MenuRepository
}

// DI
func NewMenuUsecase(menuRepo repo.MenuRepository) *MenuUsecase {
	return &MenuUsecase{menuRepo: menuRepo}
}

// 作成・更新の共通入力DTO。priceの符号チェックはしない。
type MenuItemInput struct {
	Name        string
	Price       float64
	Category    string
	Available   *bool
	Ingredients *string
}

func (u *MenuUsecase) ListMenuItems(ctx context.Context, skip int, limit int) ([]model.MenuItem, error) {
	if skip < 0 {
		return []model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "invalid skip")
	}
	if limit < 0 {
		return []model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, err := u.menuRepo.List(ctx, skip, limit)
	if err != nil {
		return []model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *MenuUsecase) GetMenuItem(ctx context.Context, itemID int64) (model.MenuItem, error) {
	m, err := u.menuRepo.FindByID(ctx, itemID)
	if err == repo.ErrNotFound {
		return model.MenuItem{}, NewHTTPError(http.StatusNotFound, "Menu item not found")
	}
	if err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return m, nil
}

func (u *MenuUsecase) CreateMenuItem(ctx context.Context, in MenuItemInput) (model.MenuItem, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "category required")
	}

	//availableは省略時true
	available := true
	if in.Available != nil {
		available = *in.Available
	}

	m, err := u.menuRepo.Create(ctx, model.MenuItem{
		Name:        in.Name,
		Price:       in.Price,
		Category:    in.Category,
		Available:   available,
		Ingredients: in.Ingredients,
	})
	if err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return m, nil
}

// 全フィールド置き換え。部分更新はしない。
func (u *MenuUsecase) UpdateMenuItem(ctx context.Context, itemID int64, in MenuItemInput) (model.MenuItem, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "category required")
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}

	m := model.MenuItem{
		ID:          itemID,
		Name:        in.Name,
		Price:       in.Price,
		Category:    in.Category,
		Available:   available,
		Ingredients: in.Ingredients,
	}

	err := u.menuRepo.Update(ctx, m)
	if err == repo.ErrNotFound {
		return model.MenuItem{}, NewHTTPError(http.StatusNotFound, "Menu item not found")
	}
	if err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return m, nil
}

func (u *MenuUsecase) DeleteMenuItem(ctx context.Context, itemID int64) error {
	deleted, err := u.menuRepo.Delete(ctx, itemID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !deleted {
		return NewHTTPError(http.StatusNotFound, "Menu item not found")
	}
	return nil
}
