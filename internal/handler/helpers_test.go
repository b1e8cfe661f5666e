package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"eato/internal/domain/model"
	"eato/internal/handler"
	repo "eato/internal/repository"
	"eato/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type MenuRepoMock struct{ mock.Mock }

func (m *MenuRepoMock) List(ctx context.Context, skip int, limit int) ([]model.MenuItem, error) {
	args := m.Called(ctx, skip, limit)
	items, _ := args.Get(0).([]model.MenuItem)
	return items, args.Error(1)
}

func (m *MenuRepoMock) FindByID(ctx context.Context, id int64) (model.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(model.MenuItem)
	return item, args.Error(1)
}

func (m *MenuRepoMock) Create(ctx context.Context, item model.MenuItem) (model.MenuItem, error) {
	args := m.Called(ctx, item)
	created, _ := args.Get(0).(model.MenuItem)
	return created, args.Error(1)
}

func (m *MenuRepoMock) Update(ctx context.Context, item model.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MenuRepoMock) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type InvRepoMock struct{ mock.Mock }

func (m *InvRepoMock) List(ctx context.Context, skip int, limit int) ([]model.InventoryItem, error) {
	args := m.Called(ctx, skip, limit)
	items, _ := args.Get(0).([]model.InventoryItem)
	return items, args.Error(1)
}

func (m *InvRepoMock) FindByID(ctx context.Context, id int64) (model.InventoryItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(model.InventoryItem)
	return item, args.Error(1)
}

func (m *InvRepoMock) Create(ctx context.Context, item model.InventoryItem) (model.InventoryItem, error) {
	args := m.Called(ctx, item)
	created, _ := args.Get(0).(model.InventoryItem)
	return created, args.Error(1)
}

func (m *InvRepoMock) Update(ctx context.Context, item model.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *InvRepoMock) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) List(ctx context.Context, skip int, limit int) ([]model.Order, error) {
	args := m.Called(ctx, skip, limit)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (model.Order, error) {
	args := m.Called(ctx, order)
	created, _ := args.Get(0).(model.Order)
	return created, args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID, items)
	saved, _ := args.Get(0).([]model.OrderItem)
	return saved, args.Error(1)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

type NotifierMock struct{ mock.Mock }

func (m *NotifierMock) OrderCreated(orderID int64) {
	m.Called(orderID)
}

// Txは素通しして同じrepoモックを返す
type TxReposMock struct {
	OrdersRepo     repo.OrderRepository
	OrderItemsRepo repo.OrderItemRepository
}

func (m *TxReposMock) Menu() repo.MenuRepository            { return nil }
func (m *TxReposMock) Orders() repo.OrderRepository         { return m.OrdersRepo }
func (m *TxReposMock) OrderItems() repo.OrderItemRepository { return m.OrderItemsRepo }
func (m *TxReposMock) Inventory() repo.InventoryRepository  { return nil }

type TxManagerMock struct {
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.Repos)
}

// =====================
// ルーティング込みのテスト用サーバ
// =====================

func newMenuServer(mRepo repo.MenuRepository) *echo.Echo {
	e := echo.New()
	handler.NewMenuHandler(usecase.NewMenuUsecase(mRepo)).RegisterRoutes(e)
	return e
}

func newInventoryServer(iRepo repo.InventoryRepository) *echo.Echo {
	e := echo.New()
	handler.NewInventoryHandler(usecase.NewInventoryUsecase(iRepo)).RegisterRoutes(e)
	return e
}

func newOrderServer(orders repo.OrderRepository, items repo.OrderItemRepository, n usecase.OrderNotifier) *echo.Echo {
	e := echo.New()
	tx := &TxManagerMock{Repos: &TxReposMock{OrdersRepo: orders, OrderItemsRepo: items}}
	handler.NewOrderHandler(usecase.NewOrderUsecase(tx, orders, items, n)).RegisterRoutes(e)
	return e
}

// JSONリクエストを投げてレスポンスを受け取る
func doJSON(e *echo.Echo, method string, target string, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var er handler.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &er))
	return er
}
