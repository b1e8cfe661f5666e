package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"eato/internal/domain/model"
	repo "eato/internal/repository"
	"eato/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// POST /orders
// =====================

func TestOrderHandler_Create_Returns201(t *testing.T) {
	orders := new(OrderRepoMock)
	items := new(OrderItemRepoMock)
	n := new(NotifierMock)
	e := newOrderServer(orders, items, n)

	customer := "Ana"
	table := int64(4)
	orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.Status == model.OrderStatusReceived
	})).Return(model.Order{ID: 7, CustomerName: &customer, TableNumber: &table, Status: model.OrderStatusReceived}, nil)

	items.On("CreateBulk", mock.Anything, int64(7), []model.OrderItem{{MenuItemID: 1, Quantity: 2}}).
		Return([]model.OrderItem{{ID: 1, OrderID: 7, MenuItemID: 1, Quantity: 2}}, nil)

	n.On("OrderCreated", int64(7)).Return()

	rec := doJSON(e, http.MethodPost, "/orders",
		`{"customer_name":"Ana","table_number":4,"items":[{"menu_item_id":1,"quantity":2}]}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got usecase.OrderOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, model.OrderStatusReceived, got.Status)
	assert.Equal(t, 1, len(got.Items))

	orders.AssertExpectations(t)
	items.AssertExpectations(t)
	n.AssertExpectations(t)
}

// itemsキー自体が無ければ400
func TestOrderHandler_Create_MissingItems_Returns400(t *testing.T) {
	orders := new(OrderRepoMock)
	e := newOrderServer(orders, new(OrderItemRepoMock), new(NotifierMock))

	rec := doJSON(e, http.MethodPost, "/orders", `{"customer_name":"Ana"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "items required", decodeErrorBody(t, rec).Error)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// 空配列は許す（明細ゼロの注文）
func TestOrderHandler_Create_EmptyItems_Returns201(t *testing.T) {
	orders := new(OrderRepoMock)
	items := new(OrderItemRepoMock)
	n := new(NotifierMock)
	e := newOrderServer(orders, items, n)

	orders.On("Create", mock.Anything, mock.Anything).
		Return(model.Order{ID: 8, Status: model.OrderStatusReceived}, nil)
	items.On("CreateBulk", mock.Anything, int64(8), []model.OrderItem{}).
		Return([]model.OrderItem{}, nil)
	n.On("OrderCreated", int64(8)).Return()

	rec := doJSON(e, http.MethodPost, "/orders", `{"items":[]}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got usecase.OrderOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 0, len(got.Items))
}

// =====================
// GET /orders
// =====================

func TestOrderHandler_List_Returns200(t *testing.T) {
	orders := new(OrderRepoMock)
	items := new(OrderItemRepoMock)
	e := newOrderServer(orders, items, new(NotifierMock))

	orders.On("List", mock.Anything, 0, 100).
		Return([]model.Order{{ID: 1, Status: model.OrderStatusReceived}}, nil)
	items.On("ListByOrderID", mock.Anything, int64(1)).
		Return([]model.OrderItem{{ID: 1, OrderID: 1, MenuItemID: 2, Quantity: 1}}, nil)

	rec := doJSON(e, http.MethodGet, "/orders", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []usecase.OrderOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 1, len(got))
	assert.Equal(t, 1, len(got[0].Items))

	orders.AssertExpectations(t)
}

func TestOrderHandler_List_InvalidSkip_Returns400(t *testing.T) {
	orders := new(OrderRepoMock)
	e := newOrderServer(orders, new(OrderItemRepoMock), new(NotifierMock))

	rec := doJSON(e, http.MethodGet, "/orders?skip=abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid skip", decodeErrorBody(t, rec).Error)
	orders.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

// =====================
// GET /orders/:id
// =====================

func TestOrderHandler_Detail_NotFound_Returns404(t *testing.T) {
	orders := new(OrderRepoMock)
	e := newOrderServer(orders, new(OrderItemRepoMock), new(NotifierMock))

	orders.On("FindByID", mock.Anything, int64(999)).Return(model.Order{}, repo.ErrNotFound)

	rec := doJSON(e, http.MethodGet, "/orders/999", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order not found", decodeErrorBody(t, rec).Error)
}

func TestOrderHandler_Detail_InvalidID_Returns400(t *testing.T) {
	e := newOrderServer(new(OrderRepoMock), new(OrderItemRepoMock), new(NotifierMock))

	rec := doJSON(e, http.MethodGet, "/orders/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid id", decodeErrorBody(t, rec).Error)
}

// =====================
// PUT /orders/:id/status
// =====================

// ステータスはクエリパラメータで渡す
func TestOrderHandler_UpdateStatus_Returns200(t *testing.T) {
	orders := new(OrderRepoMock)
	items := new(OrderItemRepoMock)
	e := newOrderServer(orders, items, new(NotifierMock))

	orders.On("UpdateStatus", mock.Anything, int64(7), "In Kitchen").Return(nil)
	orders.On("FindByID", mock.Anything, int64(7)).
		Return(model.Order{ID: 7, Status: "In Kitchen"}, nil)
	items.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.OrderItem{}, nil)

	rec := doJSON(e, http.MethodPut, "/orders/7/status?status=In%20Kitchen", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var got usecase.OrderOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "In Kitchen", got.Status)

	orders.AssertExpectations(t)
}

func TestOrderHandler_UpdateStatus_Missing_Returns400(t *testing.T) {
	orders := new(OrderRepoMock)
	e := newOrderServer(orders, new(OrderItemRepoMock), new(NotifierMock))

	rec := doJSON(e, http.MethodPut, "/orders/7/status", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "status required", decodeErrorBody(t, rec).Error)
	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderHandler_UpdateStatus_NotFound_Returns404(t *testing.T) {
	orders := new(OrderRepoMock)
	e := newOrderServer(orders, new(OrderItemRepoMock), new(NotifierMock))

	orders.On("UpdateStatus", mock.Anything, int64(999), "Served").Return(repo.ErrNotFound)

	rec := doJSON(e, http.MethodPut, "/orders/999/status?status=Served", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order not found", decodeErrorBody(t, rec).Error)
}
