package usecase

import (
	"context"
	"net/http"
	"time"

	"eato/internal/domain/model"
	repo "eato/internal/repository"
)

// 注文作成後に呼ばれる通知先。失敗しても注文作成には影響させない約束。
type OrderNotifier interface {
	OrderCreated(orderID int64)
}

type OrderUsecase struct {
	tx         repo.TransactionManager
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	notifier   OrderNotifier
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	orders repo.OrderRepository,
	orderItems repo.OrderItemRepository,
	notifier OrderNotifier,
) *OrderUsecase {
	return &OrderUsecase{
		tx:         tx,
		orders:     orders,
		orderItems: orderItems,
		notifier:   notifier,
	}
}

type OrderItemInput struct {
	MenuItemID int64
	Quantity   int64
}

type PlaceOrderInput struct {
	CustomerName *string
	TableNumber  *int64
	Items        []OrderItemInput
}

type OrderItemOutput struct {
	ID         int64 `json:"id"`
	OrderID    int64 `json:"order_id"`
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int64 `json:"quantity"`
}

type OrderOutput struct {
	ID           int64             `json:"id"`
	CustomerName *string           `json:"customer_name"`
	TableNumber  *int64            `json:"table_number"`
	Status       string            `json:"status"`
	Timestamp    time.Time         `json:"timestamp"`
	Items        []OrderItemOutput `json:"items"`
}

// 注文ヘッダを先に作成し、その後に明細を順番どおり挿入する。
// 明細の挿入に失敗してもヘッダはロールバックしない（明細ゼロの注文が残る）。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (OrderOutput, error) {
	if in.Items == nil {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "items required")
	}

	created, err := u.orders.Create(ctx, model.Order{
		CustomerName: in.CustomerName,
		TableNumber:  in.TableNumber,
		Status:       model.OrderStatusReceived,
	})
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//同じmenu_item_idが複数あってもまとめず、渡された順のまま行を作る
	items := make([]model.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, model.OrderItem{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
		})
	}

	savedItems, err := u.orderItems.CreateBulk(ctx, created.ID, items)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//通知は投げっぱなし。結果は見ない。
	u.notifier.OrderCreated(created.ID)

	return toOrderOutput(created, savedItems), nil
}

func (u *OrderUsecase) GetOrder(ctx context.Context, orderID int64) (OrderOutput, error) {
	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) ListOrders(ctx context.Context, skip int, limit int) ([]OrderOutput, error) {
	if skip < 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid skip")
	}
	if limit < 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().List(ctx, skip, limit)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

// ステータスは任意の文字列を無条件で上書き。遷移チェックは置かない。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID int64, status string) (OrderOutput, error) {
	if status == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "status required")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		err := r.Orders().UpdateStatus(ctx, orderID, status)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		o, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ID:         it.ID,
			OrderID:    it.OrderID,
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
		})
	}

	return OrderOutput{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		TableNumber:  o.TableNumber,
		Status:       o.Status,
		Timestamp:    o.Timestamp,
		Items:        outItems,
	}
}
