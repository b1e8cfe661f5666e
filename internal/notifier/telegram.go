package notifier

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"eato/internal/domain/model"
	"eato/internal/logger"
	repo "eato/internal/repository"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegramはスタッフ向けの新規注文アラートを送る。
// 送信は投げっぱなしで、失敗しても注文作成側には一切返さない。
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	orders repo.OrderRepository
	items  repo.OrderItemRepository
	menu   repo.MenuRepository
	log    *logger.Logger
}

func NewTelegram(
	token string,
	chatID int64,
	orders repo.OrderRepository,
	items repo.OrderItemRepository,
	menu repo.MenuRepository,
	log *logger.Logger,
) *Telegram {
	//初期化はTelegram APIへの疎通を含む。失敗してもAPI全体は止めず、送信だけ諦める。
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Error("order_alert", "telegram bot init failed", err)
		bot = nil
	}

	return &Telegram{
		bot:    bot,
		chatID: chatID,
		orders: orders,
		items:  items,
		menu:   menu,
		log:    log,
	}
}

// 注文作成後に一度だけ呼ばれる。本体はバックグラウンドで動く。
func (n *Telegram) OrderCreated(orderID int64) {
	go n.send(orderID)
}

func (n *Telegram) send(orderID int64) {
	if n.bot == nil {
		n.log.Info("order_alert", "telegram bot unavailable, alert skipped")
		return
	}

	ctx := context.Background()

	o, err := n.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		//注文が見つからなければ黙って何もしない
		return
	}
	if err != nil {
		n.log.Error("order_alert", "fetch order failed", err)
		return
	}

	orderItems, err := n.items.ListByOrderID(ctx, orderID)
	if err != nil {
		n.log.Error("order_alert", "fetch order items failed", err)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, buildMessage(o, n.resolveItems(ctx, orderItems)))
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.log.Error("order_alert", "telegram send failed", err)
	}
}

type itemLine struct {
	Name     string
	Quantity int64
}

// 明細ごとにメニュー名を引く。メニューが消えていても通知自体は止めない。
func (n *Telegram) resolveItems(ctx context.Context, orderItems []model.OrderItem) []itemLine {
	lines := make([]itemLine, 0, len(orderItems))
	for _, it := range orderItems {
		name := fmt.Sprintf("item #%d", it.MenuItemID)
		if m, err := n.menu.FindByID(ctx, it.MenuItemID); err == nil {
			name = m.Name
		}
		lines = append(lines, itemLine{Name: name, Quantity: it.Quantity})
	}
	return lines
}

func buildMessage(o model.Order, items []itemLine) string {
	customer := "Guest"
	if o.CustomerName != nil && *o.CustomerName != "" {
		customer = *o.CustomerName
	}

	table := "N/A"
	if o.TableNumber != nil && *o.TableNumber != 0 {
		table = strconv.FormatInt(*o.TableNumber, 10)
	}

	lines := []string{
		fmt.Sprintf("📣 *New Order Alert!* Order #%d", o.ID),
		"👤 Customer: " + customer,
		"🍽️ Table: " + table,
		"🧾 Items:",
	}
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("- %s x %d", it.Name, it.Quantity))
	}

	return strings.Join(lines, "\n")
}
