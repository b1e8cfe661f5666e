package model

import "time"

// 新規注文の初期ステータス。以降は自由な文字列で上書きされる。
const OrderStatusReceived = "Received"

type Order struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName *string   `gorm:"type:varchar(255)" json:"customer_name"`
	TableNumber  *int64    `json:"table_number"`
	Status       string    `gorm:"type:varchar(50);not null" json:"status"`
	Timestamp    time.Time `gorm:"not null;autoCreateTime" json:"timestamp"`
}
