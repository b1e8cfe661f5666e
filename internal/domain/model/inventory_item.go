package model

// 食材在庫。注文と連動しない独立した記録。
type InventoryItem struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string  `gorm:"type:varchar(255);not null;index" json:"name"`
	Quantity  float64 `gorm:"not null" json:"quantity"`
	Unit      string  `gorm:"type:varchar(50);not null" json:"unit"`
	Threshold float64 `gorm:"not null;default:10" json:"threshold"`
}
