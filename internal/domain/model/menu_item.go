package model

// メニュー（料理・ドリンク）
type MenuItem struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"type:varchar(255);not null;index" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"type:varchar(100);not null" json:"category"`
	Available   bool    `gorm:"not null;default:true" json:"available"`
	Ingredients *string `gorm:"type:text" json:"ingredients"`
}
