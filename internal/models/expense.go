package models

import (
	"gorm.io/gorm"
)

// Expense 表示建案支出帳本中的一筆記錄
type Expense struct {
	gorm.Model
	ProjectID uint    `gorm:"not null;index" json:"project_id"`
	ItemName  string  `gorm:"not null" json:"item_name"`
	Cost      float64 `gorm:"not null" json:"cost"`
	Quantity  float64 `json:"quantity"`
	Vendor    string  `json:"vendor"`
	Category  string  `json:"category"` // 例如 material、labour、transport
}
