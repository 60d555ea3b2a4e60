package models

import (
	"gorm.io/gorm"
)

// Worker 表示建案工地上的工人名冊記錄
type Worker struct {
	gorm.Model
	ProjectID uint    `gorm:"not null;index" json:"project_id"`
	Name      string  `gorm:"not null" json:"name"`
	Phone     string  `json:"phone"`
	WorkType  string  `json:"work_type"` // 例如 mason、electrician、plumber
	DailyWage float64 `json:"daily_wage"`
}
