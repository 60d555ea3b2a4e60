package models

import (
	"gorm.io/gorm"
)

// ChecklistItem 表示施工階段檢查清單中的一個項目
type ChecklistItem struct {
	gorm.Model
	ProjectID uint            `gorm:"not null;index" json:"project_id"`
	Stage     string          `gorm:"not null" json:"stage"` // Planning、Foundation、Structure、Finishing
	Task      string          `gorm:"not null" json:"task"`
	Status    ChecklistStatus `gorm:"not null;default:pending" json:"status"`
	Notes     string          `json:"notes"`
}

// ChecklistStatus 定義檢查項目狀態的類型
type ChecklistStatus string

const (
	ChecklistStatusPending   ChecklistStatus = "pending"
	ChecklistStatusCompleted ChecklistStatus = "completed"
)
