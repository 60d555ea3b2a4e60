package models

import (
	"gorm.io/gorm"
)

// Project 表示一個建案
type Project struct {
	gorm.Model
	Name              string          `gorm:"not null" json:"name"`
	OwnerID           uint            `gorm:"not null" json:"owner_id"`
	ConstructionType  string          `json:"construction_type"`
	PlotSize          string          `json:"plot_size"`
	BuiltUpArea       string          `json:"built_up_area"`
	Floors            int             `json:"floors"`
	Budget            float64         `json:"budget"`
	LoanAmount        float64         `json:"loan_amount"`
	StartDate         string          `json:"start_date"`
	CompletionDate    string          `json:"completion_date"`
	SiteAddress       string          `json:"site_address"`
	City              string          `json:"city"`
	Pincode           string          `json:"pincode"`
	ArchitectDetails  string          `gorm:"type:text" json:"architect_details"`
	ContractorDetails string          `gorm:"type:text" json:"contractor_details"`
	Members           []ProjectMember `gorm:"foreignKey:ProjectID" json:"members,omitempty"`
}

// ProjectMember 表示建案與使用者的成員關係
// 成員資格的審核由專案管理端負責，聊天子系統只讀取結果
type ProjectMember struct {
	gorm.Model
	ProjectID uint   `gorm:"not null;uniqueIndex:idx_project_user" json:"project_id"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_project_user" json:"user_id"`
	Role      string `gorm:"not null" json:"role"`
}
