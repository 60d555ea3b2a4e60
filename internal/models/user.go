package models

import (
	"gorm.io/gorm"
)

// User 表示系統中的使用者
type User struct {
	gorm.Model          // 內嵌 gorm.Model，提供 ID、CreatedAt、UpdatedAt 和 DeletedAt 字段
	Name       string   `gorm:"not null" json:"name"`
	Phone      string   `gorm:"uniqueIndex;not null" json:"phone"` // 以電話號碼作為登入帳號
	Password   string   `gorm:"not null" json:"-"`                 // 密碼，json 序列化時會被忽略
	Role       UserRole `gorm:"not null" json:"role"`
}

// UserRole 定義使用者角色的類型
type UserRole string

const (
	RoleOwner      UserRole = "owner"      // 屋主
	RoleArchitect  UserRole = "architect"  // 建築師
	RoleContractor UserRole = "contractor" // 承包商
)
