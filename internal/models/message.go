package models

import (
	"time"
)

// Message 代表專案聊天室中的一則訊息
//
// 訊息一旦寫入即不可變，也不支援刪除，因此不內嵌 gorm.Model。
// ID 由資料庫全域遞增指派，CreatedAt 由伺服器在寫入當下指定，
// 兩者合起來是訊息排序的唯一依據 (created_at, id)。
type Message struct {
	ID        uint        `gorm:"primaryKey;index:idx_project_order,priority:3" json:"id"`
	ProjectID uint        `gorm:"not null;index:idx_project_order,priority:1" json:"project_id"`
	SenderID  uint        `gorm:"not null" json:"sender_id"`
	Content   string      `gorm:"type:text" json:"content"`
	Kind      MessageKind `gorm:"type:varchar(20);not null;default:text" json:"kind"`
	CreatedAt time.Time   `gorm:"index:idx_project_order,priority:2" json:"created_at"`
}

// MessageKind 定義訊息內容的類型
type MessageKind string

const (
	MessageKindText  MessageKind = "text"
	MessageKindImage MessageKind = "image" // 圖片引用，檔案本體走上傳管線
)
