package models

import (
	"gorm.io/gorm"
)

// ProjectFile 表示建案檔案的中繼資料
// 檔案本體由獨立的上傳管線處理，這裡只保存引用
type ProjectFile struct {
	gorm.Model
	ProjectID  uint   `gorm:"not null;index" json:"project_id"`
	UploaderID uint   `gorm:"not null" json:"uploader_id"`
	Filename   string `gorm:"not null" json:"filename"`
	URL        string `gorm:"not null" json:"url"`
	FileType   string `json:"file_type"`
	Tags       string `json:"tags"` // 例如 plan、elevation、bill
}
