package repository

import (
	"construction_web/internal/models"
	"construction_web/internal/storage"
)

// MessageRepository 是專案聊天訊息的儲存層，也就是訊息順序的唯一來源
//
// Append 在單一 INSERT 內由資料庫指派全域遞增的 ID 與伺服器時間戳，
// 寫入成功才返回，因此併發讀取永遠不會看到寫到一半的訊息。
// History 是純讀取，與 Append 併發呼叫是安全的。
type MessageRepository interface {
	Append(projectID, senderID uint, content string, kind models.MessageKind) (*models.Message, error)
	History(projectID, afterID uint, limit int) ([]models.Message, error)
}

type messageRepository struct {
	db *storage.PostgresDB
}

func NewMessageRepository(db *storage.PostgresDB) MessageRepository {
	return &messageRepository{db: db}
}

// Append 持久化一則新訊息並回傳帶有伺服器指派 ID 與時間戳的完整記錄
func (r *messageRepository) Append(projectID, senderID uint, content string, kind models.MessageKind) (*models.Message, error) {
	message := &models.Message{
		ProjectID: projectID,
		SenderID:  senderID,
		Content:   content,
		Kind:      kind,
	}
	// CreatedAt 由 gorm 在寫入當下填入，客戶端提供的時間一律不採用
	if err := r.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// History 依 (created_at, id) 升冪回傳指定專案的訊息
// afterID 大於零時只回傳 ID 更大的訊息，供斷線後補發使用
func (r *messageRepository) History(projectID, afterID uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	query := r.db.Where("project_id = ?", projectID)
	if afterID > 0 {
		query = query.Where("id > ?", afterID)
	}
	query = query.Order("created_at asc, id asc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&messages).Error
	return messages, err
}
