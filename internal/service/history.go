package service

import (
	"construction_web/internal/models"
	"construction_web/internal/repository"
)

// HistoryService 提供專案聊天的歷史讀取
// 初次載入與斷線補發共用儲存層同一條排序路徑，兩者都是純讀取
type HistoryService struct {
	store repository.MessageRepository
}

func NewHistoryService(store repository.MessageRepository) *HistoryService {
	return &HistoryService{store: store}
}

// InitialLoad 回傳指定專案的完整歷史，最舊的排在前面
func (s *HistoryService) InitialLoad(projectID uint) ([]models.Message, error) {
	return s.store.History(projectID, 0, 0)
}

// CatchUp 回傳 ID 大於 lastSeenID 的所有訊息，每則恰好一次，依 ID 升冪
// 重連的客戶端以此銜接斷線期間的訊息，不重複也不遺漏
func (s *HistoryService) CatchUp(projectID, lastSeenID uint) ([]models.Message, error) {
	return s.store.History(projectID, lastSeenID, 0)
}

// Page 供 REST 端點使用，帶游標與筆數上限
func (s *HistoryService) Page(projectID, afterID uint, limit int) ([]models.Message, error) {
	return s.store.History(projectID, afterID, limit)
}
