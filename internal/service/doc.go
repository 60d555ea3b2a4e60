// Package service 實作應用的業務邏輯。
//
// 其中專案聊天是唯一有併發與順序要求的部分，由四個元件組成：
// MessageRepository（儲存層，訊息順序的唯一來源）、ConnectionRegistry
//（存活連線與訂閱關係）、BroadcastRouter（先持久化再對房間散播）
// 與 ChatService（每條連線的協議狀態機）。其餘服務是單純的 CRUD。
package service
