package service

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"construction_web/internal/models"
	"construction_web/internal/repository"
)

// ProjectChecker 是路由器對專案存在性檢查的最小依賴
// repository.ProjectRepository 滿足這個介面
type ProjectChecker interface {
	Exists(id uint) (bool, error)
}

// BroadcastRouter 負責訊息的持久化與房間內的即時散播
//
// 先寫入再廣播：儲存失敗就不會有任何投遞。每個專案各持一把鎖，
// 同一專案的 publish 之間，寫入與隨後的快照加投遞是一個不可分割
// 的順序單位；不同專案彼此獨立，互不等待。
type BroadcastRouter struct {
	registry *ConnectionRegistry
	store    repository.MessageRepository
	projects ProjectChecker

	mu    sync.Mutex
	locks map[uint]*sync.Mutex // 專案 ID -> 該專案的 publish 鎖
}

func NewBroadcastRouter(registry *ConnectionRegistry, store repository.MessageRepository, projects ProjectChecker) *BroadcastRouter {
	return &BroadcastRouter{
		registry: registry,
		store:    store,
		projects: projects,
		locks:    make(map[uint]*sync.Mutex),
	}
}

// Publish 驗證、持久化並廣播一則訊息
//
// 回傳的 Message 帶有伺服器指派的 ID 與時間戳。發送者自己的連線
// 也會收到 delivered 訊息框（echo-back），這是發送端得知權威 ID
// 與時間戳的唯一途徑。
func (rt *BroadcastRouter) Publish(projectID, senderID uint, content string, kind models.MessageKind) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	switch kind {
	case "":
		kind = models.MessageKindText
	case models.MessageKindText, models.MessageKindImage:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	exists, err := rt.projects.Exists(projectID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if !exists {
		return nil, ErrUnknownProject
	}

	lock := rt.projectLock(projectID)
	lock.Lock()
	defer lock.Unlock()

	message, err := rt.store.Append(projectID, senderID, content, kind)
	if err != nil {
		// 持久化失敗只讓這一次發送失敗，且不做任何投遞
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	frame := NewDeliveredFrame(message)
	for _, client := range rt.registry.MembersOf(projectID) {
		select {
		case client.SendChan <- frame:
		default:
			// 接收端的發送緩衝已滿，視為投遞失敗：記錄後放棄，不重試。
			// 訊息已持久化，對方重連後會經由補發取回；
			// 關閉其傳輸層，登記清理由該連線自己的斷線流程負責。
			log.Printf("message %d delivery to connection %s dropped: send buffer full", message.ID, client.ID)
			client.closeTransport()
		}
	}

	return message, nil
}

// projectLock 取得指定專案的 publish 鎖，首次使用時建立
func (rt *BroadcastRouter) projectLock(projectID uint) *sync.Mutex {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	lock, ok := rt.locks[projectID]
	if !ok {
		lock = &sync.Mutex{}
		rt.locks[projectID] = lock
	}
	return lock
}
