package service

import (
	"sync"
)

// ConnectionRegistry 維護所有存活的連線以及各自訂閱的專案
//
// 對應關係只由連線自身的生命週期事件修改：一條連線永遠不會動到
// 另一條連線的登記資料。廣播端只透過 MembersOf 取快照，不直接讀 map。
type ConnectionRegistry struct {
	mu      sync.RWMutex
	clients map[string]*Client          // 連線 ID -> 客戶端
	rooms   map[uint]map[string]*Client // 專案 ID -> 連線 ID -> 客戶端
}

func NewConnectionRegistry() *ConnectionRegistry {
	return &ConnectionRegistry{
		clients: make(map[string]*Client),
		rooms:   make(map[uint]map[string]*Client),
	}
}

// Register 登記一條新連線，此時尚未訂閱任何專案
func (r *ConnectionRegistry) Register(client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clients[client.ID] = client
}

// Subscribe 將連線加入指定專案的房間
//
// 重複訂閱同一個專案是冪等的；訂閱新專案會先離開原本的房間，
// 一條連線同時間只屬於一個專案。
func (r *ConnectionRegistry) Subscribe(client *Client, projectID uint) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if client.ProjectID == projectID {
		return
	}

	r.leaveRoom(client)

	if r.rooms[projectID] == nil {
		r.rooms[projectID] = make(map[string]*Client)
	}
	r.rooms[projectID][client.ID] = client
	client.ProjectID = projectID
}

// Unregister 移除連線與其訂閱，兩者在同一把鎖內完成
func (r *ConnectionRegistry) Unregister(client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.clients, client.ID)
	r.leaveRoom(client)
}

// leaveRoom 將連線自目前的房間移除，呼叫端必須持有寫鎖
func (r *ConnectionRegistry) leaveRoom(client *Client) {
	if client.ProjectID == 0 {
		return
	}
	if room, ok := r.rooms[client.ProjectID]; ok {
		delete(room, client.ID)
		// 空房間直接移除
		if len(room) == 0 {
			delete(r.rooms, client.ProjectID)
		}
	}
	client.ProjectID = 0
}

// MembersOf 回傳指定專案目前所有成員的快照
// 回傳的切片是複本，之後的訂閱異動不會影響進行中的廣播
func (r *ConnectionRegistry) MembersOf(projectID uint) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room := r.rooms[projectID]
	members := make([]*Client, 0, len(room))
	for _, client := range room {
		members = append(members, client)
	}
	return members
}

// RoomSize 回傳指定專案目前的在線連線數
func (r *ConnectionRegistry) RoomSize(projectID uint) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.rooms[projectID])
}
