package service

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"construction_web/internal/models"
)

const (
	writeWait      = 10 * time.Second // 單次寫入的超時
	pongWait       = 60 * time.Second // 收到 pong 後允許的最長靜默時間
	pingPeriod     = 54 * time.Second // 心跳間隔，必須小於 pongWait
	maxMessageSize = 4096             // 傳入訊息框的大小上限 4KB
	sendBufferSize = 256              // 每條連線的發送緩衝
)

// SessionState 表示一條連線在協議狀態機中的位置
//
// Connecting -> Open -> Subscribed -> Closed
// 任何狀態遇到傳輸層關閉、錯誤或超時都轉入 Closed；
// Closed 是終態，新的邏輯會話必須建立新連線。
type SessionState int

const (
	StateConnecting SessionState = iota // 握手尚未完成
	StateOpen                           // 已連線，身分已附加，尚未訂閱
	StateSubscribed                     // 已訂閱某個專案
	StateClosed                         // 終態
)

func (s SessionState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateSubscribed:
		return "subscribed"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// 訊息框類型
const (
	FrameSubscribe = "subscribe" // 客戶端 -> 伺服器：訂閱專案
	FrameSend      = "send"      // 客戶端 -> 伺服器：發送聊天訊息
	FrameHistory   = "history"   // 伺服器 -> 客戶端：歷史（或補發）訊息
	FrameDelivered = "delivered" // 伺服器 -> 客戶端：一則已持久化的訊息
	FrameError     = "error"     // 伺服器 -> 客戶端：只給發送者本人的錯誤
)

// ClientFrame 是客戶端傳入的訊息框
type ClientFrame struct {
	Type       string             `json:"type"`
	ProjectID  uint               `json:"project_id"`
	LastSeenID uint               `json:"last_seen_id,omitempty"` // 重連時客戶端最後看到的訊息 ID
	Content    string             `json:"content,omitempty"`
	Kind       models.MessageKind `json:"kind,omitempty"`
}

// ServerFrame 是伺服器送出的訊息框
type ServerFrame struct {
	Type     string           `json:"type"`
	Messages []models.Message `json:"messages,omitempty"`
	Message  *models.Message  `json:"message,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// NewDeliveredFrame 包裝一則已持久化的訊息供廣播使用
func NewDeliveredFrame(message *models.Message) *ServerFrame {
	return &ServerFrame{Type: FrameDelivered, Message: message}
}

// Client 代表一條 WebSocket 客戶端連線
type Client struct {
	ID        string          // 連線識別碼，每條存活連線唯一
	Conn      *websocket.Conn // 底層連線，單元測試時可為 nil
	UserID    uint            // 已驗證的使用者身分，由外部認證流程提供
	ProjectID uint            // 目前訂閱的專案，0 表示尚未訂閱
	State     SessionState
	SendChan  chan *ServerFrame

	done      chan struct{}
	closeOnce sync.Once
}

// NewClient 建立一條處於 Connecting 狀態的客戶端連線
func NewClient(conn *websocket.Conn, userID uint) *Client {
	return &Client{
		ID:       uuid.NewString(),
		Conn:     conn,
		UserID:   userID,
		State:    StateConnecting,
		SendChan: make(chan *ServerFrame, sendBufferSize),
		done:     make(chan struct{}),
	}
}

// closeTransport 只關閉底層連線
// 登記清理交給該連線自己的讀取迴圈結束時處理
func (c *Client) closeTransport() {
	if c.Conn != nil {
		c.Conn.Close()
	}
}

// ChatService 管理 WebSocket 連線的生命週期與協議狀態機
type ChatService struct {
	registry *ConnectionRegistry
	router   *BroadcastRouter
	history  *HistoryService
	projects ProjectChecker
}

func NewChatService(registry *ConnectionRegistry, router *BroadcastRouter, history *HistoryService, projects ProjectChecker) *ChatService {
	return &ChatService{
		registry: registry,
		router:   router,
		history:  history,
		projects: projects,
	}
}

// HandleConnection 接手一條已完成升級的連線，直到連線結束才返回
// 每條連線各自持有一個讀取迴圈（本 goroutine）與一個寫入迴圈
func (s *ChatService) HandleConnection(client *Client) {
	client.State = StateOpen
	s.registry.Register(client)

	defer s.Close(client)

	go s.writePump(client)
	s.readPump(client)
}

// Close 將連線轉入終態並自登記表移除，重複呼叫是安全的
func (s *ChatService) Close(client *Client) {
	client.closeOnce.Do(func() {
		client.State = StateClosed
		s.registry.Unregister(client)
		close(client.done)
		client.closeTransport()
	})
}

// readPump 持續讀取並處理客戶端傳入的訊息框
func (s *ChatService) readPump(client *Client) {
	client.Conn.SetReadLimit(maxMessageSize)
	client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket unexpected close error: %v", err)
			}
			return
		}

		if err := s.HandleFrame(client, raw); err != nil {
			// 協議錯誤屬於連線層級：回報後結束這條連線，不影響其他連線
			log.Printf("connection %s protocol error: %v", client.ID, err)
			s.sendError(client, err.Error())
			return
		}
	}
}

// writePump 將排入佇列的訊息框寫出，並定期發送心跳
func (s *ChatService) writePump(client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case frame := <-client.SendChan:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			data, err := json.Marshal(frame)
			if err != nil {
				log.Printf("frame encoding error: %v", err)
				continue
			}
			if err := client.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-client.done:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

// HandleFrame 依照連線目前的狀態處理一個傳入的訊息框
//
// 回傳非 nil 表示協議錯誤，呼叫端應結束這條連線。
// 驗證與儲存層級的失敗只以 error 訊息框回報給發送者本人，回傳 nil。
func (s *ChatService) HandleFrame(client *Client, raw []byte) error {
	var frame ClientFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return fmt.Errorf("%w: %v", ErrBadFrame, err)
	}

	switch frame.Type {
	case FrameSubscribe:
		return s.handleSubscribe(client, &frame)
	case FrameSend:
		return s.handleSend(client, &frame)
	default:
		return fmt.Errorf("%w: 未知的類型 %q", ErrBadFrame, frame.Type)
	}
}

// handleSubscribe 處理訂閱請求：加入房間，然後以歷史訊息初始化客戶端
// 客戶端帶有 last_seen_id 時走補發路徑，只取它還沒看過的部分
func (s *ChatService) handleSubscribe(client *Client, frame *ClientFrame) error {
	if client.State != StateOpen && client.State != StateSubscribed {
		return fmt.Errorf("%w: 狀態 %s 不允許訂閱", ErrBadFrame, client.State)
	}

	exists, err := s.projects.Exists(frame.ProjectID)
	if err != nil {
		s.sendError(client, ErrStorage.Error())
		return nil
	}
	if !exists {
		s.sendError(client, ErrUnknownProject.Error())
		return nil
	}

	s.registry.Subscribe(client, frame.ProjectID)
	client.State = StateSubscribed

	var messages []models.Message
	if frame.LastSeenID > 0 {
		messages, err = s.history.CatchUp(frame.ProjectID, frame.LastSeenID)
	} else {
		messages, err = s.history.InitialLoad(frame.ProjectID)
	}
	if err != nil {
		s.sendError(client, ErrStorage.Error())
		return nil
	}

	s.enqueue(client, &ServerFrame{Type: FrameHistory, Messages: messages})
	return nil
}

// handleSend 處理聊天發送：Subscribed 狀態的自迴圈
// 在訂閱之前發送是可表示的協議錯誤，會結束這條連線
func (s *ChatService) handleSend(client *Client, frame *ClientFrame) error {
	if client.State != StateSubscribed {
		return fmt.Errorf("%w: %v", ErrBadFrame, ErrNotSubscribed)
	}
	if frame.ProjectID != client.ProjectID {
		s.sendError(client, "只能發送到目前訂閱的專案")
		return nil
	}

	// 發送者不需要另外的確認：它會和其他成員一樣
	// 從廣播收到帶伺服器 ID 與時間戳的 delivered 訊息框
	if _, err := s.router.Publish(client.ProjectID, client.UserID, frame.Content, frame.Kind); err != nil {
		s.sendError(client, err.Error())
		return nil
	}
	return nil
}

// sendError 將錯誤回報給發送者本人，絕不廣播
func (s *ChatService) sendError(client *Client, text string) {
	s.enqueue(client, &ServerFrame{Type: FrameError, Error: text})
}

// enqueue 非阻塞地排入一個訊息框，緩衝滿時記錄後放棄
func (s *ChatService) enqueue(client *Client, frame *ServerFrame) {
	select {
	case client.SendChan <- frame:
	default:
		log.Printf("connection %s send buffer full, frame %s dropped", client.ID, frame.Type)
	}
}
