package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"construction_web/internal/service"
)

// 定義 WebSocket 升級器
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 注意：在生產環境中，應該檢查 origin
	},
}

// WebSocketHandler 處理 WebSocket 連接
type WebSocketHandler struct {
	chatService *service.ChatService
}

// NewWebSocketHandler 創建一個新的 WebSocketHandler 實例
func NewWebSocketHandler(chatService *service.ChatService) *WebSocketHandler {
	return &WebSocketHandler{chatService: chatService}
}

// HandleWebSocket 處理 WebSocket 連接請求
//
// 身分已由中間件驗證完畢。連線建立後客戶端以 subscribe 訊息框
// 選擇建案，之後的收發都由 ChatService 的狀態機處理。
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// 升級失敗時 gorilla 已寫出 HTTP 錯誤回應
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	client := service.NewClient(conn, userID.(uint))
	h.chatService.HandleConnection(client)
}
