package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"construction_web/internal/service"
)

// MessageHandler 提供聊天歷史的 REST 讀取端點
// 頁面載入與重連補發都可以走這裡，與 WebSocket 的 history 訊息框同源
type MessageHandler struct {
	historyService *service.HistoryService
}

func NewMessageHandler(historyService *service.HistoryService) *MessageHandler {
	return &MessageHandler{historyService: historyService}
}

// History 回傳建案的聊天歷史
// 可選的 after_id 游標只取 ID 更大的訊息，limit 限制筆數
func (h *MessageHandler) History(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "錯誤的建案ID"})
		return
	}

	var afterID uint64
	if cursor := c.Query("after_id"); cursor != "" {
		afterID, err = strconv.ParseUint(cursor, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "錯誤的游標"})
			return
		}
	}

	limit := 0
	if rawLimit := c.Query("limit"); rawLimit != "" {
		limit, err = strconv.Atoi(rawLimit)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "錯誤的筆數上限"})
			return
		}
	}

	messages, err := h.historyService.Page(projectID, uint(afterID), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查詢聊天歷史失敗"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
