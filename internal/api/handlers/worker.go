package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"construction_web/internal/models"
	"construction_web/internal/service"
)

// WorkerHandler 處理工人名冊相關的請求
type WorkerHandler struct {
	workerService *service.WorkerService
}

func NewWorkerHandler(workerService *service.WorkerService) *WorkerHandler {
	return &WorkerHandler{workerService: workerService}
}

// CreateWorkerInput 定義新增工人請求的結構
type CreateWorkerInput struct {
	ProjectID uint    `json:"project_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Phone     string  `json:"phone"`
	WorkType  string  `json:"work_type"`
	DailyWage float64 `json:"daily_wage"`
}

// CreateWorker 新增一名工人到建案名冊
func (h *WorkerHandler) CreateWorker(c *gin.Context) {
	var input CreateWorkerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	worker := models.Worker{
		ProjectID: input.ProjectID,
		Name:      input.Name,
		Phone:     input.Phone,
		WorkType:  input.WorkType,
		DailyWage: input.DailyWage,
	}
	if err := h.workerService.CreateWorker(&worker); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "新增工人失敗"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": worker.ID})
}

// ListWorkers 獲取建案的工人名冊
func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "錯誤的建案ID"})
		return
	}

	workers, err := h.workerService.ListWorkers(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查詢工人名冊失敗"})
		return
	}

	c.JSON(http.StatusOK, workers)
}
