package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"construction_web/internal/models"
	"construction_web/internal/service"
)

// ExpenseHandler 處理支出帳本相關的請求
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseInput 定義新增支出請求的結構
type CreateExpenseInput struct {
	ProjectID uint    `json:"project_id" binding:"required"`
	ItemName  string  `json:"item_name" binding:"required"`
	Cost      float64 `json:"cost" binding:"required"`
	Quantity  float64 `json:"quantity"`
	Vendor    string  `json:"vendor"`
	Category  string  `json:"category"`
}

// CreateExpense 新增一筆支出
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var input CreateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense := models.Expense{
		ProjectID: input.ProjectID,
		ItemName:  input.ItemName,
		Cost:      input.Cost,
		Quantity:  input.Quantity,
		Vendor:    input.Vendor,
		Category:  input.Category,
	}
	if err := h.expenseService.CreateExpense(&expense); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "新增支出失敗"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": expense.ID})
}

// ListExpenses 獲取建案的支出帳本，最新的排在前面
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "錯誤的建案ID"})
		return
	}

	expenses, err := h.expenseService.ListExpenses(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查詢支出失敗"})
		return
	}

	c.JSON(http.StatusOK, expenses)
}
