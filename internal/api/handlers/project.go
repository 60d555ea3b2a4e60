package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"construction_web/internal/models"
	"construction_web/internal/service"
)

// ProjectHandler 處理建案與檢查清單相關的請求
type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// CreateProjectInput 定義建立建案請求的結構
type CreateProjectInput struct {
	Name              string  `json:"name" binding:"required"`
	ConstructionType  string  `json:"construction_type"`
	PlotSize          string  `json:"plot_size"`
	BuiltUpArea       string  `json:"built_up_area"`
	Floors            int     `json:"floors"`
	Budget            float64 `json:"budget"`
	LoanAmount        float64 `json:"loan_amount"`
	StartDate         string  `json:"start_date"`
	CompletionDate    string  `json:"completion_date"`
	SiteAddress       string  `json:"site_address"`
	City              string  `json:"city"`
	Pincode           string  `json:"pincode"`
	ArchitectDetails  string  `json:"architect_details"`
	ContractorDetails string  `json:"contractor_details"`
}

// CreateProject 建立建案，建立者自動成為 owner 成員
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var input CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("userID").(uint)
	project := models.Project{
		Name:              input.Name,
		OwnerID:           userID,
		ConstructionType:  input.ConstructionType,
		PlotSize:          input.PlotSize,
		BuiltUpArea:       input.BuiltUpArea,
		Floors:            input.Floors,
		Budget:            input.Budget,
		LoanAmount:        input.LoanAmount,
		StartDate:         input.StartDate,
		CompletionDate:    input.CompletionDate,
		SiteAddress:       input.SiteAddress,
		City:              input.City,
		Pincode:           input.Pincode,
		ArchitectDetails:  input.ArchitectDetails,
		ContractorDetails: input.ContractorDetails,
	}

	if err := h.projectService.CreateProject(&project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "建立建案失敗"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": project.ID})
}

// GetProject 獲取建案資訊（含成員）
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "錯誤的建案ID"})
		return
	}

	project, err := h.projectService.GetProject(projectID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "找不到該建案"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// ListProjects 獲取建案列表
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查詢建案失敗"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// ListChecklist 獲取建案的檢查清單
func (h *ProjectHandler) ListChecklist(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "錯誤的建案ID"})
		return
	}

	items, err := h.projectService.GetChecklist(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查詢檢查清單失敗"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// UpdateChecklistInput 定義更新檢查項目狀態請求的結構
type UpdateChecklistInput struct {
	Status models.ChecklistStatus `json:"status" binding:"required,oneof=pending completed"`
}

// UpdateChecklistItem 更新檢查項目的狀態
func (h *ProjectHandler) UpdateChecklistItem(c *gin.Context) {
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "錯誤的項目ID"})
		return
	}

	var input UpdateChecklistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.projectService.UpdateChecklistStatus(itemID, input.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新檢查項目失敗"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// parseIDParam 解析路徑中的數字 ID
func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
