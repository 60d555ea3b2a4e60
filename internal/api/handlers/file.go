package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"construction_web/internal/models"
	"construction_web/internal/service"
)

// FileHandler 處理建案檔案中繼資料相關的請求
// 檔案本體由獨立的上傳管線處理，這裡只登記引用
type FileHandler struct {
	fileService *service.FileService
}

func NewFileHandler(fileService *service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// CreateFileInput 定義登記檔案中繼資料請求的結構
type CreateFileInput struct {
	ProjectID uint   `json:"project_id" binding:"required"`
	Filename  string `json:"filename" binding:"required"`
	URL       string `json:"url" binding:"required"`
	FileType  string `json:"file_type"`
	Tags      string `json:"tags"`
}

// CreateFile 登記一筆檔案中繼資料
func (h *FileHandler) CreateFile(c *gin.Context) {
	var input CreateFileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("userID").(uint)
	file := models.ProjectFile{
		ProjectID:  input.ProjectID,
		UploaderID: userID,
		Filename:   input.Filename,
		URL:        input.URL,
		FileType:   input.FileType,
		Tags:       input.Tags,
	}
	if err := h.fileService.CreateFile(&file); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "登記檔案失敗"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": file.ID, "url": file.URL})
}

// ListFiles 獲取建案的檔案列表，最新的排在前面
func (h *FileHandler) ListFiles(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "錯誤的建案ID"})
		return
	}

	files, err := h.fileService.ListFiles(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查詢檔案失敗"})
		return
	}

	c.JSON(http.StatusOK, files)
}
