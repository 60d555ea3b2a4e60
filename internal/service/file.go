package service

import (
	"construction_web/internal/models"
	"construction_web/internal/repository"
)

// FileService 只管理檔案的中繼資料，檔案本體由獨立的上傳管線處理
type FileService struct {
	fileRepo repository.FileRepository
}

func NewFileService(fileRepo repository.FileRepository) *FileService {
	return &FileService{fileRepo: fileRepo}
}

func (s *FileService) CreateFile(file *models.ProjectFile) error {
	return s.fileRepo.Create(file)
}

func (s *FileService) ListFiles(projectID uint) ([]models.ProjectFile, error) {
	return s.fileRepo.FindByProjectID(projectID)
}
