package repository

import (
	"construction_web/internal/models"
	"construction_web/internal/storage"
)

type FileRepository interface {
	Create(file *models.ProjectFile) error
	FindByProjectID(projectID uint) ([]models.ProjectFile, error)
}

type fileRepository struct {
	db *storage.PostgresDB
}

func NewFileRepository(db *storage.PostgresDB) FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) Create(file *models.ProjectFile) error {
	return r.db.Create(file).Error
}

func (r *fileRepository) FindByProjectID(projectID uint) ([]models.ProjectFile, error) {
	var files []models.ProjectFile
	err := r.db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&files).Error
	return files, err
}
