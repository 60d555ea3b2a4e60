package repository

import (
	"construction_web/internal/models"
	"construction_web/internal/storage"
)

type ChecklistRepository interface {
	CreateBatch(items []models.ChecklistItem) error
	FindByProjectID(projectID uint) ([]models.ChecklistItem, error)
	UpdateStatus(id uint, status models.ChecklistStatus) error
}

type checklistRepository struct {
	db *storage.PostgresDB
}

func NewChecklistRepository(db *storage.PostgresDB) ChecklistRepository {
	return &checklistRepository{db: db}
}

func (r *checklistRepository) CreateBatch(items []models.ChecklistItem) error {
	return r.db.Create(&items).Error
}

func (r *checklistRepository) FindByProjectID(projectID uint) ([]models.ChecklistItem, error) {
	var items []models.ChecklistItem
	err := r.db.Where("project_id = ?", projectID).Order("id asc").Find(&items).Error
	return items, err
}

func (r *checklistRepository) UpdateStatus(id uint, status models.ChecklistStatus) error {
	return r.db.Model(&models.ChecklistItem{}).Where("id = ?", id).
		Update("status", status).Error
}
