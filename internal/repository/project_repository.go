package repository

import (
	"construction_web/internal/models"
	"construction_web/internal/storage"
)

type ProjectRepository interface {
	Create(project *models.Project) error
	FindByID(id uint) (*models.Project, error)
	FindAll() ([]models.Project, error)
	Exists(id uint) (bool, error)
	AddMember(member *models.ProjectMember) error
}

type projectRepository struct {
	db *storage.PostgresDB
}

func NewProjectRepository(db *storage.PostgresDB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

func (r *projectRepository) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Members").First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// Exists 檢查專案是否存在，供訊息路由在寫入前做驗證
func (r *projectRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *projectRepository) AddMember(member *models.ProjectMember) error {
	return r.db.Create(member).Error
}
