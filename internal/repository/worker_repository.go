package repository

import (
	"construction_web/internal/models"
	"construction_web/internal/storage"
)

type WorkerRepository interface {
	Create(worker *models.Worker) error
	FindByProjectID(projectID uint) ([]models.Worker, error)
}

type workerRepository struct {
	db *storage.PostgresDB
}

func NewWorkerRepository(db *storage.PostgresDB) WorkerRepository {
	return &workerRepository{db: db}
}

func (r *workerRepository) Create(worker *models.Worker) error {
	return r.db.Create(worker).Error
}

func (r *workerRepository) FindByProjectID(projectID uint) ([]models.Worker, error) {
	var workers []models.Worker
	err := r.db.Where("project_id = ?", projectID).Find(&workers).Error
	return workers, err
}
