package service

import (
	"construction_web/internal/models"
	"construction_web/internal/repository"
)

type WorkerService struct {
	workerRepo repository.WorkerRepository
}

func NewWorkerService(workerRepo repository.WorkerRepository) *WorkerService {
	return &WorkerService{workerRepo: workerRepo}
}

func (s *WorkerService) CreateWorker(worker *models.Worker) error {
	return s.workerRepo.Create(worker)
}

func (s *WorkerService) ListWorkers(projectID uint) ([]models.Worker, error) {
	return s.workerRepo.FindByProjectID(projectID)
}
