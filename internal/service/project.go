package service

import (
	"construction_web/internal/models"
	"construction_web/internal/repository"
)

type ProjectService struct {
	projectRepo   repository.ProjectRepository
	checklistRepo repository.ChecklistRepository
}

func NewProjectService(projectRepo repository.ProjectRepository, checklistRepo repository.ChecklistRepository) *ProjectService {
	return &ProjectService{
		projectRepo:   projectRepo,
		checklistRepo: checklistRepo,
	}
}

// defaultChecklist 是每個新建案預設建立的施工檢查清單
var defaultChecklist = []struct {
	Stage string
	Task  string
}{
	{"Planning", "Finalize Architecture Plan"},
	{"Planning", "Get Municipal Approval"},
	{"Foundation", "Excavation"},
	{"Foundation", "PCC Work"},
	{"Structure", "Column Raising"},
	{"Structure", "Slab Casting"},
	{"Finishing", "Plastering"},
	{"Finishing", "Painting"},
}

// CreateProject 建立建案，將建立者登記為 owner 成員，並種入預設檢查清單
func (s *ProjectService) CreateProject(project *models.Project) error {
	if err := s.projectRepo.Create(project); err != nil {
		return err
	}

	member := &models.ProjectMember{
		ProjectID: project.ID,
		UserID:    project.OwnerID,
		Role:      "owner",
	}
	if err := s.projectRepo.AddMember(member); err != nil {
		return err
	}

	items := make([]models.ChecklistItem, 0, len(defaultChecklist))
	for _, t := range defaultChecklist {
		items = append(items, models.ChecklistItem{
			ProjectID: project.ID,
			Stage:     t.Stage,
			Task:      t.Task,
			Status:    models.ChecklistStatusPending,
		})
	}
	return s.checklistRepo.CreateBatch(items)
}

func (s *ProjectService) GetProject(id uint) (*models.Project, error) {
	return s.projectRepo.FindByID(id)
}

func (s *ProjectService) ListProjects() ([]models.Project, error) {
	return s.projectRepo.FindAll()
}

func (s *ProjectService) GetChecklist(projectID uint) ([]models.ChecklistItem, error) {
	return s.checklistRepo.FindByProjectID(projectID)
}

func (s *ProjectService) UpdateChecklistStatus(itemID uint, status models.ChecklistStatus) error {
	return s.checklistRepo.UpdateStatus(itemID, status)
}
