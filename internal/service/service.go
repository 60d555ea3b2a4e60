package service

import (
	"construction_web/internal/repository"
)

type Services struct {
	UserService        *UserService
	ProjectService     *ProjectService
	WorkerService      *WorkerService
	ExpenseService     *ExpenseService
	FileService        *FileService
	HistoryService     *HistoryService
	ChatService        *ChatService
	BroadcastRouter    *BroadcastRouter
	ConnectionRegistry *ConnectionRegistry
}

func NewServices(repos *repository.Repositories) *Services {
	registry := NewConnectionRegistry()
	router := NewBroadcastRouter(registry, repos.Message, repos.Project)
	history := NewHistoryService(repos.Message)
	chat := NewChatService(registry, router, history, repos.Project)

	return &Services{
		UserService:        NewUserService(repos.User),
		ProjectService:     NewProjectService(repos.Project, repos.Checklist),
		WorkerService:      NewWorkerService(repos.Worker),
		ExpenseService:     NewExpenseService(repos.Expense),
		FileService:        NewFileService(repos.File),
		HistoryService:     history,
		ChatService:        chat,
		BroadcastRouter:    router,
		ConnectionRegistry: registry,
	}
}
