package repository

import "construction_web/internal/storage"

type Repositories struct {
	User      UserRepository
	Project   ProjectRepository
	Worker    WorkerRepository
	Checklist ChecklistRepository
	Expense   ExpenseRepository
	File      FileRepository
	Message   MessageRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		User:      NewUserRepository(db),
		Project:   NewProjectRepository(db),
		Worker:    NewWorkerRepository(db),
		Checklist: NewChecklistRepository(db),
		Expense:   NewExpenseRepository(db),
		File:      NewFileRepository(db),
		Message:   NewMessageRepository(db),
	}
}
