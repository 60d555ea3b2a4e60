package service

import (
	"construction_web/internal/models"
	"construction_web/internal/repository"
)

type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

func (s *ExpenseService) CreateExpense(expense *models.Expense) error {
	return s.expenseRepo.Create(expense)
}

func (s *ExpenseService) ListExpenses(projectID uint) ([]models.Expense, error) {
	return s.expenseRepo.FindByProjectID(projectID)
}
