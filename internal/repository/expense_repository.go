package repository

import (
	"construction_web/internal/models"
	"construction_web/internal/storage"
)

type ExpenseRepository interface {
	Create(expense *models.Expense) error
	FindByProjectID(projectID uint) ([]models.Expense, error)
}

type expenseRepository struct {
	db *storage.PostgresDB
}

func NewExpenseRepository(db *storage.PostgresDB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(expense *models.Expense) error {
	return r.db.Create(expense).Error
}

// FindByProjectID 查詢建案的所有支出，最新的排在前面
func (r *expenseRepository) FindByProjectID(projectID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&expenses).Error
	return expenses, err
}
