package services

import (
	"errors"

	"github.com/trishareddy/grocery-budget-api/internal/models"
	"gorm.io/gorm"
)

// BudgetService provides methods to interact with the budget table.
// Budgets are standalone records: no uniqueness, no linkage to spend.
type BudgetService interface {
	GetAllBudgets() ([]models.Budget, error)
	GetBudgetByID(id uint) (models.Budget, error)
	CreateBudget(amount float64, period string) (models.Budget, error)
	DeleteBudget(id uint) error
}

type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new instance of BudgetService
func NewBudgetService(db *gorm.DB) BudgetService {
	return &budgetService{db: db}
}

func (s *budgetService) GetAllBudgets() ([]models.Budget, error) {
	budgets := make([]models.Budget, 0)
	if err := s.db.Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

func (s *budgetService) GetBudgetByID(id uint) (models.Budget, error) {
	var budget models.Budget
	if err := s.db.First(&budget, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Budget{}, ErrNotFound
		}
		return models.Budget{}, err
	}
	return budget, nil
}

func (s *budgetService) CreateBudget(amount float64, period string) (models.Budget, error) {
	budget := models.Budget{Amount: amount, Period: period}
	if err := s.db.Create(&budget).Error; err != nil {
		return models.Budget{}, err
	}
	return budget, nil
}

func (s *budgetService) DeleteBudget(id uint) error {
	var budget models.Budget
	if err := s.db.First(&budget, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Delete(&models.Budget{}, id).Error
}
