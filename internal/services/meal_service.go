package services

import (
	"errors"

	"github.com/trishareddy/grocery-budget-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MealService provides methods to interact with meals and their ingredient sets
type MealService interface {
	// GetAllMeals retrieves all meals with their ingredients expanded
	GetAllMeals() ([]models.Meal, error)
	// GetMealByID retrieves a meal by its ID with its ingredients expanded
	GetMealByID(id uint) (models.Meal, error)
	// CreateMeal creates a meal linked to the given ingredient ids.
	// Ids that do not resolve to an existing ingredient are silently dropped.
	CreateMeal(name string, ingredientIDs []uint) (models.Meal, error)
	// DeleteMeal deletes a meal and its join rows; ingredients are untouched
	DeleteMeal(id uint) error
}

type mealService struct {
	db *gorm.DB
}

// NewMealService creates a new instance of MealService
func NewMealService(db *gorm.DB) MealService {
	return &mealService{db: db}
}

func (s *mealService) GetAllMeals() ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := s.db.Preload("Ingredients").Find(&meals).Error; err != nil {
		return nil, err
	}
	for i := range meals {
		if meals[i].Ingredients == nil {
			meals[i].Ingredients = []models.Ingredient{}
		}
	}
	return meals, nil
}

func (s *mealService) GetMealByID(id uint) (models.Meal, error) {
	var meal models.Meal
	if err := s.db.Preload("Ingredients").First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Meal{}, ErrNotFound
		}
		return models.Meal{}, err
	}
	if meal.Ingredients == nil {
		meal.Ingredients = []models.Ingredient{}
	}
	return meal, nil
}

func (s *mealService) CreateMeal(name string, ingredientIDs []uint) (models.Meal, error) {
	var existing models.Meal
	if err := s.db.Where("name = ?", name).First(&existing).Error; err == nil {
		return models.Meal{}, ErrMealExists
	}

	// Set-membership filter: unresolvable ids are dropped, not an error
	ingredients := make([]models.Ingredient, 0)
	if len(ingredientIDs) > 0 {
		if err := s.db.Where("id IN ?", ingredientIDs).Find(&ingredients).Error; err != nil {
			return models.Meal{}, err
		}
	}

	meal := models.Meal{Name: name}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&meal).Error; err != nil {
			return err
		}
		// Replace-all write of the join set inside the same transaction
		return tx.Model(&meal).Association("Ingredients").Replace(&ingredients)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return models.Meal{}, ErrMealExists
		}
		return models.Meal{}, err
	}

	meal.Ingredients = ingredients
	return meal, nil
}

func (s *mealService) DeleteMeal(id uint) error {
	var meal models.Meal
	if err := s.db.First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", id).Delete(&models.MealIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Meal{}, id).Error
	})
}
