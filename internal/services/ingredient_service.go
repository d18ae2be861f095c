package services

import (
	"errors"

	"github.com/trishareddy/grocery-budget-api/internal/models"
	"gorm.io/gorm"
)

// IngredientUpdate carries a partial update: nil fields keep their prior value.
type IngredientUpdate struct {
	Name  *string
	Price *float64
	Unit  *string
}

// IngredientService provides methods to interact with the ingredient table
type IngredientService interface {
	// GetAllIngredients retrieves all ingredients
	GetAllIngredients() ([]models.Ingredient, error)
	// GetIngredientByID retrieves an ingredient by its ID
	GetIngredientByID(id uint) (models.Ingredient, error)
	// CreateIngredient creates a new ingredient, rejecting duplicate names
	CreateIngredient(name string, price float64, unit string) (models.Ingredient, error)
	// UpdateIngredient applies the non-nil fields of update to an existing ingredient
	UpdateIngredient(id uint, update IngredientUpdate) (models.Ingredient, error)
	// DeleteIngredient deletes an ingredient and removes it from any meal that references it
	DeleteIngredient(id uint) error
}

type ingredientService struct {
	db *gorm.DB
}

// NewIngredientService creates a new instance of IngredientService
func NewIngredientService(db *gorm.DB) IngredientService {
	return &ingredientService{db: db}
}

func (s *ingredientService) GetAllIngredients() ([]models.Ingredient, error) {
	ingredients := make([]models.Ingredient, 0)
	if err := s.db.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *ingredientService) GetIngredientByID(id uint) (models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Ingredient{}, ErrNotFound
		}
		return models.Ingredient{}, err
	}
	return ingredient, nil
}

func (s *ingredientService) CreateIngredient(name string, price float64, unit string) (models.Ingredient, error) {
	var existing models.Ingredient
	if err := s.db.Where("name = ?", name).First(&existing).Error; err == nil {
		return models.Ingredient{}, ErrIngredientExists
	}

	ingredient := models.Ingredient{Name: name, Price: price, Unit: unit}
	if err := s.db.Create(&ingredient).Error; err != nil {
		if isUniqueViolation(err) {
			return models.Ingredient{}, ErrIngredientExists
		}
		return models.Ingredient{}, err
	}
	return ingredient, nil
}

func (s *ingredientService) UpdateIngredient(id uint, update IngredientUpdate) (models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Ingredient{}, ErrNotFound
		}
		return models.Ingredient{}, err
	}

	if update.Name != nil {
		// The new name must not collide with a different ingredient
		var existing models.Ingredient
		if err := s.db.Where("name = ?", *update.Name).First(&existing).Error; err == nil && existing.ID != id {
			return models.Ingredient{}, ErrIngredientNameTaken
		}
		ingredient.Name = *update.Name
	}
	if update.Price != nil {
		ingredient.Price = *update.Price
	}
	if update.Unit != nil {
		ingredient.Unit = *update.Unit
	}

	if err := s.db.Save(&ingredient).Error; err != nil {
		if isUniqueViolation(err) {
			return models.Ingredient{}, ErrIngredientNameTaken
		}
		return models.Ingredient{}, err
	}
	return ingredient, nil
}

// DeleteIngredient hard-deletes the ingredient. Join rows referencing it
// are removed in the same transaction, so meals silently lose the
// ingredient from their set.
func (s *ingredientService) DeleteIngredient(id uint) error {
	var ingredient models.Ingredient
	if err := s.db.First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ingredient_id = ?", id).Delete(&models.MealIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Ingredient{}, id).Error
	})
}
