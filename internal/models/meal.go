package models

// Meal is a named set of ingredients. The relation carries no attributes
// (no quantities), just membership.
type Meal struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"uniqueIndex;not null" json:"name"`
	Ingredients []Ingredient `gorm:"many2many:meal_ingredients" json:"ingredients"`
}

// MealIngredient is the explicit join model for the meal<->ingredient
// many-to-many. Registered with SetupJoinTable so the composite primary
// key is under our control.
type MealIngredient struct {
	MealID       uint `gorm:"primaryKey"`
	IngredientID uint `gorm:"primaryKey"`
}

func (MealIngredient) TableName() string {
	return "meal_ingredients"
}
