package models

// Ingredient is a grocery item with a unit price, e.g. {"Milk", 3.49, "gal"}.
type Ingredient struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"uniqueIndex;not null" json:"name"`
	Price float64 `gorm:"not null" json:"price"`
	Unit  string  `gorm:"not null" json:"unit"`
}
