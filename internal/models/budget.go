package models

// Budget is a standalone spending target. Period is free text ("weekly",
// "monthly", ...); it is not validated beyond presence and is not linked
// to meals or ingredients.
type Budget struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Amount float64 `gorm:"not null" json:"amount"`
	Period string  `gorm:"not null" json:"period"`
}
