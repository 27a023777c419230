package models

import (
	"time"

	"gorm.io/gorm"
)

// Food is one logged entry. Macro values are a per-serving snapshot taken
// when the entry was created; later catalog changes never touch it.
type Food struct {
	gorm.Model
	Username      string    `gorm:"index:idx_foods_user_date;not null" json:"username"`
	FoodName      string    `gorm:"not null" json:"foodName"`
	Calories      float64   `gorm:"not null" json:"calories"`
	Protein       float64   `json:"protein"`
	Carbohydrates float64   `json:"carbohydrates"`
	Fat           float64   `json:"fat"`
	Meal          string    `json:"meal"` // Breakfast | Lunch | Dinner | Snacks
	Servings      float64   `gorm:"default:1" json:"servings"`
	Date          time.Time `gorm:"index:idx_foods_user_date,sort:desc" json:"date"`
}
