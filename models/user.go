package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string   `gorm:"uniqueIndex;not null" json:"username"`
	Email    string   `gorm:"uniqueIndex;not null" json:"email"`
	Password string   `gorm:"not null" json:"-"`
	Age      *float64 `json:"age"`
	Height   *float64 `json:"height"` // cm
	Weight   *float64 `json:"weight"` // kg
	Goal     string   `gorm:"default:Maintain" json:"goal"` // Maintain | Lose | Gain
}

func ValidGoal(goal string) bool {
	switch goal {
	case "Maintain", "Lose", "Gain":
		return true
	}
	return false
}
