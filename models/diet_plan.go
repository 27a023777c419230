package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal slot names, in display order.
var MealSlots = []string{"Breakfast", "Lunch", "Dinner", "Snacks"}

func ValidMealSlot(slot string) bool {
	for _, s := range MealSlots {
		if s == slot {
			return true
		}
	}
	return false
}

type DietPlan struct {
	gorm.Model
	Username            string     `gorm:"index;not null" json:"username"` // "system" for seeded defaults
	PlanName            string     `gorm:"not null" json:"planName"`
	TargetCalories      float64    `gorm:"not null" json:"targetCalories"`
	TargetProtein       float64    `json:"targetProtein"`
	TargetCarbohydrates float64    `json:"targetCarbohydrates"`
	TargetFat           float64    `json:"targetFat"`
	StartDate           time.Time  `json:"startDate"`
	EndDate             time.Time  `json:"endDate"`
	IsDefault           bool       `gorm:"index" json:"isDefault"`
	Items               []MealItem `gorm:"foreignKey:PlanID" json:"-"`
}

// MealItem is one food inside a plan's meal slot. ItemID is the stable
// identity used for removal; Position only drives display order and the
// positional REST parameter. Macro values are frozen at insertion time.
type MealItem struct {
	gorm.Model
	ItemID        string  `gorm:"uniqueIndex;not null" json:"itemId"`
	PlanID        uint    `gorm:"index:idx_meal_items_plan_slot;not null" json:"-"`
	Slot          string  `gorm:"index:idx_meal_items_plan_slot;not null" json:"-"`
	Position      int     `gorm:"not null" json:"-"`
	FoodID        *uint   `json:"food"` // weak reference to a logged Food, may be nil
	FoodName      string  `gorm:"not null" json:"foodName"`
	Calories      float64 `gorm:"not null" json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	Servings      float64 `gorm:"default:1" json:"servings"`
}

// Meals groups the plan's items per slot, ordered by position. Every slot is
// present in the result even when empty, matching the wire shape clients expect.
func (p *DietPlan) Meals() map[string][]MealItem {
	meals := make(map[string][]MealItem, len(MealSlots))
	for _, slot := range MealSlots {
		meals[slot] = []MealItem{}
	}
	for _, it := range p.Items {
		meals[it.Slot] = append(meals[it.Slot], it)
	}
	return meals
}

// PlanTotals is the server-computed macro sum over all meal slots.
type PlanTotals struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
}

// Totals folds every item as macro × servings.
func (p *DietPlan) Totals() PlanTotals {
	var t PlanTotals
	for _, it := range p.Items {
		servings := it.Servings
		if servings == 0 {
			servings = 1
		}
		t.Calories += it.Calories * servings
		t.Protein += it.Protein * servings
		t.Carbohydrates += it.Carbohydrates * servings
		t.Fat += it.Fat * servings
	}
	return t
}
