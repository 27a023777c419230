package services

import (
	"log"
	"time"

	"nutriassist/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type seedItem struct {
	foodName string
	calories float64
	protein  float64
	carbs    float64
	fat      float64
	servings float64
}

type seedPlan struct {
	planName string
	calories float64
	protein  float64
	carbs    float64
	fat      float64
	meals    map[string][]seedItem
}

var defaultPlans = []seedPlan{
	{
		planName: "Weight Loss Plan",
		calories: 1800, protein: 120, carbs: 180, fat: 50,
		meals: map[string][]seedItem{
			"Breakfast": {
				{"Oatmeal", 150, 5, 27, 3, 1},
				{"Banana", 105, 1, 27, 0, 1},
			},
			"Lunch": {
				{"Grilled Chicken Breast", 165, 31, 0, 3.6, 1},
				{"Brown Rice", 112, 2.6, 22, 0.9, 1},
			},
			"Dinner": {
				{"Salmon", 206, 22, 0, 12, 1},
				{"Broccoli", 55, 4, 11, 0.6, 1},
			},
			"Snacks": {
				{"Greek Yogurt", 100, 17, 6, 0, 1},
			},
		},
	},
	{
		planName: "Balanced Plan",
		calories: 2000, protein: 100, carbs: 220, fat: 60,
		meals: map[string][]seedItem{
			"Breakfast": {
				{"Whole Wheat Toast", 80, 4, 15, 1, 2},
				{"Avocado", 160, 2, 9, 15, 0.5},
			},
			"Lunch": {
				{"Turkey Sandwich", 350, 25, 35, 12, 1},
				{"Mixed Greens", 20, 2, 4, 0, 1},
			},
			"Dinner": {
				{"Lean Beef", 250, 26, 0, 15, 1},
				{"Sweet Potato", 112, 2, 26, 0, 1},
			},
			"Snacks": {
				{"Almonds", 164, 6, 6, 14, 1},
			},
		},
	},
	{
		planName: "Gain Weight Plan",
		calories: 2500, protein: 150, carbs: 300, fat: 80,
		meals: map[string][]seedItem{
			"Breakfast": {
				{"Protein Pancakes", 300, 25, 30, 8, 1},
				{"Eggs", 140, 12, 1, 10, 2},
			},
			"Lunch": {
				{"Chicken Thigh", 209, 26, 0, 11, 1},
				{"Quinoa", 222, 8, 40, 4, 1},
			},
			"Dinner": {
				{"Ground Beef", 250, 26, 0, 15, 1},
				{"White Rice", 205, 4, 45, 0, 1},
			},
			"Snacks": {
				{"Protein Shake", 200, 25, 15, 3, 1},
				{"Peanut Butter", 190, 8, 6, 16, 1},
			},
		},
	},
}

// SeedDefaultPlans inserts the three shared plan templates once. A non-zero
// count of default plans means a previous boot already seeded them.
func SeedDefaultPlans(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.DietPlan{}).Where("is_default = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Default diet plans already exist, skipping seed.")
		return nil
	}

	log.Println("Seeding default diet plans...")
	now := time.Now()
	for _, sp := range defaultPlans {
		plan := models.DietPlan{
			Username:            "system",
			PlanName:            sp.planName,
			TargetCalories:      sp.calories,
			TargetProtein:       sp.protein,
			TargetCarbohydrates: sp.carbs,
			TargetFat:           sp.fat,
			StartDate:           now,
			EndDate:             now.AddDate(1, 0, 0),
			IsDefault:           true,
		}
		for _, slot := range models.MealSlots {
			for i, it := range sp.meals[slot] {
				plan.Items = append(plan.Items, models.MealItem{
					ItemID:        uuid.NewString(),
					Slot:          slot,
					Position:      i,
					FoodName:      it.foodName,
					Calories:      it.calories,
					Protein:       it.protein,
					Carbohydrates: it.carbs,
					Fat:           it.fat,
					Servings:      it.servings,
				})
			}
		}
		if err := db.Create(&plan).Error; err != nil {
			return err
		}
	}
	log.Println("Default diet plans seeded successfully!")
	return nil
}
