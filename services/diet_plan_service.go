package services

import (
	"fmt"
	"time"

	"nutriassist/catalog"
	"nutriassist/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DietPlanService struct {
	db  *gorm.DB
	cat catalog.Catalog
}

func NewDietPlanService(db *gorm.DB, cat catalog.Catalog) *DietPlanService {
	return &DietPlanService{db: db, cat: cat}
}

// PlanResponse is a plan as served over the wire: slot-grouped meals plus the
// server-computed totals.
type PlanResponse struct {
	ID                  uint                         `json:"id"`
	Username            string                       `json:"username"`
	PlanName            string                       `json:"planName"`
	TargetCalories      float64                      `json:"targetCalories"`
	TargetProtein       float64                      `json:"targetProtein"`
	TargetCarbohydrates float64                      `json:"targetCarbohydrates"`
	TargetFat           float64                      `json:"targetFat"`
	StartDate           time.Time                    `json:"startDate"`
	EndDate             time.Time                    `json:"endDate"`
	IsDefault           bool                         `json:"isDefault"`
	CreatedAt           time.Time                    `json:"createdAt"`
	Meals               map[string][]models.MealItem `json:"meals"`
	CalculatedTotals    models.PlanTotals            `json:"calculatedTotals"`
}

func toPlanResponse(p *models.DietPlan) PlanResponse {
	return PlanResponse{
		ID:                  p.ID,
		Username:            p.Username,
		PlanName:            p.PlanName,
		TargetCalories:      p.TargetCalories,
		TargetProtein:       p.TargetProtein,
		TargetCarbohydrates: p.TargetCarbohydrates,
		TargetFat:           p.TargetFat,
		StartDate:           p.StartDate,
		EndDate:             p.EndDate,
		IsDefault:           p.IsDefault,
		CreatedAt:           p.CreatedAt,
		Meals:               p.Meals(),
		CalculatedTotals:    p.Totals(),
	}
}

type MealItemInput struct {
	FoodID        *uint   `json:"food"`
	FoodName      string  `json:"foodName"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	Servings      float64 `json:"servings"`
}

type CreatePlanInput struct {
	PlanName            string                     `json:"planName"`
	StartDate           *time.Time                 `json:"startDate"`
	EndDate             *time.Time                 `json:"endDate"`
	Meals               map[string][]MealItemInput `json:"meals"`
	TargetCalories      float64                    `json:"targetCalories"`
	TargetProtein       float64                    `json:"targetProtein"`
	TargetCarbohydrates float64                    `json:"targetCarbohydrates"`
	TargetFat           float64                    `json:"targetFat"`
}

func (s *DietPlanService) Create(username string, input CreatePlanInput) (*PlanResponse, error) {
	if input.PlanName == "" || input.TargetCalories == 0 {
		return nil, fmt.Errorf("%w: Plan name and target calories are required", ErrValidation)
	}
	if input.TargetCalories < 0 || input.TargetProtein < 0 ||
		input.TargetCarbohydrates < 0 || input.TargetFat < 0 {
		return nil, fmt.Errorf("%w: targets cannot be negative", ErrValidation)
	}

	now := time.Now()
	plan := models.DietPlan{
		Username:            username,
		PlanName:            input.PlanName,
		TargetCalories:      input.TargetCalories,
		TargetProtein:       input.TargetProtein,
		TargetCarbohydrates: input.TargetCarbohydrates,
		TargetFat:           input.TargetFat,
		StartDate:           now,
		EndDate:             now.AddDate(0, 0, 30),
	}
	if input.StartDate != nil {
		plan.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		plan.EndDate = *input.EndDate
	}

	for slot, items := range input.Meals {
		if !models.ValidMealSlot(slot) {
			return nil, fmt.Errorf("%w: unknown meal slot %q", ErrValidation, slot)
		}
		for i, it := range items {
			if it.FoodName == "" || it.Calories == 0 {
				return nil, fmt.Errorf("%w: meal items need foodName and calories", ErrValidation)
			}
			if it.Calories < 0 || it.Protein < 0 || it.Carbohydrates < 0 ||
				it.Fat < 0 || it.Servings < 0 {
				return nil, fmt.Errorf("%w: meal item values cannot be negative", ErrValidation)
			}
			servings := it.Servings
			if servings == 0 {
				servings = 1
			}
			plan.Items = append(plan.Items, models.MealItem{
				ItemID:        uuid.NewString(),
				Slot:          slot,
				Position:      i,
				FoodID:        it.FoodID,
				FoodName:      it.FoodName,
				Calories:      it.Calories,
				Protein:       it.Protein,
				Carbohydrates: it.Carbohydrates,
				Fat:           it.Fat,
				Servings:      servings,
			})
		}
	}

	if err := s.db.Create(&plan).Error; err != nil {
		return nil, err
	}
	resp := toPlanResponse(&plan)
	return &resp, nil
}

// List returns the system defaults (by name) followed by the caller's own
// plans (newest first), each with calculated totals.
func (s *DietPlanService) List(username string) ([]PlanResponse, error) {
	itemOrder := func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }

	var defaults []models.DietPlan
	if err := s.db.
		Preload("Items", itemOrder).
		Where("is_default = ?", true).
		Order("plan_name ASC").
		Find(&defaults).Error; err != nil {
		return nil, err
	}

	var own []models.DietPlan
	if err := s.db.
		Preload("Items", itemOrder).
		Where("username = ? AND is_default = ?", username, false).
		Order("created_at DESC").
		Find(&own).Error; err != nil {
		return nil, err
	}

	out := make([]PlanResponse, 0, len(defaults)+len(own))
	for i := range defaults {
		out = append(out, toPlanResponse(&defaults[i]))
	}
	for i := range own {
		out = append(out, toPlanResponse(&own[i]))
	}
	return out, nil
}

// loadMutable fetches a plan for a write operation. Default plans are
// rejected before ownership so "Cannot modify" never leaks into a 404.
func (s *DietPlanService) loadMutable(tx *gorm.DB, username string, planID uint) (*models.DietPlan, error) {
	var plan models.DietPlan
	if err := tx.First(&plan, planID).Error; err != nil {
		return nil, fmt.Errorf("%w: Plan not found or unauthorized", ErrNotFound)
	}
	if plan.IsDefault {
		return nil, fmt.Errorf("%w: Cannot modify default diet plans.", ErrForbidden)
	}
	if plan.Username != username {
		return nil, fmt.Errorf("%w: Plan not found or unauthorized", ErrNotFound)
	}
	return &plan, nil
}

func (s *DietPlanService) Delete(username string, planID uint) (*PlanResponse, error) {
	var plan models.DietPlan
	if err := s.db.Preload("Items").First(&plan, planID).Error; err != nil {
		return nil, fmt.Errorf("%w: Plan not found or unauthorized", ErrNotFound)
	}
	if plan.IsDefault {
		return nil, fmt.Errorf("%w: Cannot delete default diet plans.", ErrForbidden)
	}
	if plan.Username != username {
		return nil, fmt.Errorf("%w: Plan not found or unauthorized", ErrNotFound)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", plan.ID).Delete(&models.MealItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&plan).Error
	})
	if err != nil {
		return nil, err
	}
	resp := toPlanResponse(&plan)
	return &resp, nil
}

// AddFoodToMeal resolves the food from the catalog and appends a frozen
// snapshot to the named slot.
func (s *DietPlanService) AddFoodToMeal(username string, planID uint, slot, foodName string, servings float64) (*models.MealItem, error) {
	if foodName == "" || servings == 0 {
		return nil, fmt.Errorf("%w: Food name and servings are required", ErrValidation)
	}
	if servings < 1 {
		return nil, fmt.Errorf("%w: servings must be at least 1", ErrValidation)
	}
	if !models.ValidMealSlot(slot) {
		return nil, fmt.Errorf("%w: Meal slot not found", ErrNotFound)
	}

	ref, ok := s.cat.Lookup(foodName)
	if !ok {
		return nil, fmt.Errorf("%w: Food not found", ErrNotFound)
	}

	var item models.MealItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		plan, err := s.loadMutable(tx, username, planID)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.MealItem{}).
			Where("plan_id = ? AND slot = ?", plan.ID, slot).
			Count(&count).Error; err != nil {
			return err
		}

		item = models.MealItem{
			ItemID:        uuid.NewString(),
			PlanID:        plan.ID,
			Slot:          slot,
			Position:      int(count),
			FoodName:      ref.FoodName,
			Calories:      ref.Calories,
			Protein:       ref.Protein,
			Carbohydrates: ref.Carbohydrates,
			Fat:           ref.Fat,
			Servings:      servings,
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveFoodFromMeal deletes the item at the given position within a slot.
// The index is resolved to the item's stable id inside the transaction, so
// concurrent removals cannot splice away a different item than the one read.
func (s *DietPlanService) RemoveFoodFromMeal(username string, planID uint, slot string, index int) error {
	if !models.ValidMealSlot(slot) {
		return fmt.Errorf("%w: Food item not found", ErrNotFound)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		plan, err := s.loadMutable(tx, username, planID)
		if err != nil {
			return err
		}

		var items []models.MealItem
		if err := tx.
			Where("plan_id = ? AND slot = ?", plan.ID, slot).
			Order("position ASC").
			Find(&items).Error; err != nil {
			return err
		}
		if index < 0 || index >= len(items) {
			return fmt.Errorf("%w: Food item not found", ErrNotFound)
		}

		target := items[index]
		if err := tx.Where("item_id = ?", target.ItemID).Delete(&models.MealItem{}).Error; err != nil {
			return err
		}

		// Close the gap so positions stay dense.
		for _, it := range items[index+1:] {
			if err := tx.Model(&models.MealItem{}).
				Where("item_id = ?", it.ItemID).
				Update("position", it.Position-1).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
