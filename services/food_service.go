package services

import (
	"fmt"
	"strings"
	"time"

	"nutriassist/catalog"
	"nutriassist/models"

	"gorm.io/gorm"
)

type FoodService struct {
	db  *gorm.DB
	cat catalog.Catalog
}

func NewFoodService(db *gorm.DB, cat catalog.Catalog) *FoodService {
	return &FoodService{db: db, cat: cat}
}

type AddFoodInput struct {
	FoodName      string     `json:"foodName"`
	Calories      *float64   `json:"calories"`
	Protein       *float64   `json:"protein"`
	Carbohydrates *float64   `json:"carbohydrates"`
	Fat           *float64   `json:"fat"`
	Meal          string     `json:"meal"`
	Servings      float64    `json:"servings"`
	Date          *time.Time `json:"date"`
}

// Add logs one food entry. When macro values are absent they are resolved
// from the catalog by exact name; the values stored are a snapshot and stay
// per-serving (unscaled by the serving count).
func (s *FoodService) Add(username string, input AddFoodInput) (*models.Food, error) {
	calories := input.Calories
	protein := input.Protein
	carbs := input.Carbohydrates
	fat := input.Fat

	if (calories == nil || protein == nil) && input.FoodName != "" {
		if ref, ok := s.cat.Lookup(input.FoodName); ok {
			calories = &ref.Calories
			protein = &ref.Protein
			carbs = &ref.Carbohydrates
			fat = &ref.Fat
		}
	}

	if input.FoodName == "" || calories == nil {
		return nil, fmt.Errorf("%w: foodName and calories are required", ErrValidation)
	}

	food := models.Food{
		Username: username,
		FoodName: input.FoodName,
		Calories: *calories,
		Meal:     input.Meal,
		Servings: input.Servings,
		Date:     time.Now(),
	}
	if protein != nil {
		food.Protein = *protein
	}
	if carbs != nil {
		food.Carbohydrates = *carbs
	}
	if fat != nil {
		food.Fat = *fat
	}
	if food.Servings < 1 {
		food.Servings = 1
	}
	if input.Date != nil {
		food.Date = *input.Date
	}
	if food.Calories < 0 || food.Protein < 0 || food.Carbohydrates < 0 || food.Fat < 0 {
		return nil, fmt.Errorf("%w: macro values cannot be negative", ErrValidation)
	}

	if err := s.db.Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) List(username string) ([]models.Food, error) {
	var foods []models.Food
	err := s.db.
		Where("username = ?", username).
		Order("date DESC").
		Find(&foods).Error
	return foods, err
}

type UpdateFoodInput struct {
	Servings float64 `json:"servings"`
	Meal     string  `json:"meal"`
}

func (s *FoodService) Update(username string, id uint, input UpdateFoodInput) (*models.Food, error) {
	var food models.Food
	if err := s.db.Where("id = ? AND username = ?", id, username).First(&food).Error; err != nil {
		return nil, fmt.Errorf("%w: Food not found or unauthorized", ErrNotFound)
	}

	if input.Servings < 1 {
		return nil, fmt.Errorf("%w: servings must be at least 1", ErrValidation)
	}
	food.Servings = input.Servings
	food.Meal = input.Meal

	if err := s.db.Save(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) Delete(username string, id uint) (*models.Food, error) {
	var food models.Food
	if err := s.db.Where("id = ? AND username = ?", id, username).First(&food).Error; err != nil {
		return nil, fmt.Errorf("%w: Food not found or unauthorized", ErrNotFound)
	}
	if err := s.db.Delete(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// SearchResult is either a logged entry or a catalog entry, flattened to the
// common fields the food picker needs.
type SearchResult struct {
	ID            uint    `json:"id"`
	FoodName      string  `json:"foodName"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	Logged        bool    `json:"logged"`
}

// Search merges the caller's own matching entries with catalog matches,
// deduplicated by name with the user's entries first. Username may be empty
// for the unauthenticated debug route; then only the catalog is searched.
func (s *FoodService) Search(username, query string) ([]SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: Search query is required", ErrValidation)
	}

	merged := []SearchResult{}
	seen := map[string]bool{}

	if username != "" {
		var foods []models.Food
		err := s.db.
			Where("username = ? AND LOWER(food_name) LIKE ?", username, "%"+strings.ToLower(query)+"%").
			Limit(10).
			Find(&foods).Error
		if err != nil {
			return nil, err
		}
		for _, f := range foods {
			merged = append(merged, SearchResult{
				ID:            f.ID,
				FoodName:      f.FoodName,
				Calories:      f.Calories,
				Protein:       f.Protein,
				Carbohydrates: f.Carbohydrates,
				Fat:           f.Fat,
				Logged:        true,
			})
			seen[strings.ToLower(f.FoodName)] = true
		}
	}

	for _, f := range s.cat.Search(query, 10) {
		if seen[strings.ToLower(f.FoodName)] {
			continue
		}
		merged = append(merged, SearchResult{
			ID:            uint(f.ID),
			FoodName:      f.FoodName,
			Calories:      f.Calories,
			Protein:       f.Protein,
			Carbohydrates: f.Carbohydrates,
			Fat:           f.Fat,
		})
	}
	return merged, nil
}
