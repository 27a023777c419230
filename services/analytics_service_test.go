package services

import (
	"testing"
	"time"

	"nutriassist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(name string, calories, protein, carbs, fat, servings float64, date time.Time) models.Food {
	return models.Food{
		FoodName:      name,
		Calories:      calories,
		Protein:       protein,
		Carbohydrates: carbs,
		Fat:           fat,
		Servings:      servings,
		Date:          date,
	}
}

func TestDailyCalorieTotals_TrailingWeek(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.Local)

	foods := []models.Food{
		entry("Banana", 105, 1.3, 27, 0.4, 2, now),                                 // today: 210
		entry("Egg", 78, 6, 0.6, 5, 1, now.AddDate(0, 0, -1)),                      // yesterday: 78
		entry("Apple", 95, 0.5, 25, 0.3, 1, now.AddDate(0, 0, -1)),                 // yesterday: +95
		entry("Salmon", 208, 20, 0, 13, 1, now.AddDate(0, 0, -8)),                  // outside window
		entry("Oats", 150, 5, 27, 2.5, 1, time.Date(2026, 8, 25, 1, 0, 0, 0, time.Local)), // 6 days back
	}

	days := DailyCalorieTotals(foods, now)
	require.Len(t, days, 7)

	assert.Equal(t, "2026-08-25", days[0].Date)
	assert.Equal(t, 150.0, days[0].Calories)
	assert.Equal(t, "2026-08-31", days[6].Date)
	assert.Equal(t, 210.0, days[6].Calories)
	assert.Equal(t, 173.0, days[5].Calories) // 78 + 95

	// Zero-filled gaps
	for _, d := range days[1:5] {
		assert.Zero(t, d.Calories, "day %s should be empty", d.Date)
	}
}

func TestMacrosForDay(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

	foods := []models.Food{
		entry("Chicken Breast", 165, 31, 0, 3.6, 1, now),
		entry("Brown Rice", 111, 2.6, 23, 0.9, 2, now),
		entry("Egg", 78, 6, 0.6, 5, 1, now.AddDate(0, 0, -1)), // not today
	}

	b := MacrosForDay(foods, now)
	assert.InDelta(t, 31+2.6*2, b.Protein, 0.001)
	assert.InDelta(t, 23*2, b.Carbohydrates, 0.001)
	assert.InDelta(t, 3.6+0.9*2, b.Fat, 0.001)

	total := b.Protein + b.Carbohydrates + b.Fat
	assert.InDelta(t, b.Protein/total*100, b.ProteinPct, 0.001)
	assert.InDelta(t, 100.0, b.ProteinPct+b.CarbsPct+b.FatPct, 0.001)
}

func TestMacrosForDay_EmptyInput(t *testing.T) {
	b := MacrosForDay(nil, time.Now())
	assert.Zero(t, b.Protein)
	assert.Zero(t, b.ProteinPct, "no division by zero on an empty day")
}

func TestCompareToTarget(t *testing.T) {
	now := time.Date(2026, 8, 31, 18, 0, 0, 0, time.Local)
	foods := []models.Food{
		entry("Banana", 105, 1.3, 27, 0.4, 2, now), // 210 today
	}

	// First plan in listing order is the active target
	plans := []PlanResponse{
		{PlanName: "Balanced Plan", TargetCalories: 2000},
		{PlanName: "Other", TargetCalories: 1500},
	}
	cmp := CompareToTarget(foods, plans, now)
	assert.Equal(t, 210.0, cmp.Consumed)
	assert.Equal(t, 2000.0, cmp.Target)
	assert.Equal(t, 1790.0, cmp.Remaining)
	assert.Equal(t, "Balanced Plan", cmp.PlanName)

	// No plans: 2000 kcal fallback
	cmp = CompareToTarget(foods, nil, now)
	assert.Equal(t, FallbackCalorieTarget+0.0, cmp.Target)
	assert.Empty(t, cmp.PlanName)
}
