package services

import (
	"time"

	"nutriassist/models"

	"gorm.io/gorm"
)

// AnalyticsService serves the aggregate views the dashboard charts consume.
// The folds themselves are pure functions of already-fetched records; the
// service only loads the caller's rows and applies them.
type AnalyticsService struct {
	db    *gorm.DB
	plans *DietPlanService
}

func NewAnalyticsService(db *gorm.DB, plans *DietPlanService) *AnalyticsService {
	return &AnalyticsService{db: db, plans: plans}
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

type DayCalories struct {
	Date     string  `json:"date"` // yyyy-mm-dd, local time
	Day      string  `json:"day"`  // short weekday label for the chart axis
	Calories float64 `json:"calories"`
}

// DailyCalorieTotals groups entries by calendar date and returns the trailing
// seven days ending at now, zero-filled for days without entries.
func DailyCalorieTotals(foods []models.Food, now time.Time) []DayCalories {
	loc := now.Location()
	byDate := map[string]float64{}
	for _, f := range foods {
		key := dayStart(f.Date.In(loc)).Format("2006-01-02")
		byDate[key] += f.Calories * servingsOrOne(f.Servings)
	}

	out := make([]DayCalories, 0, 7)
	for i := 6; i >= 0; i-- {
		d := dayStart(now.AddDate(0, 0, -i))
		key := d.Format("2006-01-02")
		out = append(out, DayCalories{
			Date:     key,
			Day:      d.Format("Mon"),
			Calories: byDate[key],
		})
	}
	return out
}

type MacroBreakdown struct {
	Protein       float64 `json:"protein"` // grams
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	ProteinPct    float64 `json:"proteinPct"`
	CarbsPct      float64 `json:"carbsPct"`
	FatPct        float64 `json:"fatPct"`
}

// MacrosForDay sums macro grams for entries on the given calendar day and
// derives the percentage split. Percentages are zero when nothing was logged.
func MacrosForDay(foods []models.Food, day time.Time) MacroBreakdown {
	start := dayStart(day)
	end := start.AddDate(0, 0, 1)

	var b MacroBreakdown
	for _, f := range foods {
		d := f.Date.In(day.Location())
		if d.Before(start) || !d.Before(end) {
			continue
		}
		servings := servingsOrOne(f.Servings)
		b.Protein += f.Protein * servings
		b.Carbohydrates += f.Carbohydrates * servings
		b.Fat += f.Fat * servings
	}

	total := b.Protein + b.Carbohydrates + b.Fat
	if total > 0 {
		b.ProteinPct = b.Protein / total * 100
		b.CarbsPct = b.Carbohydrates / total * 100
		b.FatPct = b.Fat / total * 100
	}
	return b
}

type TargetComparison struct {
	Consumed  float64 `json:"consumed"`
	Target    float64 `json:"target"`
	Remaining float64 `json:"remaining"`
	PlanName  string  `json:"planName,omitempty"`
}

// FallbackCalorieTarget applies when the caller has no plan at all.
const FallbackCalorieTarget = 2000

// CompareToTarget measures today's consumed calories against the active
// target. The active plan is the first plan in listing order; there is no
// explicit selection mechanism.
func CompareToTarget(foods []models.Food, plans []PlanResponse, now time.Time) TargetComparison {
	cmp := TargetComparison{Target: FallbackCalorieTarget}
	if len(plans) > 0 {
		cmp.Target = plans[0].TargetCalories
		cmp.PlanName = plans[0].PlanName
	}

	start := dayStart(now)
	end := start.AddDate(0, 0, 1)
	for _, f := range foods {
		d := f.Date.In(now.Location())
		if d.Before(start) || !d.Before(end) {
			continue
		}
		cmp.Consumed += f.Calories * servingsOrOne(f.Servings)
	}
	cmp.Remaining = cmp.Target - cmp.Consumed
	return cmp
}

func servingsOrOne(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}

func (s *AnalyticsService) userFoods(username string) ([]models.Food, error) {
	var foods []models.Food
	err := s.db.Where("username = ?", username).Find(&foods).Error
	return foods, err
}

func (s *AnalyticsService) Daily(username string, now time.Time) ([]DayCalories, error) {
	foods, err := s.userFoods(username)
	if err != nil {
		return nil, err
	}
	return DailyCalorieTotals(foods, now), nil
}

func (s *AnalyticsService) Macros(username string, now time.Time) (MacroBreakdown, error) {
	foods, err := s.userFoods(username)
	if err != nil {
		return MacroBreakdown{}, err
	}
	return MacrosForDay(foods, now), nil
}

func (s *AnalyticsService) Target(username string, now time.Time) (TargetComparison, error) {
	foods, err := s.userFoods(username)
	if err != nil {
		return TargetComparison{}, err
	}
	plans, err := s.plans.List(username)
	if err != nil {
		return TargetComparison{}, err
	}
	return CompareToTarget(foods, plans, now), nil
}
