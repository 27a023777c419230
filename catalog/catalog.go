package catalog

import "strings"

// Food is one reference entry: macro values per single serving.
type Food struct {
	ID            int     `json:"id"`
	FoodName      string  `json:"foodName"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
}

// Catalog is a read-only food reference. Lookup matches the exact name
// case-insensitively; Search matches a substring.
type Catalog interface {
	Lookup(name string) (Food, bool)
	Search(query string, limit int) []Food
}

type staticCatalog struct {
	foods []Food
}

var defaultFoods = []Food{
	{ID: 1, FoodName: "Chicken Breast", Calories: 165, Protein: 31, Carbohydrates: 0, Fat: 3.6},
	{ID: 2, FoodName: "Brown Rice", Calories: 111, Protein: 2.6, Carbohydrates: 23, Fat: 0.9},
	{ID: 3, FoodName: "Broccoli", Calories: 55, Protein: 3.7, Carbohydrates: 11, Fat: 0.6},
	{ID: 4, FoodName: "Salmon", Calories: 208, Protein: 20, Carbohydrates: 0, Fat: 13},
	{ID: 5, FoodName: "Avocado", Calories: 160, Protein: 2, Carbohydrates: 9, Fat: 15},
	{ID: 6, FoodName: "Sweet Potato", Calories: 86, Protein: 1.6, Carbohydrates: 20, Fat: 0.1},
	{ID: 7, FoodName: "Oats", Calories: 150, Protein: 5, Carbohydrates: 27, Fat: 2.5},
	{ID: 8, FoodName: "Egg", Calories: 78, Protein: 6, Carbohydrates: 0.6, Fat: 5},
	{ID: 9, FoodName: "Apple", Calories: 95, Protein: 0.5, Carbohydrates: 25, Fat: 0.3},
	{ID: 10, FoodName: "Banana", Calories: 105, Protein: 1.3, Carbohydrates: 27, Fat: 0.4},
}

// Static returns the built-in reference list.
func Static() Catalog {
	return &staticCatalog{foods: defaultFoods}
}

func (c *staticCatalog) Lookup(name string) (Food, bool) {
	for _, f := range c.foods {
		if strings.EqualFold(f.FoodName, name) {
			return f, true
		}
	}
	return Food{}, false
}

func (c *staticCatalog) Search(query string, limit int) []Food {
	q := strings.ToLower(query)
	out := []Food{}
	for _, f := range c.foods {
		if strings.Contains(strings.ToLower(f.FoodName), q) {
			out = append(out, f)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out
}
