package domain

// CategoryOther is the fallback category for foods the classifier cannot
// place. It must always exist in the rule store.
const CategoryOther = "other"

// FoodCategory groups foods that share unit rules (e.g. Produce, Dairy).
type FoodCategory struct {
	ID             string   `json:"id"`           // stable lowercase identifier, e.g. "produce"
	Name           string   `json:"displayName"`  // human-readable name, e.g. "Produce"
	AllowedUnits   []string `json:"allowedUnits"` // canonical unit names, preferred unit first
	ForbiddenUnits []string `json:"forbiddenUnits,omitempty"`
	Notes          string   `json:"notes,omitempty"` // free-text rule notes for UI display
}

// PreferredUnit returns the category's preferred unit name, which by
// convention is the first allowed unit.
func (c FoodCategory) PreferredUnit() string {
	if len(c.AllowedUnits) == 0 {
		return ""
	}
	return c.AllowedUnits[0]
}

// CategoryAlias maps a normalized food-name string to a category.
// Many aliases may point at the same category.
type CategoryAlias struct {
	Alias    string `json:"alias"`    // normalized food-name text, e.g. "chicken broth"
	Category string `json:"category"` // FoodCategory ID
}

// PortionFactor holds the food-specific factors needed to convert between
// otherwise incompatible dimensions. A zero field means that conversion is
// unsupported for the food, never that the factor should be guessed.
type PortionFactor struct {
	FoodKey       string  `json:"foodKey"`                 // normalized food name
	GramsPerML    float64 `json:"gramsPerMl,omitempty"`    // volume <-> weight density
	GramsPerCount float64 `json:"gramsPerCount,omitempty"` // count <-> weight mass per item
	Source        string  `json:"source,omitempty"`        // e.g. "curated", "USDA FDC"
}

// FoodPortion is a single reference portion record from an external
// nutrition database extract (e.g. USDA FoodData Central foodPortions).
type FoodPortion struct {
	Description string  `json:"description"` // e.g. "1 cup, sliced"
	Amount      float64 `json:"amount"`      // e.g. 1
	MeasureUnit string  `json:"measureUnit"` // e.g. "cup"
	GramWeight  float64 `json:"gramWeight"`  // grams in the portion
}
