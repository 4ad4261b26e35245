package domain

// Severity classifies a validation outcome.
type Severity string

const (
	SeverityError   Severity = "error"   // unit is forbidden for the category
	SeverityWarning Severity = "warning" // unit is unusual or quantity looks impractical
	SeverityInfo    Severity = "info"    // unit is fine, or validator degraded fail-open
)

// ValidationResult is the complete, inspectable outcome of validating a
// (food, unit, quantity) tuple. It is constructed fresh per call and never
// mutated afterwards.
type ValidationResult struct {
	IsValid        bool     `json:"isValid"`
	CurrentUnit    string   `json:"currentUnit"`
	SuggestedUnit  string   `json:"suggestedUnit,omitempty"`
	SuggestedUnits []string `json:"suggestedUnits,omitempty"` // ordered, preferred first
	Category       string   `json:"category"`                 // resolved FoodCategory ID
	Confidence     float64  `json:"confidence"`               // classification confidence for Category
	Reason         string   `json:"reason"`
	Severity       Severity `json:"severity"`
}

// ValidationItem is one element of a batch validation request.
type ValidationItem struct {
	FoodName string   `json:"foodName"`
	Unit     string   `json:"unit"`
	Quantity *float64 `json:"quantity,omitempty"`
}

// BatchSummary aggregates the results of a batch validation. Results are in
// the same order as the input items; Errors and Warnings are derived strictly
// from each element's severity.
type BatchSummary struct {
	Total    int                `json:"total"`
	Errors   int                `json:"errors"`
	Warnings int                `json:"warnings"`
	Results  []ValidationResult `json:"results"`
}

// Classification is the result of resolving a food name to a category.
type Classification struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"` // 1.0 exact alias, (0,1) fuzzy, 0.0 fallback
}

// Conversion is a successful unit conversion, carrying the applied factor and
// a display-ready explanation (e.g. "2 cups ≈ 473.18 ml").
type Conversion struct {
	Quantity    float64 `json:"quantity"` // converted quantity, practically rounded
	FromUnit    string  `json:"fromUnit"` // canonical name of the source unit
	ToUnit      string  `json:"toUnit"`   // canonical name of the target unit
	Factor      float64 `json:"factor"`   // multiplier applied to the input quantity
	Explanation string  `json:"explanation"`
}
