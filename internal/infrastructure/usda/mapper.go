package usda

import (
	"strings"

	"github.com/pantrychef/backend/internal/domain"
)

// Milliliters per USDA household measure name. Only measures with a fixed
// volume participate in density derivation; irregular measures ("slice",
// "package") carry no usable volume.
var mlPerMeasure = map[string]float64{
	"cup":         236.588,
	"tablespoon":  14.7868,
	"tbsp":        14.7868,
	"teaspoon":    4.92892,
	"tsp":         4.92892,
	"fl oz":       29.5735,
	"fluid ounce": 29.5735,
	"milliliter":  1,
	"ml":          1,
	"liter":       1000,
}

// countMeasures are household measures that denote whole items.
var countMeasures = map[string]bool{
	"each":   true,
	"piece":  true,
	"whole":  true,
	"item":   true,
	"unit":   true,
	"medium": true,
}

// MapPortions converts a USDA food record's foodPortions into domain portion
// records. Entries without a gram weight or amount are dropped.
func MapPortions(food *domain.USDAFood) []domain.FoodPortion {
	var portions []domain.FoodPortion
	for _, p := range food.Portions {
		if p.GramWeight <= 0 || p.Amount <= 0 {
			continue
		}
		measure := p.MeasureUnit.Name
		if measure == "" || strings.EqualFold(measure, "undetermined") {
			measure = p.Modifier
		}
		portions = append(portions, domain.FoodPortion{
			Description: portionDescription(p),
			Amount:      p.Amount,
			MeasureUnit: strings.ToLower(strings.TrimSpace(measure)),
			GramWeight:  p.GramWeight,
		})
	}
	return portions
}

// DerivePortionFactor distills portion records into the food's conversion
// factors: grams-per-milliliter from the first volume measure and
// grams-per-item from the first count measure. Foods with neither yield
// ok=false — no factor is ever guessed.
func DerivePortionFactor(foodName string, portions []domain.FoodPortion) (domain.PortionFactor, bool) {
	factor := domain.PortionFactor{
		FoodKey: foodName,
		Source:  "USDA FDC",
	}

	for _, p := range portions {
		if factor.GramsPerML == 0 {
			if ml, ok := mlPerMeasure[p.MeasureUnit]; ok {
				factor.GramsPerML = p.GramWeight / (p.Amount * ml)
			}
		}
		if factor.GramsPerCount == 0 && countMeasures[p.MeasureUnit] {
			factor.GramsPerCount = p.GramWeight / p.Amount
		}
		if factor.GramsPerML > 0 && factor.GramsPerCount > 0 {
			break
		}
	}

	if factor.GramsPerML == 0 && factor.GramsPerCount == 0 {
		return domain.PortionFactor{}, false
	}
	return factor, true
}

func portionDescription(p domain.USDAFoodPortion) string {
	if p.PortionDesc != "" {
		return p.PortionDesc
	}
	if p.Modifier != "" {
		return p.Modifier
	}
	return p.MeasureUnit.Name
}
