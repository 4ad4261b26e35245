package usecase

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pantrychef/backend/internal/domain"
	"github.com/pantrychef/backend/internal/refdata"
)

// Converter converts quantities between units. Same-dimension conversions
// use the catalog's base factors; cross-dimension conversions require a
// food-specific portion factor and are fail-closed: the converter never
// guesses a density.
type Converter struct {
	store *refdata.Store
}

// NewConverter creates a converter backed by the given snapshot store.
func NewConverter(store *refdata.Store) *Converter {
	return &Converter{store: store}
}

// Convert converts quantity from one unit to another. foodName is only
// consulted for cross-dimension conversions, where it selects the portion
// factor. Expected failures come back as *domain.Unconvertible
// (errors.Is(err, domain.ErrUnconvertible)).
func (c *Converter) Convert(quantity float64, fromText, toText, foodName string) (*domain.Conversion, error) {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) || quantity < 0 {
		return nil, &domain.Unconvertible{Reason: "quantity is not a valid non-negative number"}
	}

	snap := c.store.Snapshot()

	from, err := snap.Catalog.ResolveUnit(fromText)
	if err != nil {
		return nil, &domain.Unconvertible{Reason: fmt.Sprintf("unit %q not recognized", fromText)}
	}
	to, err := snap.Catalog.ResolveUnit(toText)
	if err != nil {
		return nil, &domain.Unconvertible{Reason: fmt.Sprintf("unit %q not recognized", toText)}
	}

	var converted float64
	if from.Dimension == to.Dimension {
		converted = quantity * from.ToBase / to.ToBase
	} else {
		grams, uc := c.toGrams(snap, quantity, from, foodName)
		if uc != nil {
			return nil, uc
		}
		converted, uc = c.fromGrams(snap, grams, to, foodName)
		if uc != nil {
			return nil, uc
		}
	}

	factor := 0.0
	if quantity != 0 {
		factor = converted / quantity
	}

	rounded := roundPractical(converted)
	return &domain.Conversion{
		Quantity: rounded,
		FromUnit: from.Name,
		ToUnit:   to.Name,
		Factor:   factor,
		Explanation: fmt.Sprintf("%s %s ≈ %s %s",
			formatQuantity(quantity), unitLabel(from, quantity),
			formatQuantity(rounded), unitLabel(to, rounded)),
	}, nil
}

// toGrams converts a quantity of any dimension into grams, using the food's
// portion factor for volume and count inputs.
func (c *Converter) toGrams(snap *refdata.Snapshot, quantity float64, unit domain.Unit, foodName string) (float64, *domain.Unconvertible) {
	switch unit.Dimension {
	case domain.DimensionWeight:
		return quantity * unit.ToBase, nil
	case domain.DimensionVolume:
		pf, uc := c.portionFor(snap, foodName, unit.Dimension)
		if uc != nil {
			return 0, uc
		}
		if pf.GramsPerML <= 0 {
			return 0, noFactor(foodName, unit.Dimension)
		}
		return quantity * unit.ToBase * pf.GramsPerML, nil
	case domain.DimensionCount:
		pf, uc := c.portionFor(snap, foodName, unit.Dimension)
		if uc != nil {
			return 0, uc
		}
		if pf.GramsPerCount <= 0 {
			return 0, noFactor(foodName, unit.Dimension)
		}
		return quantity * unit.ToBase * pf.GramsPerCount, nil
	}
	return 0, &domain.Unconvertible{Reason: fmt.Sprintf("unsupported dimension %q", unit.Dimension)}
}

// fromGrams converts grams into the target unit, using the food's portion
// factor for volume and count targets.
func (c *Converter) fromGrams(snap *refdata.Snapshot, grams float64, unit domain.Unit, foodName string) (float64, *domain.Unconvertible) {
	switch unit.Dimension {
	case domain.DimensionWeight:
		return grams / unit.ToBase, nil
	case domain.DimensionVolume:
		pf, uc := c.portionFor(snap, foodName, unit.Dimension)
		if uc != nil {
			return 0, uc
		}
		if pf.GramsPerML <= 0 {
			return 0, noFactor(foodName, unit.Dimension)
		}
		return grams / pf.GramsPerML / unit.ToBase, nil
	case domain.DimensionCount:
		pf, uc := c.portionFor(snap, foodName, unit.Dimension)
		if uc != nil {
			return 0, uc
		}
		if pf.GramsPerCount <= 0 {
			return 0, noFactor(foodName, unit.Dimension)
		}
		return grams / pf.GramsPerCount / unit.ToBase, nil
	}
	return 0, &domain.Unconvertible{Reason: fmt.Sprintf("unsupported dimension %q", unit.Dimension)}
}

func (c *Converter) portionFor(snap *refdata.Snapshot, foodName string, dim domain.Dimension) (domain.PortionFactor, *domain.Unconvertible) {
	if foodName == "" {
		return domain.PortionFactor{}, &domain.Unconvertible{
			Reason: fmt.Sprintf("a food name is required to convert across %s", dim),
		}
	}
	pf, ok := snap.PortionFor(foodName)
	if !ok {
		return domain.PortionFactor{}, noFactor(foodName, dim)
	}
	return pf, nil
}

func noFactor(foodName string, dim domain.Dimension) *domain.Unconvertible {
	return &domain.Unconvertible{
		Reason: fmt.Sprintf("no conversion factor for %q between %s and the requested dimension", foodName, dim),
	}
}

// roundPractical rounds to a display-friendly precision: two decimals for
// ordinary magnitudes, but small valid quantities keep enough significant
// digits that they never collapse to zero.
func roundPractical(v float64) float64 {
	if v == 0 {
		return 0
	}
	if math.Abs(v) >= 0.1 {
		return math.Round(v*100) / 100
	}
	digits := math.Ceil(-math.Log10(math.Abs(v))) + 3
	scale := math.Pow(10, digits)
	return math.Round(v*scale) / scale
}

// formatQuantity renders a quantity without trailing zeros.
func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// unitLabel returns the unit's display name, pluralized for quantities other
// than one. Count units that read naturally without an "s" stay unchanged.
func unitLabel(unit domain.Unit, quantity float64) string {
	name := unit.Name
	if unit.Abbreviation != "" && unit.Dimension != domain.DimensionCount {
		return unit.Abbreviation
	}
	if quantity == 1 || name == "each" || name == "dozen" {
		return name
	}
	if len(name) > 0 && name[len(name)-1] == 'h' {
		return name + "es" // bunch -> bunches
	}
	return name + "s"
}

func pluralUnitName(unit domain.Unit) string {
	name := unit.Name
	switch name {
	case "each", "dozen":
		return name
	}
	if len(name) > 0 && name[len(name)-1] == 'h' {
		return name + "es"
	}
	return name + "s"
}
