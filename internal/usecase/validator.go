package usecase

import (
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/pantrychef/backend/internal/domain"
	"github.com/pantrychef/backend/internal/refdata"
)

// Quantity-magnitude heuristics: a valid but non-preferred unit draws a
// warning when the quantity looks impractical for the unit's size. These are
// hints for the UI, never hard rules.
const (
	defaultMagnitudeWarnLimit = 1000 // e.g. 1500 tsp of anything
	defaultCountWarnLimit     = 100  // e.g. 250 each
	smallVolumeBaseML         = 15.0 // units at or below a tablespoon
	smallWeightBaseG          = 30.0 // units at or below an ounce
	defaultBatchWorkers       = 4
)

// ValidatorConfig holds configuration for the unit validator.
type ValidatorConfig struct {
	MagnitudeWarnLimit float64
	CountWarnLimit     float64
	BatchWorkers       int
	EnableDebugLogging bool
}

// Validator decides whether a unit is semantically valid for a food. It is
// fail-open: unknown units and unknown foods degrade to info-severity valid
// results, because validation feeds user-facing suggestions, not hard gates.
type Validator struct {
	store              *refdata.Store
	classifier         *Classifier
	magnitudeWarnLimit float64
	countWarnLimit     float64
	batchWorkers       int
	enableDebugLogging bool
}

// NewValidator creates a validator backed by the given snapshot store and
// classifier.
func NewValidator(store *refdata.Store, classifier *Classifier, config ValidatorConfig) *Validator {
	magnitude := config.MagnitudeWarnLimit
	if magnitude <= 0 {
		magnitude = defaultMagnitudeWarnLimit
	}
	countLimit := config.CountWarnLimit
	if countLimit <= 0 {
		countLimit = defaultCountWarnLimit
	}
	workers := config.BatchWorkers
	if workers <= 0 {
		workers = defaultBatchWorkers
	}

	return &Validator{
		store:              store,
		classifier:         classifier,
		magnitudeWarnLimit: magnitude,
		countWarnLimit:     countLimit,
		batchWorkers:       workers,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Validate checks a (food, unit, quantity) tuple against the category rules.
// It never returns an error: uncertainty degrades to valid results with an
// explanatory reason rather than blocking the caller's action.
func (v *Validator) Validate(foodName, unitText string, quantity *float64) domain.ValidationResult {
	snap := v.store.Snapshot()

	classification := v.classifier.Classify(foodName)
	rules, err := snap.Rules.RulesFor(classification.Category)
	if err != nil {
		// Defensive only: the classifier hands out ids from the same snapshot.
		rules, _ = snap.Rules.RulesFor(domain.CategoryOther)
	}

	suggestions := allowedUnitNames(rules)
	quantity = sanitizeQuantity(quantity)

	unit, err := snap.Catalog.ResolveUnit(unitText)
	if err != nil {
		// Fail-open: an unrecognized unit must not block saving the item.
		return domain.ValidationResult{
			IsValid:        true,
			CurrentUnit:    unitText,
			SuggestedUnit:  unitText,
			SuggestedUnits: suggestions,
			Category:       classification.Category,
			Confidence:     classification.Confidence,
			Reason:         fmt.Sprintf("unit %q not recognized; keeping it unchanged", unitText),
			Severity:       domain.SeverityInfo,
		}
	}

	if v.enableDebugLogging {
		log.Printf("[VALIDATE] food=%q unit=%q -> category=%q (confidence %.2f)",
			foodName, unit.Name, classification.Category, classification.Confidence)
	}

	if rules.Forbids(unit.Name) {
		reason := fmt.Sprintf("%s must not be measured in %s", rules.Category.Name, pluralUnitName(unit))
		if rules.Category.Notes != "" {
			reason = fmt.Sprintf("%s (%s)", reason, rules.Category.Notes)
		}
		return domain.ValidationResult{
			IsValid:        false,
			CurrentUnit:    unit.Name,
			SuggestedUnit:  rules.Preferred.Name,
			SuggestedUnits: suggestions,
			Category:       classification.Category,
			Confidence:     classification.Confidence,
			Reason:         reason,
			Severity:       domain.SeverityError,
		}
	}

	if rules.Allows(unit.Name) {
		if unit.Name != rules.Preferred.Name && v.impracticalQuantity(quantity, unit) {
			return domain.ValidationResult{
				IsValid:        true,
				CurrentUnit:    unit.Name,
				SuggestedUnit:  rules.Preferred.Name,
				SuggestedUnits: suggestions,
				Category:       classification.Category,
				Confidence:     classification.Confidence,
				Reason: fmt.Sprintf("%s %s of %s looks impractical; consider %s",
					formatQuantity(*quantity), pluralUnitName(unit), rules.Category.Name, rules.Preferred.Name),
				Severity: domain.SeverityWarning,
			}
		}
		return domain.ValidationResult{
			IsValid:        true,
			CurrentUnit:    unit.Name,
			SuggestedUnit:  unit.Name,
			SuggestedUnits: suggestions,
			Category:       classification.Category,
			Confidence:     classification.Confidence,
			Reason:         fmt.Sprintf("%s is a valid unit for %s", unit.Name, rules.Category.Name),
			Severity:       domain.SeverityInfo,
		}
	}

	// Neither allowed nor forbidden: the category has no explicit rule for
	// this unit, so accept it but point at the preferred unit.
	return domain.ValidationResult{
		IsValid:        true,
		CurrentUnit:    unit.Name,
		SuggestedUnit:  rules.Preferred.Name,
		SuggestedUnits: suggestions,
		Category:       classification.Category,
		Confidence:     classification.Confidence,
		Reason: fmt.Sprintf("no explicit rule for %s in %s; using generically valid unit",
			unit.Name, rules.Category.Name),
		Severity: domain.SeverityWarning,
	}
}

// ValidateMany validates a batch of items. Items are independent, so they
// fan out across a bounded worker pool; results keep the input order and the
// error/warning counts are derived strictly from each result's severity.
func (v *Validator) ValidateMany(items []domain.ValidationItem) domain.BatchSummary {
	results := make([]domain.ValidationResult, len(items))

	sem := make(chan struct{}, v.batchWorkers)
	var wg sync.WaitGroup
	for i := range items {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			item := items[idx]
			results[idx] = v.Validate(item.FoodName, item.Unit, item.Quantity)
		}(i)
	}
	wg.Wait()

	summary := domain.BatchSummary{
		Total:   len(items),
		Results: results,
	}
	for _, r := range results {
		switch r.Severity {
		case domain.SeverityError:
			summary.Errors++
		case domain.SeverityWarning:
			summary.Warnings++
		}
	}
	return summary
}

// Suggestions returns the classification and ordered allowed units for a
// food, for the suggestions endpoint.
func (v *Validator) Suggestions(foodName string) (domain.Classification, []string) {
	snap := v.store.Snapshot()
	classification := v.classifier.Classify(foodName)
	rules, err := snap.Rules.RulesFor(classification.Category)
	if err != nil {
		rules, _ = snap.Rules.RulesFor(domain.CategoryOther)
	}
	return classification, allowedUnitNames(rules)
}

// impracticalQuantity reports whether the quantity looks absurd for the
// unit's size: four-digit counts of tiny volume/weight units, or three-digit
// item counts.
func (v *Validator) impracticalQuantity(quantity *float64, unit domain.Unit) bool {
	if quantity == nil {
		return false
	}
	q := *quantity
	switch unit.Dimension {
	case domain.DimensionVolume:
		return unit.ToBase <= smallVolumeBaseML && q > v.magnitudeWarnLimit
	case domain.DimensionWeight:
		return unit.ToBase <= smallWeightBaseG && q > v.magnitudeWarnLimit
	case domain.DimensionCount:
		return q > v.countWarnLimit
	}
	return false
}

// sanitizeQuantity maps malformed quantities (negative, NaN, infinite) to
// "quantity unknown" semantics instead of failing.
func sanitizeQuantity(quantity *float64) *float64 {
	if quantity == nil {
		return nil
	}
	q := *quantity
	if math.IsNaN(q) || math.IsInf(q, 0) || q < 0 {
		return nil
	}
	return quantity
}

// allowedUnitNames flattens a rule set's allowed units, preferred first.
func allowedUnitNames(rules *refdata.CategoryRules) []string {
	names := make([]string, 0, len(rules.Allowed))
	for _, u := range rules.Allowed {
		names = append(names, u.Name)
	}
	return names
}
