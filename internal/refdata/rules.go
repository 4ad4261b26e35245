package refdata

import (
	"fmt"

	"github.com/pantrychef/backend/internal/domain"
)

// CategoryRules is the resolved rule set for one food category: allowed
// units in order (preferred first), forbidden units, and fast membership
// checks by canonical unit name.
type CategoryRules struct {
	Category  domain.FoodCategory
	Allowed   []domain.Unit
	Forbidden []domain.Unit
	Preferred domain.Unit

	allowedSet   map[string]bool
	forbiddenSet map[string]bool
}

// Allows reports whether the canonical unit name is in the allowed list.
func (r *CategoryRules) Allows(unitName string) bool {
	return r.allowedSet[unitName]
}

// Forbids reports whether the canonical unit name is in the forbidden list.
func (r *CategoryRules) Forbids(unitName string) bool {
	return r.forbiddenSet[unitName]
}

// RuleStore maps food categories to their unit rules. It is immutable after
// construction; a refresh builds a whole new store.
type RuleStore struct {
	categories []domain.FoodCategory
	rules      map[string]*CategoryRules
}

// NewRuleStore resolves and validates category rule definitions against the
// catalog. Bad configuration (unknown units, empty allowed lists, overlap
// between allowed and forbidden) is rejected here, before serving traffic.
func NewRuleStore(categories []domain.FoodCategory, catalog *Catalog) (*RuleStore, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no food categories defined", domain.ErrInvalidConfig)
	}

	s := &RuleStore{
		categories: make([]domain.FoodCategory, 0, len(categories)),
		rules:      make(map[string]*CategoryRules, len(categories)),
	}

	for _, cat := range categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("%w: category with empty id", domain.ErrInvalidConfig)
		}
		if _, dup := s.rules[cat.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate category id %q", domain.ErrInvalidConfig, cat.ID)
		}
		if len(cat.AllowedUnits) == 0 {
			return nil, fmt.Errorf("%w: category %q has no allowed units", domain.ErrInvalidConfig, cat.ID)
		}

		rules := &CategoryRules{
			Category:     cat,
			allowedSet:   make(map[string]bool, len(cat.AllowedUnits)),
			forbiddenSet: make(map[string]bool, len(cat.ForbiddenUnits)),
		}

		for _, name := range cat.AllowedUnits {
			u, err := catalog.ResolveUnit(name)
			if err != nil {
				return nil, fmt.Errorf("%w: category %q allows unknown unit %q", domain.ErrInvalidConfig, cat.ID, name)
			}
			if rules.allowedSet[u.Name] {
				return nil, fmt.Errorf("%w: category %q lists unit %q twice", domain.ErrInvalidConfig, cat.ID, u.Name)
			}
			rules.allowedSet[u.Name] = true
			rules.Allowed = append(rules.Allowed, u)
		}

		for _, name := range cat.ForbiddenUnits {
			u, err := catalog.ResolveUnit(name)
			if err != nil {
				return nil, fmt.Errorf("%w: category %q forbids unknown unit %q", domain.ErrInvalidConfig, cat.ID, name)
			}
			if rules.allowedSet[u.Name] {
				return nil, fmt.Errorf("%w: category %q both allows and forbids %q", domain.ErrInvalidConfig, cat.ID, u.Name)
			}
			rules.forbiddenSet[u.Name] = true
			rules.Forbidden = append(rules.Forbidden, u)
		}

		rules.Preferred = rules.Allowed[0]

		s.categories = append(s.categories, cat)
		s.rules[cat.ID] = rules
	}

	return s, nil
}

// RulesFor returns the rules for a category id, or ErrUnknownCategory.
func (s *RuleStore) RulesFor(categoryID string) (*CategoryRules, error) {
	rules, ok := s.rules[categoryID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, categoryID)
	}
	return rules, nil
}

// AllCategories returns every loaded category in load order.
func (s *RuleStore) AllCategories() []domain.FoodCategory {
	out := make([]domain.FoodCategory, len(s.categories))
	copy(out, s.categories)
	return out
}
