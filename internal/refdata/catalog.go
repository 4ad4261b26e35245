package refdata

import (
	"fmt"

	"github.com/pantrychef/backend/internal/domain"
)

// Catalog resolves unit text to catalog entries and answers dimension
// queries. It is immutable after construction.
type Catalog struct {
	units       []domain.Unit
	byKey       map[string]domain.Unit
	byDimension map[domain.Dimension][]domain.Unit
}

// NewCatalog builds a catalog from unit definitions. Every canonical name,
// abbreviation, and alias becomes a lookup key; a key claimed by two
// different units is a configuration error, rejected at load time rather
// than resolved arbitrarily at query time.
func NewCatalog(units []domain.Unit) (*Catalog, error) {
	if len(units) == 0 {
		return nil, fmt.Errorf("%w: unit catalog is empty", domain.ErrInvalidConfig)
	}

	c := &Catalog{
		units:       make([]domain.Unit, 0, len(units)),
		byKey:       make(map[string]domain.Unit),
		byDimension: make(map[domain.Dimension][]domain.Unit),
	}

	for _, u := range units {
		if u.Name == "" {
			return nil, fmt.Errorf("%w: unit with empty canonical name", domain.ErrInvalidConfig)
		}
		if u.ToBase <= 0 {
			return nil, fmt.Errorf("%w: unit %q has non-positive base factor", domain.ErrInvalidConfig, u.Name)
		}
		switch u.Dimension {
		case domain.DimensionVolume, domain.DimensionWeight, domain.DimensionCount:
		default:
			return nil, fmt.Errorf("%w: unit %q has unknown dimension %q", domain.ErrInvalidConfig, u.Name, u.Dimension)
		}

		keys := []string{u.Name}
		if u.Abbreviation != "" {
			keys = append(keys, u.Abbreviation)
		}
		keys = append(keys, u.Aliases...)

		for _, k := range keys {
			nk := normalizeUnitText(k)
			if nk == "" {
				return nil, fmt.Errorf("%w: unit %q has empty alias", domain.ErrInvalidConfig, u.Name)
			}
			if existing, ok := c.byKey[nk]; ok && existing.Name != u.Name {
				return nil, fmt.Errorf("%w: key %q claimed by both %q and %q",
					domain.ErrInvalidConfig, nk, existing.Name, u.Name)
			}
			c.byKey[nk] = u
		}

		c.units = append(c.units, u)
		c.byDimension[u.Dimension] = append(c.byDimension[u.Dimension], u)
	}

	return c, nil
}

// ResolveUnit resolves free-text unit input to a catalog entry. Matching is
// case-insensitive, punctuation-tolerant, and singular/plural aware.
func (c *Catalog) ResolveUnit(text string) (domain.Unit, error) {
	key := normalizeUnitText(text)
	if key == "" {
		return domain.Unit{}, fmt.Errorf("%w: empty unit text", domain.ErrUnknownUnit)
	}

	if u, ok := c.byKey[key]; ok {
		return u, nil
	}

	// "cups" -> "cup", "dozens" -> "dozen"
	if singular := singularize(key); singular != key {
		if u, ok := c.byKey[singular]; ok {
			return u, nil
		}
	}

	return domain.Unit{}, fmt.Errorf("%w: %q", domain.ErrUnknownUnit, text)
}

// UnitsOfDimension returns the catalog's units of a dimension in load order,
// which suggestion generation relies on being stable.
func (c *Catalog) UnitsOfDimension(d domain.Dimension) []domain.Unit {
	src := c.byDimension[d]
	out := make([]domain.Unit, len(src))
	copy(out, src)
	return out
}

// Units returns all catalog entries in load order.
func (c *Catalog) Units() []domain.Unit {
	out := make([]domain.Unit, len(c.units))
	copy(out, c.units)
	return out
}
