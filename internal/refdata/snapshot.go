package refdata

import (
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/pantrychef/backend/internal/domain"
)

// SnapshotData is the raw reference data a snapshot is built from. The core
// only depends on this shape; where the data comes from (curated seed, USDA
// extract, both) is the loader's concern.
type SnapshotData struct {
	Version    string
	Units      []domain.Unit
	Categories []domain.FoodCategory
	Aliases    []domain.CategoryAlias
	Portions   []domain.PortionFactor
}

// Snapshot is one complete, immutable set of reference tables: unit catalog,
// category rules, food-name aliases, and portion factors. All validation
// operations read exactly one snapshot, so they can never observe a
// partially-updated table set.
type Snapshot struct {
	Catalog *Catalog
	Rules   *RuleStore

	Version  string
	LoadedAt time.Time

	aliases      map[string]string // normalized food name -> category id
	aliasEntries []domain.CategoryAlias
	portions     map[string]domain.PortionFactor
}

// NewSnapshot validates raw reference data and assembles an immutable
// snapshot. All load-time invariants are enforced here: catalog key
// collisions, rule list disjointness, aliases pointing at known categories,
// and the presence of the fallback category.
func NewSnapshot(data SnapshotData) (*Snapshot, error) {
	catalog, err := NewCatalog(data.Units)
	if err != nil {
		return nil, err
	}

	rules, err := NewRuleStore(data.Categories, catalog)
	if err != nil {
		return nil, err
	}

	if _, err := rules.RulesFor(domain.CategoryOther); err != nil {
		return nil, fmt.Errorf("%w: fallback category %q is not defined", domain.ErrInvalidConfig, domain.CategoryOther)
	}

	s := &Snapshot{
		Catalog:  catalog,
		Rules:    rules,
		Version:  data.Version,
		LoadedAt: time.Now(),
		aliases:  make(map[string]string, len(data.Aliases)),
		portions: make(map[string]domain.PortionFactor, len(data.Portions)),
	}

	for _, a := range data.Aliases {
		key := NormalizeFoodName(a.Alias)
		if key == "" {
			return nil, fmt.Errorf("%w: empty food alias for category %q", domain.ErrInvalidConfig, a.Category)
		}
		if _, err := rules.RulesFor(a.Category); err != nil {
			return nil, fmt.Errorf("%w: alias %q references unknown category %q", domain.ErrInvalidConfig, a.Alias, a.Category)
		}
		if existing, ok := s.aliases[key]; ok && existing != a.Category {
			return nil, fmt.Errorf("%w: alias %q mapped to both %q and %q", domain.ErrInvalidConfig, key, existing, a.Category)
		}
		if _, ok := s.aliases[key]; !ok {
			s.aliases[key] = a.Category
			s.aliasEntries = append(s.aliasEntries, domain.CategoryAlias{Alias: key, Category: a.Category})
		}
	}

	// Deterministic iteration order for the fuzzy matcher.
	sort.Slice(s.aliasEntries, func(i, j int) bool {
		if s.aliasEntries[i].Alias != s.aliasEntries[j].Alias {
			return s.aliasEntries[i].Alias < s.aliasEntries[j].Alias
		}
		return s.aliasEntries[i].Category < s.aliasEntries[j].Category
	})

	for _, p := range data.Portions {
		key := NormalizeFoodName(p.FoodKey)
		if key == "" {
			return nil, fmt.Errorf("%w: portion factor with empty food key", domain.ErrInvalidConfig)
		}
		if p.GramsPerML < 0 || p.GramsPerCount < 0 {
			return nil, fmt.Errorf("%w: portion factor for %q has negative factor", domain.ErrInvalidConfig, key)
		}
		p.FoodKey = key
		s.portions[key] = p
	}

	return s, nil
}

// AliasCategory returns the category an exact normalized alias maps to.
func (s *Snapshot) AliasCategory(normalizedName string) (string, bool) {
	cat, ok := s.aliases[normalizedName]
	return cat, ok
}

// AliasEntries returns all aliases sorted by alias text then category id.
func (s *Snapshot) AliasEntries() []domain.CategoryAlias {
	return s.aliasEntries
}

// PortionFor returns the portion factor for a food, if one is known.
// Lookup is by normalized food name.
func (s *Snapshot) PortionFor(foodName string) (domain.PortionFactor, bool) {
	p, ok := s.portions[NormalizeFoodName(foodName)]
	return p, ok
}

// PortionCount returns the number of loaded portion factors (for logging).
func (s *Snapshot) PortionCount() int {
	return len(s.portions)
}

// Store holds the currently active snapshot. Refreshes swap in a complete
// new snapshot atomically; in-flight calls keep the pointer they read.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store serving the given initial snapshot.
func NewStore(initial *Snapshot) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Snapshot returns the currently active snapshot.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Swap atomically replaces the active snapshot.
func (s *Store) Swap(next *Snapshot) {
	s.current.Store(next)
}
