package refdata

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/pantrychef/backend/internal/domain"
)

func minimalSnapshotData() SnapshotData {
	return SnapshotData{
		Version: "test",
		Units:   testUnits(),
		Categories: []domain.FoodCategory{
			{ID: "produce", Name: "Produce", AllowedUnits: []string{"pound", "each"}, ForbiddenUnits: []string{"milliliter"}},
			{ID: domain.CategoryOther, Name: "Other", AllowedUnits: []string{"each", "gram", "milliliter"}},
		},
		Aliases: []domain.CategoryAlias{
			{Alias: "strawberry", Category: "produce"},
		},
		Portions: []domain.PortionFactor{
			{FoodKey: "strawberry", GramsPerML: 0.7, Source: "test"},
		},
	}
}

func TestNewSnapshot(t *testing.T) {
	t.Run("builds from valid data", func(t *testing.T) {
		snap, err := NewSnapshot(minimalSnapshotData())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.Version != "test" {
			t.Errorf("Version = %q, want test", snap.Version)
		}
		if snap.PortionCount() != 1 {
			t.Errorf("PortionCount = %d, want 1", snap.PortionCount())
		}
	})

	t.Run("requires the fallback category", func(t *testing.T) {
		data := minimalSnapshotData()
		data.Categories = data.Categories[:1] // drop "other"
		data.Aliases = nil
		data.Portions = nil
		_, err := NewSnapshot(data)
		if !errors.Is(err, domain.ErrInvalidConfig) {
			t.Errorf("error = %v, want ErrInvalidConfig", err)
		}
	})

	t.Run("rejects alias to unknown category", func(t *testing.T) {
		data := minimalSnapshotData()
		data.Aliases = append(data.Aliases, domain.CategoryAlias{Alias: "yeti", Category: "cryptids"})
		_, err := NewSnapshot(data)
		if !errors.Is(err, domain.ErrInvalidConfig) {
			t.Errorf("error = %v, want ErrInvalidConfig", err)
		}
	})

	t.Run("rejects alias mapped to two categories", func(t *testing.T) {
		data := minimalSnapshotData()
		data.Aliases = append(data.Aliases, domain.CategoryAlias{Alias: "strawberry", Category: domain.CategoryOther})
		_, err := NewSnapshot(data)
		if !errors.Is(err, domain.ErrInvalidConfig) {
			t.Errorf("error = %v, want ErrInvalidConfig", err)
		}
	})

	t.Run("normalizes alias and portion keys", func(t *testing.T) {
		data := minimalSnapshotData()
		data.Aliases = []domain.CategoryAlias{{Alias: "Fresh  Strawberries", Category: "produce"}}
		snap, err := NewSnapshot(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := snap.AliasCategory("fresh strawberry"); !ok {
			t.Error("expected normalized alias key 'fresh strawberry' to resolve")
		}
		if _, ok := snap.PortionFor("Strawberries"); !ok {
			t.Error("expected PortionFor to normalize the lookup key")
		}
	})
}

func TestSeedSnapshot(t *testing.T) {
	snap, err := SeedSnapshot()
	if err != nil {
		t.Fatalf("seed data must always load: %v", err)
	}

	t.Run("includes the fallback category", func(t *testing.T) {
		if _, err := snap.Rules.RulesFor(domain.CategoryOther); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("every category has a preferred unit", func(t *testing.T) {
		for _, cat := range snap.Rules.AllCategories() {
			rules, err := snap.Rules.RulesFor(cat.ID)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", cat.ID, err)
			}
			if rules.Preferred.IsZero() {
				t.Errorf("category %q has no preferred unit", cat.ID)
			}
		}
	})

	t.Run("alias entries are sorted", func(t *testing.T) {
		entries := snap.AliasEntries()
		for i := 1; i < len(entries); i++ {
			if entries[i-1].Alias > entries[i].Alias {
				t.Fatalf("entries out of order: %q before %q", entries[i-1].Alias, entries[i].Alias)
			}
		}
	})
}

func TestStoreSwap(t *testing.T) {
	first, err := NewSnapshot(minimalSnapshotData())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store := NewStore(first)

	if store.Snapshot() != first {
		t.Fatal("store should serve the initial snapshot")
	}

	data := minimalSnapshotData()
	data.Version = "test-2"
	second, err := NewSnapshot(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store.Swap(second)
	if store.Snapshot() != second {
		t.Fatal("store should serve the swapped snapshot")
	}
}

func TestStoreConcurrentReaders(t *testing.T) {
	first, err := NewSnapshot(minimalSnapshotData())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store := NewStore(first)

	// Readers must always observe a complete snapshot while swaps happen.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				snap := store.Snapshot()
				if snap.Catalog == nil || snap.Rules == nil {
					t.Error("observed partial snapshot")
					return
				}
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 100; j++ {
			data := minimalSnapshotData()
			data.Version = fmt.Sprintf("swap-%d", j)
			snap, err := NewSnapshot(data)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			store.Swap(snap)
		}
	}()

	wg.Wait()
}
