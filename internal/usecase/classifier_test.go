package usecase

import (
	"testing"

	"github.com/pantrychef/backend/internal/domain"
	"github.com/pantrychef/backend/internal/refdata"
)

func seedStore(t *testing.T) *refdata.Store {
	t.Helper()
	snap, err := refdata.SeedSnapshot()
	if err != nil {
		t.Fatalf("loading seed snapshot: %v", err)
	}
	return refdata.NewStore(snap)
}

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	return NewClassifier(seedStore(t), ClassifierConfig{})
}

func TestNewClassifier(t *testing.T) {
	store := seedStore(t)

	t.Run("uses defaults for zero config", func(t *testing.T) {
		c := NewClassifier(store, ClassifierConfig{})
		if c.similarityThreshold != 0.6 {
			t.Errorf("similarityThreshold = %v, want 0.6 (default)", c.similarityThreshold)
		}
		if c.fuzzyEditDistance != 1 {
			t.Errorf("fuzzyEditDistance = %v, want 1 (default)", c.fuzzyEditDistance)
		}
	})

	t.Run("rejects out-of-range threshold", func(t *testing.T) {
		c := NewClassifier(store, ClassifierConfig{SimilarityThreshold: 1.5})
		if c.similarityThreshold != 0.6 {
			t.Errorf("similarityThreshold = %v, want 0.6 (default)", c.similarityThreshold)
		}
	})
}

func TestClassify(t *testing.T) {
	classifier := newTestClassifier(t)

	t.Run("exact alias match has confidence 1.0", func(t *testing.T) {
		result := classifier.Classify("chicken broth")
		if result.Category != "soups" {
			t.Errorf("Category = %q, want soups", result.Category)
		}
		if result.Confidence != 1.0 {
			t.Errorf("Confidence = %v, want 1.0", result.Confidence)
		}
	})

	t.Run("plurals resolve through normalization", func(t *testing.T) {
		result := classifier.Classify("Strawberries")
		if result.Category != "produce" {
			t.Errorf("Category = %q, want produce", result.Category)
		}
		if result.Confidence != 1.0 {
			t.Errorf("Confidence = %v, want 1.0", result.Confidence)
		}
	})

	t.Run("descriptor noise falls through to fuzzy match", func(t *testing.T) {
		result := classifier.Classify("Fresh Strawberries")
		if result.Category != "produce" {
			t.Errorf("Category = %q, want produce", result.Category)
		}
		if result.Confidence < 0.6 {
			t.Errorf("Confidence = %v, want >= 0.6", result.Confidence)
		}
	})

	t.Run("branded broth goes to soups, not meat", func(t *testing.T) {
		result := classifier.Classify("Pacific Organic Chicken Broth")
		if result.Category != "soups" {
			t.Errorf("Category = %q, want soups", result.Category)
		}
	})

	t.Run("typos within edit distance still match", func(t *testing.T) {
		result := classifier.Classify("strawbery")
		if result.Category != "produce" {
			t.Errorf("Category = %q, want produce", result.Category)
		}
	})

	t.Run("unknown food falls back to other with zero confidence", func(t *testing.T) {
		result := classifier.Classify("unknown_xyz_food")
		if result.Category != domain.CategoryOther {
			t.Errorf("Category = %q, want %q", result.Category, domain.CategoryOther)
		}
		if result.Confidence != 0.0 {
			t.Errorf("Confidence = %v, want 0.0", result.Confidence)
		}
	})

	t.Run("empty name falls back to other", func(t *testing.T) {
		result := classifier.Classify("")
		if result.Category != domain.CategoryOther {
			t.Errorf("Category = %q, want %q", result.Category, domain.CategoryOther)
		}
	})

	t.Run("is deterministic for identical inputs", func(t *testing.T) {
		a := classifier.Classify("Pacific Organic Chicken Broth")
		b := classifier.Classify("Pacific Organic Chicken Broth")
		if a != b {
			t.Errorf("repeated calls differ: %+v vs %+v", a, b)
		}
	})
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		s1, s2 string
		want   int
	}{
		{"", "", 0},
		{"milk", "", 4},
		{"milk", "milk", 0},
		{"strawbery", "strawberry", 1},
		{"broth", "brine", 3},
	}

	for _, tt := range tests {
		t.Run(tt.s1+"_"+tt.s2, func(t *testing.T) {
			if got := levenshteinDistance(tt.s1, tt.s2); got != tt.want {
				t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tt.s1, tt.s2, got, tt.want)
			}
		})
	}
}

func TestFuzzyTokenMatch(t *testing.T) {
	classifier := newTestClassifier(t)

	t.Run("short tokens never fuzzy match", func(t *testing.T) {
		if classifier.fuzzyTokenMatch("egg", "egy") {
			t.Error("tokens under 4 chars must not fuzzy match")
		}
	})

	t.Run("identical tokens match", func(t *testing.T) {
		if !classifier.fuzzyTokenMatch("egg", "egg") {
			t.Error("identical tokens must match")
		}
	})

	t.Run("length gap beyond the edit distance short-circuits", func(t *testing.T) {
		if classifier.fuzzyTokenMatch("milk", "milkshake") {
			t.Error("tokens with a large length gap must not match")
		}
	})
}
