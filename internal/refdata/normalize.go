package refdata

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// NormalizeFoodName normalizes free-text food names for alias lookups:
// lowercase, punctuation stripped, whitespace collapsed, and simple plurals
// singularized token by token. Alias keys are stored through the same
// function, so load-time and query-time text always agree.
func NormalizeFoodName(s string) string {
	cleaned := nonAlphanumericRegex.ReplaceAllString(strings.ToLower(s), " ")
	words := strings.Fields(cleaned)
	for i, w := range words {
		words[i] = singularize(w)
	}
	return strings.Join(words, " ")
}

// normalizeUnitText normalizes unit strings for catalog lookups. Periods are
// dropped entirely ("Tbsp." -> "tbsp", "fl. oz" -> "fl oz") and whitespace is
// collapsed so multi-word abbreviations resolve consistently.
func normalizeUnitText(s string) string {
	cleaned := strings.ToLower(strings.TrimSpace(s))
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = nonAlphanumericRegex.ReplaceAllString(cleaned, " ")
	return multipleSpacesRegex.ReplaceAllString(strings.TrimSpace(cleaned), " ")
}

// singularize reduces simple English plurals. It intentionally handles only
// the regular forms that occur in food names; irregulars stay as-is and are
// covered by explicit aliases instead.
func singularize(word string) string {
	if len(word) < 3 {
		return word
	}
	switch {
	case strings.HasSuffix(word, "ies"):
		return word[:len(word)-3] + "y" // berries -> berry
	case strings.HasSuffix(word, "oes"):
		return word[:len(word)-2] // tomatoes -> tomato
	case strings.HasSuffix(word, "ses"),
		strings.HasSuffix(word, "xes"),
		strings.HasSuffix(word, "zes"),
		strings.HasSuffix(word, "ches"),
		strings.HasSuffix(word, "shes"):
		return word[:len(word)-2] // boxes -> box
	case strings.HasSuffix(word, "ss"), strings.HasSuffix(word, "us"):
		return word // grass, asparagus
	case strings.HasSuffix(word, "s"):
		return word[:len(word)-1] // cups -> cup
	}
	return word
}
