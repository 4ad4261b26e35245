package usecase

import (
	"log"
	"strings"

	"github.com/pantrychef/backend/internal/domain"
	"github.com/pantrychef/backend/internal/refdata"
)

// Similarity weights for fuzzy alias matching. Alias coverage dominates: if
// every token of the alias appears in the food name, the food almost
// certainly belongs to that alias's category even when the name carries
// extra brand or descriptor tokens.
const (
	aliasCoverageWeight = 0.60 // fraction of alias tokens found in the food name
	nameCoverageWeight  = 0.20 // fraction of food-name tokens found in the alias
	jaccardWeight       = 0.20 // token Jaccard over the union

	defaultSimilarityThreshold = 0.6
	defaultFuzzyEditDistance   = 1
)

// classifierNoiseWords are brand/marketing tokens stripped before matching.
// They describe how a food is sold, not what it is.
var classifierNoiseWords = map[string]bool{
	"a": true, "an": true, "the": true, "of": true, "with": true,
	"and": true, "or": true, "in": true, "on": true, "for": true,
	"fresh": true, "organic": true, "natural": true, "premium": true,
	"value": true, "family": true, "size": true, "brand": true,
	"style": true, "classic": true, "original": true, "select": true,
}

// ClassifierConfig holds configuration for the food classifier.
type ClassifierConfig struct {
	SimilarityThreshold float64
	FuzzyEditDistance   int
	EnableDebugLogging  bool
}

// Classifier resolves free-text food names to a food category. It is a pure
// function over the active reference snapshot: no network or database calls,
// fully deterministic for a given snapshot.
type Classifier struct {
	store               *refdata.Store
	similarityThreshold float64
	fuzzyEditDistance   int
	enableDebugLogging  bool
}

// NewClassifier creates a classifier with the given configuration.
func NewClassifier(store *refdata.Store, config ClassifierConfig) *Classifier {
	threshold := config.SimilarityThreshold
	if threshold <= 0 || threshold > 1 {
		threshold = defaultSimilarityThreshold
	}

	fuzzyDist := config.FuzzyEditDistance
	if fuzzyDist <= 0 {
		fuzzyDist = defaultFuzzyEditDistance
	}

	return &Classifier{
		store:               store,
		similarityThreshold: threshold,
		fuzzyEditDistance:   fuzzyDist,
		enableDebugLogging:  config.EnableDebugLogging,
	}
}

// Classify resolves a food name to (category, confidence). Exact alias hits
// return confidence 1.0; fuzzy matches return their similarity score; any
// name that matches nothing falls back to CategoryOther with confidence 0.
func (c *Classifier) Classify(foodName string) domain.Classification {
	normalized := refdata.NormalizeFoodName(foodName)
	if normalized == "" {
		return domain.Classification{Category: domain.CategoryOther, Confidence: 0}
	}

	snap := c.store.Snapshot()

	if category, ok := snap.AliasCategory(normalized); ok {
		return domain.Classification{Category: category, Confidence: 1.0}
	}

	nameTokens := c.tokenize(normalized)
	if len(nameTokens) == 0 {
		return domain.Classification{Category: domain.CategoryOther, Confidence: 0}
	}

	var (
		bestScore    float64
		bestAlias    string
		bestCategory string
	)

	// AliasEntries is sorted by alias then category, so ties resolve
	// deterministically: higher score first, then the longer alias, then
	// the lexicographically smaller category id.
	for _, entry := range snap.AliasEntries() {
		aliasTokens := c.tokenize(entry.Alias)
		if len(aliasTokens) == 0 {
			continue
		}

		score := c.similarity(nameTokens, aliasTokens)
		if score < c.similarityThreshold {
			continue
		}

		better := score > bestScore ||
			(score == bestScore && len(entry.Alias) > len(bestAlias)) ||
			(score == bestScore && len(entry.Alias) == len(bestAlias) && bestCategory != "" && entry.Category < bestCategory)
		if better {
			bestScore = score
			bestAlias = entry.Alias
			bestCategory = entry.Category
		}
	}

	if bestCategory == "" {
		if c.enableDebugLogging {
			log.Printf("[CLASSIFY] %q: no alias above threshold %.2f, falling back to %q", foodName, c.similarityThreshold, domain.CategoryOther)
		}
		return domain.Classification{Category: domain.CategoryOther, Confidence: 0}
	}

	if c.enableDebugLogging {
		log.Printf("[CLASSIFY] %q -> %q via alias %q (similarity %.2f)", foodName, bestCategory, bestAlias, bestScore)
	}

	return domain.Classification{Category: bestCategory, Confidence: bestScore}
}

// similarity computes the weighted token similarity between a food name and
// an alias, with fuzzy token equality (edit distance) absorbing typos.
func (c *Classifier) similarity(nameTokens, aliasTokens []string) float64 {
	aliasMatched := c.countMatched(aliasTokens, nameTokens)
	nameMatched := c.countMatched(nameTokens, aliasTokens)

	aliasCoverage := float64(aliasMatched) / float64(len(aliasTokens))
	nameCoverage := float64(nameMatched) / float64(len(nameTokens))

	union := tokenUnion(nameTokens, aliasTokens)
	jaccard := float64(aliasMatched) / float64(union)

	return aliasCoverage*aliasCoverageWeight + nameCoverage*nameCoverageWeight + jaccard*jaccardWeight
}

// countMatched counts how many tokens of needles appear in haystack, exactly
// or within the fuzzy edit distance.
func (c *Classifier) countMatched(needles, haystack []string) int {
	matched := 0
	for _, n := range needles {
		for _, h := range haystack {
			if n == h || c.fuzzyTokenMatch(n, h) {
				matched++
				break
			}
		}
	}
	return matched
}

// fuzzyTokenMatch checks if two tokens are similar within the edit distance
// threshold. Only tokens of 4+ characters participate, to avoid false
// positives between short words.
func (c *Classifier) fuzzyTokenMatch(token1, token2 string) bool {
	if token1 == token2 {
		return true
	}
	if len(token1) < 4 || len(token2) < 4 {
		return false
	}

	lenDiff := len(token1) - len(token2)
	if lenDiff < 0 {
		lenDiff = -lenDiff
	}
	if lenDiff > c.fuzzyEditDistance {
		return false
	}

	return levenshteinDistance(token1, token2) <= c.fuzzyEditDistance
}

// tokenize splits a normalized food name into matchable tokens, dropping
// noise words, numerics, and single characters.
func (c *Classifier) tokenize(normalized string) []string {
	words := strings.Fields(normalized)

	var tokens []string
	for _, word := range words {
		if len(word) <= 1 {
			continue
		}
		if classifierNoiseWords[word] {
			continue
		}
		if isNumeric(word) {
			continue
		}
		tokens = append(tokens, word)
	}

	return tokens
}

// isNumeric checks if a string contains only digits
func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}

// levenshteinDistance calculates the edit distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	// Use two rows instead of full matrix for space efficiency
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// tokenUnion returns the count of unique tokens across both sets
func tokenUnion(tokens1, tokens2 []string) int {
	set := make(map[string]bool)
	for _, t := range tokens1 {
		set[t] = true
	}
	for _, t := range tokens2 {
		set[t] = true
	}
	return len(set)
}
