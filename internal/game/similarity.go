package game

import (
	"sort"
	"strings"
)

// Similarity returns the Jaccard similarity of two free-text answers over
// their lower-cased whitespace-tokenized word sets. An empty union yields 0,
// not 1: two blank answers are not rewarded.
func Similarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	intersection := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		set[tok] = struct{}{}
	}
	return set
}

// PairSimilarity is one unordered player pair and its similarity score.
type PairSimilarity struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Score float64 `json:"score"`
}

// SimilarPairs ranks every unordered pair of answers by similarity,
// descending, with ties broken by pair identity for stable output. Purely
// cosmetic; never feeds scoring.
func SimilarPairs(answers map[string]string) []PairSimilarity {
	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	pairs := make([]PairSimilarity, 0, len(ids)*(len(ids)-1)/2)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			pairs = append(pairs, PairSimilarity{
				A:     ids[i],
				B:     ids[j],
				Score: Similarity(answers[ids[i]], answers[ids[j]]),
			})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Score > pairs[j].Score
	})
	return pairs
}
