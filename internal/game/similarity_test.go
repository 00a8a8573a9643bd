package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical answers", "pizza with pineapple", "pizza with pineapple", 1.0},
		{"case and order ignored", "Pizza WITH Pineapple", "pineapple pizza with", 1.0},
		{"disjoint answers", "cats are great", "dogs rule everything", 0.0},
		{"partial overlap", "red blue", "blue green", 1.0 / 3.0},
		{"both empty", "", "", 0.0},
		{"one empty", "hello", "", 0.0},
		{"whitespace only", "   ", "\t\n", 0.0},
		{"repeats collapse", "go go go", "go", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
			assert.InDelta(t, tt.want, Similarity(tt.b, tt.a), 1e-9, "similarity must be symmetric")
		})
	}
}

func TestSimilarPairs(t *testing.T) {
	t.Run("ranked descending", func(t *testing.T) {
		pairs := SimilarPairs(map[string]string{
			"p1": "coffee in the morning",
			"p2": "coffee in the evening",
			"p3": "long walks",
		})
		assert.Len(t, pairs, 3)
		assert.Equal(t, "p1", pairs[0].A)
		assert.Equal(t, "p2", pairs[0].B)
		for i := 1; i < len(pairs); i++ {
			assert.LessOrEqual(t, pairs[i].Score, pairs[i-1].Score)
		}
	})

	t.Run("fewer than two answers yields nothing", func(t *testing.T) {
		assert.Empty(t, SimilarPairs(map[string]string{"p1": "alone"}))
		assert.Empty(t, SimilarPairs(nil))
	})

	t.Run("pair identity is ordered", func(t *testing.T) {
		pairs := SimilarPairs(map[string]string{"z": "a", "a": "a"})
		assert.Len(t, pairs, 1)
		assert.Equal(t, "a", pairs[0].A)
		assert.Equal(t, "z", pairs[0].B)
	})
}
