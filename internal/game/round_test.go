package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guess-the-liar/internal/prompts"
)

func testBank(t *testing.T) *prompts.Bank {
	t.Helper()
	bank, err := prompts.NewBank([]prompts.Category{
		{Name: "pets", Real: "What pet would you get?", Decoys: []string{
			"Invent a pet you never had.",
			"Describe a wild animal as a pet.",
		}},
		{Name: "food", Real: "What did you eat today?", Decoys: []string{
			"Make up a meal you never ate.",
		}},
	}, []string{"pizza", "guitar", "moon"})
	require.NoError(t, err)
	return bank
}

func TestDrawImpostorCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("solo roster always zero", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			assert.Equal(t, 0, drawImpostorCount(1, rng))
		}
	})

	t.Run("two players always zero or stays below n", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			assert.Equal(t, 0, drawImpostorCount(2, rng))
		}
	})

	t.Run("count stays strictly below n-1 upper bound", func(t *testing.T) {
		for n := 3; n <= 8; n++ {
			for i := 0; i < 200; i++ {
				got := drawImpostorCount(n, rng)
				assert.GreaterOrEqual(t, got, 0)
				assert.Less(t, got, n-1)
			}
		}
	})

	t.Run("zero is reachable for large rosters", func(t *testing.T) {
		sawZero := false
		for i := 0; i < 500 && !sawZero; i++ {
			sawZero = drawImpostorCount(6, rng) == 0
		}
		assert.True(t, sawZero, "a no-impostor round should occur")
	})
}

func TestNewAssignment(t *testing.T) {
	bank := testBank(t)
	roster := []string{"a", "b", "c", "d", "e"}

	t.Run("empty roster rejected", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		_, err := NewAssignment(nil, bank, rng)
		assert.ErrorIs(t, err, ErrEmptyRoster)
	})

	t.Run("every player gets a prompt", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2))
		a, err := NewAssignment(roster, bank, rng)
		require.NoError(t, err)
		assert.Len(t, a.Prompts, len(roster))
		for _, id := range roster {
			assert.NotEmpty(t, a.Prompts[id])
		}
	})

	t.Run("impostors get decoys and the rest the canonical prompt", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		for i := 0; i < 100; i++ {
			a, err := NewAssignment(roster, bank, rng)
			require.NoError(t, err)
			for _, id := range roster {
				if a.IsImpostor(id) {
					assert.NotEqual(t, a.CanonicalPrompt, a.Prompts[id])
				} else {
					assert.Equal(t, a.CanonicalPrompt, a.Prompts[id])
				}
			}
		}
	})

	t.Run("impostor set is a proper subset", func(t *testing.T) {
		rng := rand.New(rand.NewSource(4))
		for i := 0; i < 100; i++ {
			a, err := NewAssignment(roster, bank, rng)
			require.NoError(t, err)
			assert.Less(t, len(a.Impostors), len(roster))
			for id := range a.Impostors {
				assert.Contains(t, roster, id)
			}
		}
	})

	t.Run("solo player is never the impostor", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		for i := 0; i < 20; i++ {
			a, err := NewAssignment([]string{"solo"}, bank, rng)
			require.NoError(t, err)
			assert.Empty(t, a.Impostors)
			assert.Equal(t, a.CanonicalPrompt, a.Prompts["solo"])
		}
	})

	t.Run("input roster is not mutated", func(t *testing.T) {
		rng := rand.New(rand.NewSource(6))
		in := []string{"a", "b", "c", "d", "e"}
		for i := 0; i < 50; i++ {
			_, err := NewAssignment(in, bank, rng)
			require.NoError(t, err)
		}
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, in)
	})
}
