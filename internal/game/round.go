package game

import (
	"errors"
	"math/rand"

	"guess-the-liar/internal/prompts"
)

// Assignment is the ephemeral output of a round draw. It replaces the room's
// previous round state atomically; scores and player identities are untouched.
type Assignment struct {
	Impostors       map[string]struct{}
	CanonicalPrompt string
	Prompts         map[string]string // player ID -> assigned prompt text
}

// IsImpostor reports whether the given player was drawn as an impostor.
func (a Assignment) IsImpostor(playerID string) bool {
	_, ok := a.Impostors[playerID]
	return ok
}

var ErrEmptyRoster = errors.New("cannot draw a round for an empty roster")

// drawImpostorCount picks how many impostors a round has: uniform over
// [0, n-1). Zero impostors is a legal, reachable outcome — a "no liar" round
// is part of the game. A single-player roster always draws zero.
func drawImpostorCount(n int, rng *rand.Rand) int {
	if n <= 1 {
		return 0
	}
	return rng.Intn(n - 1)
}

// NewAssignment draws one round: an impostor subset and a per-player prompt
// assignment from a single category. Impostors get an independently drawn
// decoy each (repeats across impostors are allowed); everyone else gets the
// category's canonical prompt.
func NewAssignment(roster []string, bank *prompts.Bank, rng *rand.Rand) (Assignment, error) {
	if len(roster) == 0 {
		return Assignment{}, ErrEmptyRoster
	}

	numImpostors := drawImpostorCount(len(roster), rng)

	// Partial Fisher-Yates: the first numImpostors entries of the shuffled
	// copy are the impostors, each identity drawn at most once.
	shuffled := append([]string(nil), roster...)
	for i := 0; i < numImpostors; i++ {
		j := i + rng.Intn(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	impostors := make(map[string]struct{}, numImpostors)
	for _, id := range shuffled[:numImpostors] {
		impostors[id] = struct{}{}
	}

	category := bank.PickCategory(rng)

	assigned := make(map[string]string, len(roster))
	for _, id := range roster {
		if _, ok := impostors[id]; ok {
			assigned[id] = bank.PickVariant(category, rng)
		} else {
			assigned[id] = category.Real
		}
	}

	return Assignment{
		Impostors:       impostors,
		CanonicalPrompt: category.Real,
		Prompts:         assigned,
	}, nil
}
