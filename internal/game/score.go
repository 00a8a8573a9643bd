package game

// Policy holds the scoring coefficients. They are configuration rather than
// constants so hosts can tune the reward balance between catching liars and
// deceiving the table.
type Policy struct {
	// CorrectAccusation is awarded to a non-impostor once per true impostor
	// in their vote set.
	CorrectAccusation int
	// PerfectDeception is awarded to an impostor accused by nobody.
	PerfectDeception int
	// PerEvadedVoter is awarded to an accused impostor once per non-impostor
	// who failed to accuse them.
	PerEvadedVoter int
}

// DefaultPolicy returns the "Option A" coefficients.
func DefaultPolicy() Policy {
	return Policy{
		CorrectAccusation: 1,
		PerfectDeception:  2,
		PerEvadedVoter:    1,
	}
}

// Score computes per-player score deltas for a finished round. votes maps a
// voter to the set of players they accused. Every player in votes receives an
// entry in the result, even when the delta is zero. Accusing a non-impostor
// earns nothing and costs nothing.
func Score(impostors map[string]struct{}, votes map[string]map[string]struct{}, p Policy) map[string]int {
	deltas := make(map[string]int, len(votes))
	for id := range votes {
		deltas[id] = 0
	}

	isImpostor := func(id string) bool {
		_, ok := impostors[id]
		return ok
	}

	// Non-impostors: one reward per correctly accused impostor.
	for voter, accused := range votes {
		if isImpostor(voter) {
			continue
		}
		for target := range accused {
			if isImpostor(target) {
				deltas[voter] += p.CorrectAccusation
			}
		}
	}

	// Impostors: full deception bonus when nobody voted for them, otherwise
	// partial reward per non-impostor they slipped past.
	for impostor := range impostors {
		accusers := 0
		evaded := 0
		for voter, accused := range votes {
			if voter == impostor {
				continue
			}
			if _, ok := accused[impostor]; ok {
				accusers++
			} else if !isImpostor(voter) {
				evaded++
			}
		}

		if accusers == 0 {
			deltas[impostor] += p.PerfectDeception
		} else {
			deltas[impostor] += evaded * p.PerEvadedVoter
		}
	}

	return deltas
}
