package game

// Phase represents one state of a room's lifecycle.
type Phase string

const (
	PhaseLobby  Phase = "lobby"
	PhaseAnswer Phase = "answer"
	PhaseClue   Phase = "clue"
	PhaseDebate Phase = "debate"
	PhaseReveal Phase = "reveal"
)

func (p Phase) String() string {
	return string(p)
}

// Timed reports whether the phase runs against a deadline. Lobby and reveal
// are the only phases without an active timer.
func (p Phase) Timed() bool {
	return p == PhaseAnswer || p == PhaseClue || p == PhaseDebate
}

// CanTransitionTo checks if a transition from the current phase to the target
// phase is valid.
func (p Phase) CanTransitionTo(target Phase) bool {
	validTransitions := map[Phase][]Phase{
		PhaseLobby:  {PhaseAnswer, PhaseClue},
		PhaseAnswer: {PhaseDebate, PhaseLobby},
		PhaseClue:   {PhaseDebate, PhaseLobby},
		PhaseDebate: {PhaseReveal, PhaseLobby},
		PhaseReveal: {PhaseAnswer, PhaseClue, PhaseLobby}, // next round or back to lobby
	}

	for _, allowed := range validTransitions[p] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Mode selects which variant of the game a round plays.
type Mode string

const (
	// ModeLiar hands every non-impostor the same question and each impostor
	// a decoy variant of it.
	ModeLiar Mode = "liar"
	// ModeOneWord reveals a secret item and collects one-word clues in turn
	// order instead of free-text answers.
	ModeOneWord Mode = "oneword"
)

// Valid reports whether m is a known game mode.
func (m Mode) Valid() bool {
	return m == ModeLiar || m == ModeOneWord
}

// EntryPhase returns the phase a round of this mode starts in.
func (m Mode) EntryPhase() Phase {
	if m == ModeOneWord {
		return PhaseClue
	}
	return PhaseAnswer
}
