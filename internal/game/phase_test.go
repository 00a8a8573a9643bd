package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseTransitions(t *testing.T) {
	allowed := [][2]Phase{
		{PhaseLobby, PhaseAnswer},
		{PhaseLobby, PhaseClue},
		{PhaseAnswer, PhaseDebate},
		{PhaseClue, PhaseDebate},
		{PhaseDebate, PhaseReveal},
		{PhaseReveal, PhaseAnswer},
		{PhaseReveal, PhaseClue},
		{PhaseReveal, PhaseLobby},
		{PhaseAnswer, PhaseLobby},
		{PhaseClue, PhaseLobby},
		{PhaseDebate, PhaseLobby},
	}
	for _, tr := range allowed {
		assert.True(t, tr[0].CanTransitionTo(tr[1]), "%s -> %s", tr[0], tr[1])
	}

	forbidden := [][2]Phase{
		{PhaseLobby, PhaseDebate},
		{PhaseLobby, PhaseReveal},
		{PhaseAnswer, PhaseReveal},
		{PhaseAnswer, PhaseClue},
		{PhaseDebate, PhaseAnswer},
		{PhaseReveal, PhaseDebate},
	}
	for _, tr := range forbidden {
		assert.False(t, tr[0].CanTransitionTo(tr[1]), "%s -> %s", tr[0], tr[1])
	}
}

func TestPhaseTimed(t *testing.T) {
	assert.False(t, PhaseLobby.Timed())
	assert.True(t, PhaseAnswer.Timed())
	assert.True(t, PhaseClue.Timed())
	assert.True(t, PhaseDebate.Timed())
	assert.False(t, PhaseReveal.Timed())
}

func TestMode(t *testing.T) {
	assert.True(t, ModeLiar.Valid())
	assert.True(t, ModeOneWord.Valid())
	assert.False(t, Mode("charades").Valid())

	assert.Equal(t, PhaseAnswer, ModeLiar.EntryPhase())
	assert.Equal(t, PhaseClue, ModeOneWord.EntryPhase())
}
