package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guess-the-liar/internal/game"
)

func findView(t *testing.T, snap Snapshot, id string) PlayerView {
	t.Helper()
	for _, v := range snap.Players {
		if v.ID == id {
			return v
		}
	}
	t.Fatalf("player %s missing from snapshot", id)
	return PlayerView{}
}

func TestSnapshotVisibility(t *testing.T) {
	m, fs, _ := newTestManager(t)
	code, ids := setupRoom(t, m, "Ana", "Ben")
	creator, ana, ben := ids[0], ids[1], ids[2]

	require.NoError(t, m.StartRound(code, creator, game.ModeLiar))
	require.NoError(t, m.SubmitAnswer(code, ana, "my secret answer"))

	t.Run("players see only their own prompt and answer mid-round", func(t *testing.T) {
		snap, err := m.Snapshot(code, ben)
		require.NoError(t, err)

		assert.Empty(t, snap.Impostors)
		assert.Empty(t, snap.CanonicalPrompt)
		assert.NotEmpty(t, findView(t, snap, ben).Prompt)
		assert.Empty(t, findView(t, snap, ana).Prompt)
		assert.Empty(t, findView(t, snap, ana).Answer)
		assert.True(t, findView(t, snap, ana).SubmittedAnswer, "submission flags are public")
	})

	t.Run("creator sees the draw", func(t *testing.T) {
		snap, err := m.Snapshot(code, creator)
		require.NoError(t, err)

		r, _ := fs.GetRoom(code)
		assert.Len(t, snap.Impostors, len(r.Impostors))
		assert.Equal(t, r.CanonicalPrompt, snap.CanonicalPrompt)
	})

	t.Run("spectators get the public view", func(t *testing.T) {
		snap, err := m.Snapshot(code, "")
		require.NoError(t, err)
		assert.Empty(t, snap.Impostors)
		for _, v := range snap.Players {
			assert.Empty(t, v.Prompt)
			assert.Empty(t, v.Answer)
		}
	})

	require.NoError(t, m.SubmitAnswer(code, creator, "creator answer"))
	require.NoError(t, m.SubmitAnswer(code, ben, "ben answer"))

	t.Run("debate opens every answer", func(t *testing.T) {
		snap, err := m.Snapshot(code, ben)
		require.NoError(t, err)
		assert.Equal(t, game.PhaseDebate, snap.Phase)
		assert.Equal(t, "my secret answer", findView(t, snap, ana).Answer)
		assert.Empty(t, snap.Impostors, "roles stay hidden through the debate")
		assert.NotNil(t, snap.Deadline)
	})

	for _, id := range ids {
		require.NoError(t, m.SubmitVote(code, id, nil))
	}

	t.Run("reveal opens everything", func(t *testing.T) {
		snap, err := m.Snapshot(code, ben)
		require.NoError(t, err)

		r, _ := fs.GetRoom(code)
		assert.Equal(t, game.PhaseReveal, snap.Phase)
		assert.Len(t, snap.Impostors, len(r.Impostors))
		assert.NotEmpty(t, findView(t, snap, ana).Prompt)
		assert.Nil(t, snap.Deadline, "reveal is untimed")
		assert.NotEmpty(t, snap.SimilarPairs)
		assert.LessOrEqual(t, len(snap.SimilarPairs), 3)
	})

	t.Run("players are ordered by score", func(t *testing.T) {
		r, _ := fs.GetRoom(code)
		r.Players[ana].Score = 5
		r.Players[ben].Score = 3

		snap, err := m.Snapshot(code, creator)
		require.NoError(t, err)
		for i := 1; i < len(snap.Players); i++ {
			assert.GreaterOrEqual(t, snap.Players[i-1].Score, snap.Players[i].Score)
		}
		assert.Equal(t, ana, snap.Players[0].ID)
	})
}
