package room

import (
	"sort"
	"time"

	"guess-the-liar/internal/game"
)

// PlayerView is one roster entry as a particular viewer may see it.
type PlayerView struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Score           int      `json:"score"`
	SubmittedAnswer bool     `json:"submittedAnswer"`
	Voted           bool     `json:"voted"`
	Prompt          string   `json:"prompt,omitempty"`
	Answer          string   `json:"answer,omitempty"`
	Clue            string   `json:"clue,omitempty"`
	Vote            []string `json:"vote,omitempty"`
	Impostor        bool     `json:"impostor,omitempty"`
}

// Snapshot is the immutable external view of a room, projected for one
// viewer. The true impostor set is withheld from non-creator views outside
// the reveal phase; prompts other than the viewer's own are hidden until
// reveal, since they give the role away.
type Snapshot struct {
	Code      string     `json:"code"`
	CreatorID string     `json:"creatorId"`
	Phase     game.Phase `json:"phase"`
	Mode      game.Mode  `json:"mode"`
	Round     int        `json:"round"`
	Deadline  *time.Time `json:"deadline,omitempty"`

	CanonicalPrompt string `json:"canonicalPrompt,omitempty"`
	SecretItem      string `json:"secretItem,omitempty"`
	TurnPlayerID    string `json:"turnPlayerId,omitempty"`

	// Players are ordered by descending score, the leaderboard order.
	Players []PlayerView `json:"players"`

	Impostors     []string              `json:"impostors,omitempty"`
	SimilarPairs  []game.PairSimilarity `json:"similarPairs,omitempty"`
	Compatibility []game.PairSimilarity `json:"compatibility,omitempty"`
}

// snapshotLocked projects the room for viewerID. Must be called with r.mu
// held.
func (r *Room) snapshotLocked(viewerID string) Snapshot {
	isCreator := viewerID == r.CreatorID
	revealed := r.Phase == game.PhaseReveal
	answersOpen := r.Phase == game.PhaseDebate || revealed

	snap := Snapshot{
		Code:         r.Code,
		CreatorID:    r.CreatorID,
		Phase:        r.Phase,
		Mode:         r.Mode,
		Round:        r.Round,
		TurnPlayerID: r.currentTurnLocked(),
	}

	if !r.Deadline.IsZero() {
		d := r.Deadline
		snap.Deadline = &d
	}

	// The real question (or secret item) is privileged information until the
	// debate opens; the creator always sees it, matching the host view.
	if isCreator || answersOpen {
		snap.CanonicalPrompt = r.CanonicalPrompt
		snap.SecretItem = r.SecretItem
	}

	if isCreator || revealed {
		snap.Impostors = sortedIDs(r.Impostors)
	}

	for _, id := range r.Order {
		p := r.Players[id]
		view := PlayerView{
			ID:              p.ID,
			Name:            p.Name,
			Score:           p.Score,
			SubmittedAnswer: p.SubmittedAnswer,
			Voted:           p.Voted,
			Clue:            p.Clue,
		}
		own := id == viewerID
		if own || revealed {
			view.Prompt = p.Prompt
		}
		if own || answersOpen {
			view.Answer = p.Answer
		}
		if own || revealed {
			view.Vote = sortedIDs(p.Vote)
		}
		if revealed {
			_, view.Impostor = r.Impostors[id]
		}
		snap.Players = append(snap.Players, view)
	}

	sort.SliceStable(snap.Players, func(i, j int) bool {
		if snap.Players[i].Score != snap.Players[j].Score {
			return snap.Players[i].Score > snap.Players[j].Score
		}
		return snap.Players[i].Name < snap.Players[j].Name
	})

	if revealed && r.Mode == game.ModeLiar {
		snap.SimilarPairs = topSimilarPairsLocked(r, 3)
	}
	if r.Phase == game.PhaseLobby {
		snap.Compatibility = r.compatibilityLocked()
	}

	return snap
}

func topSimilarPairsLocked(r *Room, n int) []game.PairSimilarity {
	answers := make(map[string]string, len(r.Players))
	for id, p := range r.Players {
		answers[id] = p.Answer
	}
	pairs := game.SimilarPairs(answers)
	if len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}

func sortedIDs(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortPairsDesc(pairs []game.PairSimilarity) {
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Score > pairs[j].Score
	})
}
