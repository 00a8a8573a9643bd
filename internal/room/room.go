package room

import (
	"math/rand"
	"sync"
	"time"

	"guess-the-liar/internal/game"
)

// Player is the server-side record for one roster member. Answer, Clue, Vote
// and the two flags reset every round; Score accumulates across rounds.
type Player struct {
	ID   string
	Name string

	Prompt          string
	Answer          string
	Clue            string
	Vote            map[string]struct{}
	SubmittedAnswer bool
	Voted           bool

	Score int
}

// pairKey is an unordered player pair, IDs sorted.
type pairKey [2]string

func makePairKey(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// pairStats accumulates per-round answer similarity for one pair.
type pairStats struct {
	total  float64
	rounds int
}

// Room owns one game session. All fields are guarded by mu; only the manager
// mutates a room, and always with the lock held, so every command observes a
// consistent roster and phase.
type Room struct {
	mu  sync.Mutex
	rng *rand.Rand

	Code      string
	CreatorID string
	CreatedAt time.Time

	Phase game.Phase
	Mode  game.Mode
	Round int

	// LastScoredRound guards the debate->reveal scoring step against firing
	// twice for the same round.
	LastScoredRound int

	// Deadline is zero while the phase is untimed. DeadlineRound records
	// which round armed the timer; an expiry for an older round is stale
	// and must not act.
	Deadline      time.Time
	DeadlineRound int

	Impostors       map[string]struct{}
	CanonicalPrompt string
	SecretItem      string

	// TurnIdx indexes Order during the one-word clue phase.
	TurnIdx int

	Players map[string]*Player
	Order   []string // player IDs in join order

	compat map[pairKey]*pairStats
}

func newRoom(code string, rng *rand.Rand, createdAt time.Time) *Room {
	return &Room{
		rng:       rng,
		Code:      code,
		CreatedAt: createdAt,
		Phase:     game.PhaseLobby,
		Mode:      game.ModeLiar,
		Players:   make(map[string]*Player),
		compat:    make(map[pairKey]*pairStats),
	}
}

func (r *Room) addPlayerLocked(p *Player) {
	r.Players[p.ID] = p
	r.Order = append(r.Order, p.ID)
}

func (r *Room) rosterLocked() []string {
	return append([]string(nil), r.Order...)
}

func (r *Room) allAnsweredLocked() bool {
	for _, p := range r.Players {
		if !p.SubmittedAnswer {
			return false
		}
	}
	return len(r.Players) > 0
}

func (r *Room) allVotedLocked() bool {
	for _, p := range r.Players {
		if !p.Voted {
			return false
		}
	}
	return len(r.Players) > 0
}

// currentTurnLocked returns the player whose clue is due, or "" outside the
// clue phase.
func (r *Room) currentTurnLocked() string {
	if r.Phase != game.PhaseClue || r.TurnIdx >= len(r.Order) {
		return ""
	}
	return r.Order[r.TurnIdx]
}

// applyAssignmentLocked installs a fresh round draw and wipes every player's
// per-round state. Scores and identities are untouched.
func (r *Room) applyAssignmentLocked(a game.Assignment) {
	r.Impostors = a.Impostors
	r.CanonicalPrompt = a.CanonicalPrompt
	for id, p := range r.Players {
		p.Prompt = a.Prompts[id]
		p.Answer = ""
		p.Clue = ""
		p.Vote = nil
		p.SubmittedAnswer = false
		p.Voted = false
	}
	r.SecretItem = ""
	r.TurnIdx = 0
}

// applyItemLocked is the one-word counterpart of applyAssignmentLocked: the
// impostor draw is kept but prompts are replaced by a single secret item.
func (r *Room) applyItemLocked(impostors map[string]struct{}, item string) {
	r.Impostors = impostors
	r.CanonicalPrompt = ""
	r.SecretItem = item
	for _, p := range r.Players {
		p.Prompt = ""
		p.Answer = ""
		p.Clue = ""
		p.Vote = nil
		p.SubmittedAnswer = false
		p.Voted = false
	}
	r.TurnIdx = 0
}

// clearRoundLocked drops all round state on the way back to the lobby.
func (r *Room) clearRoundLocked() {
	r.Round = 0
	r.LastScoredRound = 0
	r.Impostors = nil
	r.CanonicalPrompt = ""
	r.SecretItem = ""
	r.TurnIdx = 0
	r.Deadline = time.Time{}
	r.DeadlineRound = 0
	for _, p := range r.Players {
		p.Prompt = ""
		p.Answer = ""
		p.Clue = ""
		p.Vote = nil
		p.SubmittedAnswer = false
		p.Voted = false
	}
}

// votesLocked collects the final vote sets for the scoring engine.
func (r *Room) votesLocked() map[string]map[string]struct{} {
	votes := make(map[string]map[string]struct{}, len(r.Players))
	for id, p := range r.Players {
		set := make(map[string]struct{}, len(p.Vote))
		for accused := range p.Vote {
			set[accused] = struct{}{}
		}
		votes[id] = set
	}
	return votes
}

// recordSimilarityLocked folds this round's answers into the running
// compatibility means. Only liar-mode rounds carry free-text answers worth
// comparing.
func (r *Room) recordSimilarityLocked() {
	if r.Mode != game.ModeLiar {
		return
	}
	for i := 0; i < len(r.Order); i++ {
		for j := i + 1; j < len(r.Order); j++ {
			a, b := r.Order[i], r.Order[j]
			key := makePairKey(a, b)
			stats, ok := r.compat[key]
			if !ok {
				stats = &pairStats{}
				r.compat[key] = stats
			}
			stats.total += game.Similarity(r.Players[a].Answer, r.Players[b].Answer)
			stats.rounds++
		}
	}
}

// compatibilityLocked returns the mean per-pair similarity across all scored
// rounds, descending.
func (r *Room) compatibilityLocked() []game.PairSimilarity {
	if len(r.compat) == 0 {
		return nil
	}
	out := make([]game.PairSimilarity, 0, len(r.compat))
	for key, stats := range r.compat {
		out = append(out, game.PairSimilarity{
			A:     key[0],
			B:     key[1],
			Score: stats.total / float64(stats.rounds),
		})
	}
	sortPairsDesc(out)
	return out
}
