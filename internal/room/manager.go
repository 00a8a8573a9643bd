package room

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"guess-the-liar/internal/config"
	"guess-the-liar/internal/game"
	"guess-the-liar/internal/prompts"
)

// Manager serializes all commands against rooms. Each command locks the
// target room, validates, mutates, saves, and notifies the broadcaster, so
// concurrent submissions and timer expiries never interleave inside a room.
type Manager struct {
	store Store
	cfg   config.Config
	bank  *prompts.Bank
	bcast Broadcaster

	// policyMu guards policy, which the scoring config endpoint may replace
	// at runtime.
	policyMu sync.RWMutex
	policy   game.Policy

	// now is replaceable in tests.
	now func() time.Time
}

func NewManager(s Store, cfg config.Config, bank *prompts.Bank) *Manager {
	return &Manager{
		store: s,
		cfg:   cfg,
		bank:  bank,
		bcast: NopBroadcaster{},
		policy: game.Policy{
			CorrectAccusation: cfg.Scoring.CorrectAccusation,
			PerfectDeception:  cfg.Scoring.PerfectDeception,
			PerEvadedVoter:    cfg.Scoring.PerEvadedVoter,
		},
		now: time.Now,
	}
}

// SetBroadcaster installs the update fan-out. The ws hub registers itself
// here after construction, which keeps the import edge pointing one way.
func (m *Manager) SetBroadcaster(b Broadcaster) {
	m.bcast = b
}

// Policy returns the active scoring coefficients.
func (m *Manager) Policy() game.Policy {
	m.policyMu.RLock()
	defer m.policyMu.RUnlock()
	return m.policy
}

// SetPolicy replaces the scoring coefficients for rounds scored after this
// call. Already-scored rounds are never recomputed.
func (m *Manager) SetPolicy(p game.Policy) {
	m.policyMu.Lock()
	defer m.policyMu.Unlock()
	m.policy = p
}

const codeLetters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeLetters[rng.Intn(len(codeLetters))]
	}
	return string(b)
}

// CreateRoom opens a new lobby with the creator as its first player and
// returns the room code and the creator's player ID.
func (m *Manager) CreateRoom(creatorName string) (code, playerID string, err error) {
	creatorName = strings.TrimSpace(creatorName)
	if creatorName == "" {
		creatorName = "Host"
	}

	rng := rand.New(rand.NewSource(m.now().UnixNano()))
	code = randCode(rng, 6)
	for {
		if _, exists := m.store.GetRoom(code); !exists {
			break
		}
		code = randCode(rng, 6)
	}

	r := newRoom(code, rng, m.now())
	p := &Player{ID: uuid.NewString(), Name: creatorName}
	r.CreatorID = p.ID
	r.addPlayerLocked(p)

	m.store.SaveRoom(r)
	m.bcast.RoomUpdated(code)
	return code, p.ID, nil
}

// JoinRoom adds a player to a lobby. Joining mid-round is rejected; the
// roster is fixed for the duration of a round.
func (m *Manager) JoinRoom(code, name string) (playerID string, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Player"
	}

	r, ok := m.store.GetRoom(code)
	if !ok {
		return "", ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Phase != game.PhaseLobby {
		return "", ErrInvalidPhase
	}
	for _, p := range r.Players {
		if strings.EqualFold(p.Name, name) {
			return "", ErrNameTaken
		}
	}

	p := &Player{ID: uuid.NewString(), Name: name}
	r.addPlayerLocked(p)

	m.store.SaveRoom(r)
	m.bcast.RoomUpdated(code)
	return p.ID, nil
}

// StartRound begins round one. Creator only, lobby only. The mode chosen
// here holds until NextRound switches it.
func (m *Manager) StartRound(code, playerID string, mode game.Mode) error {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if playerID != r.CreatorID {
		return ErrForbidden
	}
	if r.Phase != game.PhaseLobby {
		return ErrInvalidPhase
	}
	if mode == "" {
		mode = game.ModeLiar
	}
	if !mode.Valid() {
		return ErrInvalidPhase
	}

	r.Mode = mode
	r.Round = 1
	r.LastScoredRound = 0
	if err := m.dealRoundLocked(r); err != nil {
		return err
	}

	m.store.SaveRoom(r)
	m.bcast.RoomUpdated(code)
	return nil
}

// dealRoundLocked draws impostors and content for the current round and
// moves the room into the mode's entry phase with a fresh deadline.
func (m *Manager) dealRoundLocked(r *Room) error {
	roster := r.rosterLocked()
	if len(roster) == 0 {
		return ErrEmptyRoster
	}

	assignment, err := game.NewAssignment(roster, m.bank, r.rng)
	if err != nil {
		return err
	}

	switch r.Mode {
	case game.ModeOneWord:
		r.applyItemLocked(assignment.Impostors, m.bank.PickItem(r.rng))
	default:
		r.applyAssignmentLocked(assignment)
	}

	entry := r.Mode.EntryPhase()
	r.Phase = entry
	m.armDeadlineLocked(r, entry)
	return nil
}

// armDeadlineLocked sets the timer for a timed phase, or clears it for an
// untimed one. DeadlineRound pins the timer to the round that armed it.
func (m *Manager) armDeadlineLocked(r *Room, phase game.Phase) {
	var window time.Duration
	switch phase {
	case game.PhaseAnswer:
		window = m.cfg.AnswerWindow
	case game.PhaseClue:
		window = m.cfg.ClueWindow
	case game.PhaseDebate:
		window = m.cfg.DebateWindow
	default:
		r.Deadline = time.Time{}
		r.DeadlineRound = 0
		return
	}
	r.Deadline = m.now().Add(window)
	r.DeadlineRound = r.Round
}

// SubmitAnswer locks in a player's answer for the round. A second submit in
// the same round is a silent no-op so network retries stay harmless. When
// the last answer arrives the debate opens early.
func (m *Manager) SubmitAnswer(code, playerID, answer string) error {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.Players[playerID]
	if !ok {
		return ErrPlayerNotFound
	}
	if r.Phase != game.PhaseAnswer {
		return ErrInvalidPhase
	}
	if p.SubmittedAnswer {
		return nil
	}

	p.Answer = strings.TrimSpace(answer)
	p.SubmittedAnswer = true

	if r.allAnsweredLocked() {
		r.Phase = game.PhaseDebate
		m.armDeadlineLocked(r, game.PhaseDebate)
	}

	m.store.SaveRoom(r)
	m.bcast.RoomUpdated(code)
	return nil
}

// UpdateAnswer overwrites the player's draft while the answer window is
// open. Once the answer is locked in, drafts are rejected.
func (m *Manager) UpdateAnswer(code, playerID, answer string) error {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.Players[playerID]
	if !ok {
		return ErrPlayerNotFound
	}
	if r.Phase != game.PhaseAnswer {
		return ErrInvalidPhase
	}
	if p.SubmittedAnswer {
		return ErrAlreadySubmitted
	}

	p.Answer = strings.TrimSpace(answer)

	m.store.SaveRoom(r)
	m.bcast.RoomUpdated(code)
	return nil
}

// SubmitClue records a one-word clue. Clues go strictly in join order; only
// the first whitespace-separated token is kept. After the last clue the
// debate opens.
func (m *Manager) SubmitClue(code, playerID, clue string) error {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.Players[playerID]; !ok {
		return ErrPlayerNotFound
	}
	if r.Phase != game.PhaseClue {
		return ErrInvalidPhase
	}
	if r.currentTurnLocked() != playerID {
		return ErrNotYourTurn
	}

	word := ""
	if fields := strings.Fields(clue); len(fields) > 0 {
		word = fields[0]
	}
	r.Players[playerID].Clue = word
	r.TurnIdx++

	if r.TurnIdx >= len(r.Order) {
		r.Phase = game.PhaseDebate
		m.armDeadlineLocked(r, game.PhaseDebate)
	}

	m.store.SaveRoom(r)
	m.bcast.RoomUpdated(code)
	return nil
}

// SubmitVote records a player's accusation set for the debate. Accusing
// nobody is valid. A repeat vote in the same round is a silent no-op. When
// the final vote lands the round is scored and revealed immediately.
func (m *Manager) SubmitVote(code, playerID string, accused []string) error {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.Players[playerID]
	if !ok {
		return ErrPlayerNotFound
	}
	if r.Phase != game.PhaseDebate {
		return ErrInvalidPhase
	}
	if p.Voted {
		return nil
	}

	vote := make(map[string]struct{}, len(accused))
	for _, id := range accused {
		if _, exists := r.Players[id]; !exists {
			return ErrPlayerNotFound
		}
		if id == playerID {
			continue
		}
		vote[id] = struct{}{}
	}
	p.Vote = vote
	p.Voted = true

	if r.allVotedLocked() {
		m.revealLocked(r)
	}

	m.store.SaveRoom(r)
	m.bcast.RoomUpdated(code)
	return nil
}

// revealLocked closes the debate: scores the round exactly once, folds the
// round's answers into the compatibility stats, and shows the results.
func (m *Manager) revealLocked(r *Room) {
	if r.LastScoredRound < r.Round {
		deltas := game.Score(r.Impostors, r.votesLocked(), m.Policy())
		for id, delta := range deltas {
			if p, ok := r.Players[id]; ok {
				p.Score += delta
			}
		}
		r.recordSimilarityLocked()
		r.LastScoredRound = r.Round
	}
	r.Phase = game.PhaseReveal
	m.armDeadlineLocked(r, game.PhaseReveal)
}

// NextRound deals the following round from the reveal screen. Creator only.
// An empty mode keeps the current one.
func (m *Manager) NextRound(code, playerID string, mode game.Mode) error {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if playerID != r.CreatorID {
		return ErrForbidden
	}
	if r.Phase != game.PhaseReveal {
		return ErrInvalidPhase
	}
	if mode != "" {
		if !mode.Valid() {
			return ErrInvalidPhase
		}
		r.Mode = mode
	}

	r.Round++
	if err := m.dealRoundLocked(r); err != nil {
		return err
	}

	m.store.SaveRoom(r)
	m.bcast.RoomUpdated(code)
	return nil
}

// EndMatch sends everyone back to the lobby from any phase. Scores and
// compatibility history survive; round state does not. Creator only.
func (m *Manager) EndMatch(code, playerID string) error {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if playerID != r.CreatorID {
		return ErrForbidden
	}

	r.clearRoundLocked()
	r.Phase = game.PhaseLobby

	m.store.SaveRoom(r)
	m.bcast.RoomUpdated(code)
	return nil
}

// CloseRoom deletes the room entirely. Creator only.
func (m *Manager) CloseRoom(code, playerID string) error {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	if playerID != r.CreatorID {
		r.mu.Unlock()
		return ErrForbidden
	}
	r.mu.Unlock()

	m.store.DeleteRoom(code)
	m.bcast.RoomUpdated(code)
	return nil
}

// Snapshot returns the room as viewerID is allowed to see it. An unknown
// viewer gets the public projection, which lets spectators watch.
func (m *Manager) Snapshot(code, viewerID string) (Snapshot, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return Snapshot{}, ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked(viewerID), nil
}

// Tick advances every room whose deadline has passed. A deadline armed by an
// earlier round is stale and ignored; the round that replaced it armed its
// own.
func (m *Manager) Tick(now time.Time) {
	for _, r := range m.store.ListRooms() {
		r.mu.Lock()
		if r.Deadline.IsZero() || now.Before(r.Deadline) || r.DeadlineRound != r.Round {
			r.mu.Unlock()
			continue
		}

		switch r.Phase {
		case game.PhaseAnswer:
			// Unsubmitted drafts lock in as-is, empty included.
			for _, p := range r.Players {
				p.SubmittedAnswer = true
			}
			r.Phase = game.PhaseDebate
			m.armDeadlineLocked(r, game.PhaseDebate)
		case game.PhaseClue:
			r.Phase = game.PhaseDebate
			m.armDeadlineLocked(r, game.PhaseDebate)
		case game.PhaseDebate:
			// Missing votes count as accusing nobody.
			for _, p := range r.Players {
				if !p.Voted {
					p.Vote = nil
					p.Voted = true
				}
			}
			m.revealLocked(r)
		default:
			r.Deadline = time.Time{}
		}

		m.store.SaveRoom(r)
		code := r.Code
		r.mu.Unlock()
		m.bcast.RoomUpdated(code)
	}
}

// Run drives Tick until ctx is cancelled.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.cfg.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			m.Tick(now)
		}
	}
}
