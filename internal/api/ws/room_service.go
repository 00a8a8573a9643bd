package ws

import "guess-the-liar/internal/room"

// RoomService is the slice of the room manager the hub needs: pulling
// per-viewer snapshots and relaying the in-round commands clients send over
// the socket. Lobby administration stays HTTP-only.
type RoomService interface {
	Snapshot(code, viewerID string) (room.Snapshot, error)
	SubmitAnswer(code, playerID, answer string) error
	UpdateAnswer(code, playerID, answer string) error
	SubmitClue(code, playerID, clue string) error
	SubmitVote(code, playerID string, accused []string) error
}
