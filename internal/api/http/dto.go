package http

// CreateRoomRequest represents the payload for /create-room.
type CreateRoomRequest struct {
	PlayerName string `json:"playerName"`
}

// JoinRoomRequest represents the payload for /join-room.
type JoinRoomRequest struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

// StartRoundRequest represents the payload for /start-round.
type StartRoundRequest struct {
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
	Mode     string `json:"mode"`
}

// AnswerRequest represents the payload for /submit-answer and /update-answer.
type AnswerRequest struct {
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
	Answer   string `json:"answer"`
}

// ClueRequest represents the payload for /submit-clue.
type ClueRequest struct {
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
	Clue     string `json:"clue"`
}

// VoteRequest represents the payload for /submit-vote. Accused may be empty,
// which is a vote for nobody.
type VoteRequest struct {
	RoomCode string   `json:"roomCode"`
	PlayerID string   `json:"playerId"`
	Accused  []string `json:"accused"`
}

// NextRoundRequest represents the payload for /next-round. An empty mode
// keeps the room's current mode.
type NextRoundRequest struct {
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
	Mode     string `json:"mode"`
}

// RoomActionRequest represents the payload for /end-match and /close-room.
type RoomActionRequest struct {
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
}
