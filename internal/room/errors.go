package room

import "errors"

// Rejection reasons returned by command handlers. All of them are recoverable
// and leave the room unchanged.
var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrForbidden        = errors.New("only the room creator may do that")
	ErrInvalidPhase     = errors.New("command not valid in the current phase")
	ErrAlreadySubmitted = errors.New("already submitted this round")
	ErrEmptyRoster      = errors.New("cannot start a round with no players")
	ErrNameTaken        = errors.New("that name is already taken in this room")
	ErrNotYourTurn      = errors.New("not your turn to give a clue")
)
