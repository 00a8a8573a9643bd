package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"guess-the-liar/internal/game"
	"guess-the-liar/internal/room"
)

// statusFor maps command rejections to HTTP statuses. Duplicate submissions
// never reach here; the manager treats them as successful no-ops.
func statusFor(err error) int {
	switch {
	case errors.Is(err, room.ErrRoomNotFound), errors.Is(err, room.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, room.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, room.ErrInvalidPhase), errors.Is(err, room.ErrNotYourTurn):
		return http.StatusConflict
	case errors.Is(err, room.ErrAlreadySubmitted), errors.Is(err, room.ErrEmptyRoster), errors.Is(err, room.ErrNameTaken):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// CreateRoomHandler opens a fresh lobby.
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName required"})
			return
		}
		code, playerID, err := rm.CreateRoom(req.PlayerName)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"roomCode": code, "playerId": playerID})
	}
}

// JoinRoomHandler adds a player to an open lobby.
func JoinRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode and playerName required"})
			return
		}
		playerID, err := rm.JoinRoom(req.RoomCode, req.PlayerName)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"roomCode": req.RoomCode, "playerId": playerID})
	}
}

// StartRoundHandler begins round one in the requested mode.
func StartRoundHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StartRoundRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" || req.PlayerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode and playerId required"})
			return
		}
		if err := rm.StartRound(req.RoomCode, req.PlayerID, game.Mode(req.Mode)); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// SubmitAnswerHandler locks in an answer for the round.
func SubmitAnswerHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AnswerRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" || req.PlayerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode and playerId required"})
			return
		}
		if err := rm.SubmitAnswer(req.RoomCode, req.PlayerID, req.Answer); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// UpdateAnswerHandler overwrites a draft answer before it is locked in.
func UpdateAnswerHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AnswerRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" || req.PlayerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode and playerId required"})
			return
		}
		if err := rm.UpdateAnswer(req.RoomCode, req.PlayerID, req.Answer); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// SubmitClueHandler records a one-word clue for the player whose turn it is.
func SubmitClueHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ClueRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" || req.PlayerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode and playerId required"})
			return
		}
		if err := rm.SubmitClue(req.RoomCode, req.PlayerID, req.Clue); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// SubmitVoteHandler records the player's accusation set.
func SubmitVoteHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VoteRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" || req.PlayerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode and playerId required"})
			return
		}
		if err := rm.SubmitVote(req.RoomCode, req.PlayerID, req.Accused); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// NextRoundHandler deals the next round from the reveal screen.
func NextRoundHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NextRoundRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" || req.PlayerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode and playerId required"})
			return
		}
		if err := rm.NextRound(req.RoomCode, req.PlayerID, game.Mode(req.Mode)); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// EndMatchHandler returns the room to the lobby, keeping scores.
func EndMatchHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RoomActionRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" || req.PlayerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode and playerId required"})
			return
		}
		if err := rm.EndMatch(req.RoomCode, req.PlayerID); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// CloseRoomHandler deletes the room.
func CloseRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RoomActionRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" || req.PlayerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode and playerId required"})
			return
		}
		if err := rm.CloseRoom(req.RoomCode, req.PlayerID); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// RoomStateHandler returns the viewer's projection of the room. Without a
// playerId the public spectator view comes back.
func RoomStateHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomCode := c.Query("roomCode")
		if roomCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode required"})
			return
		}
		snap, err := rm.Snapshot(roomCode, c.Query("playerId"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": snap})
	}
}

// RoomQRHandler renders a join link for the room as a PNG QR code.
func RoomQRHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomCode := c.Query("roomCode")
		if roomCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode required"})
			return
		}
		if _, err := rm.Snapshot(roomCode, ""); err != nil {
			fail(c, err)
			return
		}

		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}
		url := scheme + "://" + c.Request.Host + "/join?room=" + roomCode

		png, err := qrcode.Encode(url, qrcode.Medium, 320)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "qr generation failed"})
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	}
}
