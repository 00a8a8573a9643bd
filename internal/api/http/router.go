package http

import (
	"github.com/gin-gonic/gin"

	"guess-the-liar/internal/api/ws"
	"guess-the-liar/internal/config"
	"guess-the-liar/internal/room"
)

func NewRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config) *gin.Engine {
	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/create-room", CreateRoomHandler(rm))
	r.POST("/join-room", JoinRoomHandler(rm))
	r.POST("/end-match", EndMatchHandler(rm))
	r.POST("/close-room", CloseRoomHandler(rm))
	r.GET("/room-state", RoomStateHandler(rm))
	r.GET("/room-qr", RoomQRHandler(rm))

	// --- GAME ENDPOINTS ---
	r.POST("/start-round", StartRoundHandler(rm))
	r.POST("/submit-answer", SubmitAnswerHandler(rm))
	r.POST("/update-answer", UpdateAnswerHandler(rm))
	r.POST("/submit-clue", SubmitClueHandler(rm))
	r.POST("/submit-vote", SubmitVoteHandler(rm))
	r.POST("/next-round", NextRoundHandler(rm))

	// --- CONFIG ENDPOINTS ---
	r.GET("/config/scoring", GetScoringHandler(rm))
	r.POST("/config/scoring", UpdateScoringHandler(rm))

	return r
}
