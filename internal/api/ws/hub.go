package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"guess-the-liar/internal/room"
)

// client is one websocket connection, pinned to a room and a viewer. Writes
// go through mu because both the hub and the read loop send on it.
type client struct {
	conn     *websocket.Conn
	playerID string
	mu       sync.Mutex
	limiter  *rate.Limiter
}

func (c *client) send(msg any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}

// Hub tracks connections per room and repaints them whenever the manager
// reports a change. Every client receives its own projection of the room, so
// an impostor's screen never carries the data that would unmask them.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*client]struct{}
	svc   RoomService

	// updates carries room codes from RoomUpdated to the Run loop.
	// RoomUpdated is called with room locks held, so it must never block.
	updates chan string
}

func NewHub(svc RoomService) *Hub {
	return &Hub{
		rooms:   make(map[string]map[*client]struct{}),
		svc:     svc,
		updates: make(chan string, 1024),
	}
}

// RoomUpdated queues a repaint for the room. Implements room.Broadcaster.
func (h *Hub) RoomUpdated(code string) {
	select {
	case h.updates <- code:
	default:
		// Queue full. A later update repaints the same room, and clients
		// can always request a sync themselves.
		log.Printf("ws: update queue full, dropping repaint for room %s", code)
	}
}

// Run consumes the update queue until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case code := <-h.updates:
			h.broadcastRoom(code)
		}
	}
}

// broadcastRoom pushes a fresh personalized snapshot to every connection in
// the room.
func (h *Hub) broadcastRoom(code string) {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.rooms[code]))
	for c := range h.rooms[code] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		h.sendSnapshot(code, c)
	}
}

func (h *Hub) sendSnapshot(code string, c *client) {
	snap, err := h.svc.Snapshot(code, c.playerID)
	if err != nil {
		_ = c.send(gin.H{"action": "error", "error": err.Error()})
		return
	}
	if err := c.send(gin.H{"action": "snapshot", "data": snap}); err != nil {
		h.remove(code, c)
		_ = c.conn.Close()
	}
}

func (h *Hub) add(code string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[code]; !ok {
		h.rooms[code] = make(map[*client]struct{})
	}
	h.rooms[code][c] = struct{}{}
}

func (h *Hub) remove(code string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.rooms[code], c)
	if len(h.rooms[code]) == 0 {
		delete(h.rooms, code)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type inboundMessage struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// HandleWS upgrades the connection and serves it until the client goes away.
// room_code and player_id arrive as query parameters; an empty player_id is
// a spectator and gets the public projection.
func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	playerID := c.Query("player_id")

	if _, err := h.svc.Snapshot(roomCode, playerID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws: upgrade failed: %v", err)
		return
	}

	cl := &client{
		conn:     conn,
		playerID: playerID,
		limiter:  rate.NewLimiter(10, 20),
	}
	h.add(roomCode, cl)
	defer func() {
		h.remove(roomCode, cl)
		_ = conn.Close()
	}()

	// Initial paint so a reconnecting client catches up immediately.
	h.sendSnapshot(roomCode, cl)

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if !cl.limiter.Allow() {
			_ = cl.send(gin.H{"action": "error", "error": "slow down"})
			continue
		}
		h.dispatch(roomCode, cl, msg)
	}
}

func (h *Hub) dispatch(roomCode string, cl *client, msg inboundMessage) {
	var err error
	switch msg.Action {
	case "sync":
		h.sendSnapshot(roomCode, cl)
		return
	case "submit-answer":
		var d struct {
			Answer string `json:"answer"`
		}
		if err = json.Unmarshal(msg.Data, &d); err == nil {
			err = h.svc.SubmitAnswer(roomCode, cl.playerID, d.Answer)
		}
	case "update-answer":
		var d struct {
			Answer string `json:"answer"`
		}
		if err = json.Unmarshal(msg.Data, &d); err == nil {
			err = h.svc.UpdateAnswer(roomCode, cl.playerID, d.Answer)
		}
	case "submit-clue":
		var d struct {
			Clue string `json:"clue"`
		}
		if err = json.Unmarshal(msg.Data, &d); err == nil {
			err = h.svc.SubmitClue(roomCode, cl.playerID, d.Clue)
		}
	case "submit-vote":
		var d struct {
			Accused []string `json:"accused"`
		}
		if err = json.Unmarshal(msg.Data, &d); err == nil {
			err = h.svc.SubmitVote(roomCode, cl.playerID, d.Accused)
		}
	default:
		_ = cl.send(gin.H{"action": "error", "error": "unknown action"})
		return
	}
	if err != nil {
		_ = cl.send(gin.H{"action": "error", "error": err.Error()})
	}
}

// interface check
var _ room.Broadcaster = (*Hub)(nil)
