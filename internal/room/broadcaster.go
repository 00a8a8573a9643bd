package room

// Broadcaster fans a room's new state out to connected clients. Each client
// gets its own projection, so the broadcaster is handed the room code and
// pulls per-viewer snapshots itself.
type Broadcaster interface {
	RoomUpdated(code string)
}

// NopBroadcaster discards every update.
type NopBroadcaster struct{}

func (NopBroadcaster) RoomUpdated(string) {}
