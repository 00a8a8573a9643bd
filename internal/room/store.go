package room

// Store is the persistence port. The core only requires that a saved room is
// durable before the command is acknowledged and that the latest state is
// returned to later readers; any key-value backend satisfies this.
type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(code string)
	ListRooms() []*Room
}
