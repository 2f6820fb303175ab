package core

// Registry owns the mapping of connection id to client and room id to
// member set. Pure in-memory data structure with no I/O; it is not
// goroutine-safe, the Router serializes all access.
type Registry struct {
	clients  map[string]*Client
	rooms    map[string]*Room
	memberOf map[string]string // connection id -> room id
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		clients:  make(map[string]*Client),
		rooms:    make(map[string]*Room),
		memberOf: make(map[string]string),
	}
}

// Register creates a client for the given connection id. Fails with
// ErrDuplicateConnection if the id is already registered.
func (reg *Registry) Register(id, name string, events chan *Packet) (*Client, error) {
	if _, exists := reg.clients[id]; exists {
		return nil, ErrDuplicateConnection
	}
	client := NewClient(id, name, events)
	reg.clients[id] = client
	return client, nil
}

// Find resolves a connection id to its client. Fails with
// ErrClientNotFound if the connection has not completed the connect
// handshake.
func (reg *Registry) Find(id string) (*Client, error) {
	client, ok := reg.clients[id]
	if !ok {
		return nil, ErrClientNotFound
	}
	return client, nil
}

// JoinRoom inserts the client into the room, creating the room on first
// reference to an unseen id.
func (reg *Registry) JoinRoom(roomID string, c *Client) *Room {
	room, ok := reg.rooms[roomID]
	if !ok {
		room = NewRoom(roomID)
		reg.rooms[roomID] = room
	}
	room.AddClient(c)
	reg.memberOf[c.ID] = roomID
	return room
}

// Room returns the room for the given id, or nil if it was never created.
func (reg *Registry) Room(roomID string) *Room {
	return reg.rooms[roomID]
}

// Members returns the current member set of the room. An unknown room
// behaves as an empty room rather than an error.
func (reg *Registry) Members(roomID string) []*Client {
	room, ok := reg.rooms[roomID]
	if !ok {
		return nil
	}
	return room.Members()
}

// RoomOf returns the room id the client is currently joined to. Fails
// with ErrNotInRoom if the client has no current membership.
func (reg *Registry) RoomOf(c *Client) (string, error) {
	roomID, ok := reg.memberOf[c.ID]
	if !ok {
		return "", ErrNotInRoom
	}
	return roomID, nil
}

// Remove deletes the client from the registry and from its room, and
// returns the client together with the room id it vacated ("" if the
// client was in no room). Fails with ErrClientNotFound on an unknown id;
// a second remove for the same id is an error, not a no-op.
func (reg *Registry) Remove(id string) (*Client, string, error) {
	client, ok := reg.clients[id]
	if !ok {
		return nil, "", ErrClientNotFound
	}
	delete(reg.clients, id)

	roomID, inRoom := reg.memberOf[id]
	if inRoom {
		delete(reg.memberOf, id)
		if room := reg.rooms[roomID]; room != nil {
			room.RemoveClient(id)
		}
	}
	return client, roomID, nil
}
