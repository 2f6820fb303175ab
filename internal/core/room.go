package core

// Room groups clients subscribed to the same broadcast domain. Members
// are keyed by connection id.
type Room struct {
	ID      string
	clients map[string]*Client
}

// NewRoom constructs a room with no members.
func NewRoom(id string) *Room {
	return &Room{
		ID:      id,
		clients: make(map[string]*Client),
	}
}

// AddClient inserts a client into the room. Returns true if newly added.
func (r *Room) AddClient(c *Client) bool {
	if _, exists := r.clients[c.ID]; exists {
		return false
	}
	r.clients[c.ID] = c
	return true
}

// RemoveClient deletes the client with the given connection id from the
// room. Returns true if removed.
func (r *Room) RemoveClient(id string) bool {
	if _, exists := r.clients[id]; !exists {
		return false
	}
	delete(r.clients, id)
	return true
}

// Members returns the current member set.
func (r *Room) Members() []*Client {
	members := make([]*Client, 0, len(r.clients))
	for _, c := range r.clients {
		members = append(members, c)
	}
	return members
}

// Broadcast sends a packet to every member except the connection id in
// exceptID (pass "" to address all members).
func (r *Room) Broadcast(packet *Packet, exceptID string) {
	for id, client := range r.clients {
		if id == exceptID {
			continue
		}
		select {
		case client.Events <- packet:
		default:
			// Drop if slow consumer.
		}
	}
}

// Empty returns true if no clients are in the room.
func (r *Room) Empty() bool {
	return len(r.clients) == 0
}
