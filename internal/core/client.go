package core

// Client is a connected, named chat participant. One Client exists per
// live connection that has completed the connect handshake. Events is the
// connection handle: the core pushes outbound packets into it and the
// transport drains it for the connection's lifetime.
type Client struct {
	ID     string
	Name   string
	Events chan *Packet
}

// NewClient constructs a client bound to the given connection id and
// outbound event channel.
func NewClient(id, name string, events chan *Packet) *Client {
	if name == "" {
		name = id
	}
	return &Client{
		ID:     id,
		Name:   name,
		Events: events,
	}
}

// Ref returns the projection of the client that is safe to put on the
// wire (display name only, no connection identity).
func (c *Client) Ref() UserRef {
	return UserRef{Name: c.Name}
}
