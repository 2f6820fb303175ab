package core

// PacketType identifies an outbound packet kind.
type PacketType string

const (
	// PacketUserConnected carries formatted connect/welcome text.
	PacketUserConnected PacketType = "user-connected"
	// PacketUserDisconnected carries formatted departure text.
	PacketUserDisconnected PacketType = "user-disconnected"
	// PacketMessage carries a chat message echoed to the whole room.
	PacketMessage PacketType = "message"
	// PacketUserList carries the current member list of a room.
	PacketUserList PacketType = "list-users"
	// PacketUserStartedTyping notifies that a member started typing.
	PacketUserStartedTyping PacketType = "user-started-typing"
	// PacketUserStoppedTyping notifies that a member stopped typing.
	PacketUserStoppedTyping PacketType = "user-stopped-typing"
)

// UserRef is the wire-safe projection of a client.
type UserRef struct {
	Name string
}

// Packet is one outbound structured event addressed to one connection.
// Which fields are set depends on Type.
type Packet struct {
	Type      PacketType
	Timestamp int64
	Message   string    // user-connected, user-disconnected, message
	From      *UserRef  // message, user-started-typing, user-stopped-typing
	Clients   []UserRef // list-users
}
