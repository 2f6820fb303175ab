package proto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Inbound is one client-to-server event. Action is required; which other
// fields are required depends on the action.
type Inbound struct {
	Action    string `json:"action"`
	RoomID    string `json:"roomId,omitempty"`
	UserName  string `json:"userName,omitempty"`
	Message   string `json:"message,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// Decode parses an inbound frame, failing closed: unknown fields and
// malformed shapes are rejected rather than ignored.
func Decode(data []byte) (Inbound, error) {
	var in Inbound
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return Inbound{}, fmt.Errorf("decode inbound: %w", err)
	}
	return in, nil
}

// Outbound packet types.
const (
	TypeUserConnected     = "user-connected"
	TypeUserDisconnected  = "user-disconnected"
	TypeMessage           = "message"
	TypeUserList          = "list-users"
	TypeUserStartedTyping = "user-started-typing"
	TypeUserStoppedTyping = "user-stopped-typing"
	TypeError             = "error"
)

// User is the wire projection of a chat participant.
type User struct {
	Name string `json:"name"`
}

// Outbound is the server-to-client envelope. Type and Timestamp are
// always present; the rest depends on Type.
type Outbound struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Message   string `json:"message,omitempty"`
	From      *User  `json:"from,omitempty"`
	Clients   []User `json:"clients,omitempty"`
	Error     *Error `json:"error,omitempty"`
}

// Error describes a rejected inbound event.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
