package core

// Inbound action names. The action string travels verbatim from the wire
// so dispatch can distinguish a missing action from an unrecognized one.
const (
	ActionConnect     = "connect"
	ActionMessage     = "message"
	ActionListUsers   = "list-users"
	ActionStartTyping = "start-typing"
	ActionStopTyping  = "stop-typing"
)

// Command represents one decoded inbound event from a client.
type Command struct {
	Action    string
	Room      string // honored on connect only; derived from membership otherwise
	UserName  string
	Text      string
	Timestamp int64 // seconds since epoch; 0 means unset
}
