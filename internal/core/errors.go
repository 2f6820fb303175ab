package core

import "errors"

// Error codes reported to clients over the wire.
const (
	ErrCodeMissingAction       = "missing_action"
	ErrCodeInvalidAction       = "invalid_action"
	ErrCodeClientNotFound      = "client_not_found"
	ErrCodeNotInRoom           = "not_in_room"
	ErrCodeDuplicateConnection = "duplicate_connection"
)

var (
	// ErrMissingAction is returned for an inbound event with no action field.
	ErrMissingAction = errors.New("no action specified")
	// ErrInvalidAction is returned for an unrecognized action value.
	ErrInvalidAction = errors.New("invalid action")
	// ErrClientNotFound is returned when a connection id has no registered
	// client, including any action sent before connect.
	ErrClientNotFound = errors.New("client not found")
	// ErrNotInRoom is returned when a registered client has no current room.
	ErrNotInRoom = errors.New("not in room")
	// ErrDuplicateConnection is returned when a connection id is registered twice.
	ErrDuplicateConnection = errors.New("duplicate connection")
)

// ErrorCode maps a dispatch error to its wire code. Unknown errors map to
// an empty string.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrMissingAction):
		return ErrCodeMissingAction
	case errors.Is(err, ErrInvalidAction):
		return ErrCodeInvalidAction
	case errors.Is(err, ErrClientNotFound):
		return ErrCodeClientNotFound
	case errors.Is(err, ErrNotInRoom):
		return ErrCodeNotInRoom
	case errors.Is(err, ErrDuplicateConnection):
		return ErrCodeDuplicateConnection
	default:
		return ""
	}
}
