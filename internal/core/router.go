package core

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Router is the per-connection-event state machine. It consumes decoded
// inbound commands plus the originating connection id, consults and
// mutates the Registry, and pushes outbound packets into the recipients'
// event channels. A connection moves through three implicit states:
// open with no client yet, connected and joined to exactly one room,
// and terminated.
//
// One mutex serializes every entry point, so registry mutation and
// packet emission for one inbound event are atomic with respect to
// other events. Packet sends are non-blocking; a slow or dead recipient
// never stalls dispatch.
type Router struct {
	mu        sync.Mutex
	registry  *Registry
	formatter Formatter
	log       *zerolog.Logger
	conns     map[string]chan *Packet // open connections, pre-connect handles
}

// NewRouter constructs a router around the given registry. A nil
// formatter falls back to the default templates; a nil logger disables
// logging.
func NewRouter(registry *Registry, formatter Formatter, logger *zerolog.Logger) *Router {
	if formatter == nil {
		formatter = NewTemplateFormatter()
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Router{
		registry:  registry,
		formatter: formatter,
		log:       logger,
		conns:     make(map[string]chan *Packet),
	}
}

// OnOpen records a newly opened connection and the event channel the
// transport drains for it. No client exists until the connection sends a
// connect action.
func (rt *Router) OnOpen(connID string, events chan *Packet) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	rt.conns[connID] = events
	rt.log.Debug().Str("conn_id", connID).Msg("connection opened")
}

// OnInbound dispatches one decoded inbound event. All returned errors
// are terminal for that event only: no partial registry mutation and no
// partial broadcast has happened, and the caller decides whether to
// close the connection or report the error and continue.
func (rt *Router) OnInbound(connID string, cmd Command) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	switch cmd.Action {
	case "":
		return ErrMissingAction
	case ActionConnect:
		return rt.handleConnect(connID, cmd)
	case ActionMessage:
		return rt.handleMessage(connID, cmd)
	case ActionListUsers:
		return rt.handleListUsers(connID)
	case ActionStartTyping:
		return rt.handleTyping(connID, PacketUserStartedTyping)
	case ActionStopTyping:
		return rt.handleTyping(connID, PacketUserStoppedTyping)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidAction, cmd.Action)
	}
}

// OnClose removes the connection's client and notifies the remaining
// room members. Closing a connection that never connected, or closing
// twice, fails with ErrClientNotFound and emits nothing.
func (rt *Router) OnClose(connID string) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	delete(rt.conns, connID)

	client, roomID, err := rt.registry.Remove(connID)
	if err != nil {
		return err
	}

	if roomID != "" {
		if room := rt.registry.Room(roomID); room != nil {
			now := time.Now().Unix()
			room.Broadcast(&Packet{
				Type:      PacketUserDisconnected,
				Timestamp: now,
				Message:   rt.formatter.UserDisconnected(client, now),
			}, "")
		}
	}

	rt.log.Info().Str("conn_id", connID).Str("user", client.Name).Str("room", roomID).Msg("client disconnected")
	return nil
}

// OnError handles a fatal transport error for the connection: the client
// is removed exactly as on close, and the caller must then terminate the
// connection.
func (rt *Router) OnError(connID string, cause error) error {
	rt.log.Warn().Err(cause).Str("conn_id", connID).Msg("connection errored")
	return rt.OnClose(connID)
}

func (rt *Router) handleConnect(connID string, cmd Command) error {
	events, ok := rt.conns[connID]
	if !ok {
		return ErrClientNotFound
	}

	client, err := rt.registry.Register(connID, cmd.UserName, events)
	if err != nil {
		return err
	}
	room := rt.registry.JoinRoom(cmd.Room, client)

	now := time.Now().Unix()
	room.Broadcast(&Packet{
		Type:      PacketUserConnected,
		Timestamp: now,
		Message:   rt.formatter.UserConnected(client, now),
	}, client.ID)
	rt.send(client, &Packet{
		Type:      PacketUserConnected,
		Timestamp: now,
		Message:   rt.formatter.UserWelcome(client, now),
	})
	rt.send(client, userListPacket(room, now))

	rt.log.Info().Str("conn_id", connID).Str("user", client.Name).Str("room", room.ID).Msg("client connected")
	return nil
}

func (rt *Router) handleMessage(connID string, cmd Command) error {
	client, err := rt.registry.Find(connID)
	if err != nil {
		return err
	}
	roomID, err := rt.registry.RoomOf(client)
	if err != nil {
		return err
	}
	room := rt.registry.Room(roomID)

	timestamp := cmd.Timestamp
	if timestamp == 0 {
		timestamp = time.Now().Unix()
	}

	// Exactly one log call per message, before the broadcast.
	rt.log.Info().
		Str("user", client.Name).
		Str("room", roomID).
		Int64("ts", timestamp).
		Msg("message received")

	from := client.Ref()
	room.Broadcast(&Packet{
		Type:      PacketMessage,
		Timestamp: timestamp,
		Message:   rt.formatter.MessageReceived(client, cmd.Text, timestamp),
		From:      &from,
	}, "")
	room.Broadcast(&Packet{
		Type:      PacketUserStoppedTyping,
		Timestamp: timestamp,
		From:      &from,
	}, client.ID)
	return nil
}

func (rt *Router) handleListUsers(connID string) error {
	client, err := rt.registry.Find(connID)
	if err != nil {
		return err
	}
	roomID, err := rt.registry.RoomOf(client)
	if err != nil {
		return err
	}

	rt.send(client, userListPacket(rt.registry.Room(roomID), time.Now().Unix()))
	return nil
}

func (rt *Router) handleTyping(connID string, kind PacketType) error {
	client, err := rt.registry.Find(connID)
	if err != nil {
		return err
	}
	roomID, err := rt.registry.RoomOf(client)
	if err != nil {
		return err
	}

	from := client.Ref()
	rt.registry.Room(roomID).Broadcast(&Packet{
		Type:      kind,
		Timestamp: time.Now().Unix(),
		From:      &from,
	}, client.ID)
	return nil
}

// send delivers a packet to a single client without blocking.
func (rt *Router) send(c *Client, p *Packet) {
	select {
	case c.Events <- p:
	default:
		// Drop if slow consumer.
	}
}

func userListPacket(room *Room, timestamp int64) *Packet {
	members := room.Members()
	clients := make([]UserRef, 0, len(members))
	for _, member := range members {
		clients = append(clients, member.Ref())
	}
	return &Packet{
		Type:      PacketUserList,
		Timestamp: timestamp,
		Clients:   clients,
	}
}
