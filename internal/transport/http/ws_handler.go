package http

import (
	"context"
	"errors"
	"io"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/roomcast/roomcast/internal/core"
	"github.com/roomcast/roomcast/internal/proto"
)

// WSHandler upgrades HTTP connections and bridges them to the router's
// lifecycle entry points.
type WSHandler struct {
	router *core.Router
	buffer int
	log    *zerolog.Logger
}

// NewWSHandler builds a new WebSocket handler. buffer sets the outbound
// event channel capacity per connection.
func NewWSHandler(router *core.Router, buffer int, logger *zerolog.Logger) *WSHandler {
	if buffer <= 0 {
		buffer = 16
	}
	return &WSHandler{router: router, buffer: buffer, log: logger}
}

// Handle serves one WebSocket connection for its whole lifetime.
func (h *WSHandler) Handle(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	connID := uuid.NewString()
	events := make(chan *core.Packet, h.buffer)
	h.router.OnOpen(connID, events)

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	errCh := make(chan error, 2)
	go func() {
		errCh <- h.readLoop(ctx, conn, connID)
	}()
	go func() {
		errCh <- h.writeLoop(ctx, conn, events)
	}()

	err = <-errCh
	cancel() // stop the other goroutine
	<-errCh

	h.finish(conn, connID, err)
}

// finish maps the loop outcome to the matching lifecycle call and closes
// the socket.
func (h *WSHandler) finish(conn *websocket.Conn, connID string, err error) {
	status := websocket.CloseStatus(err)
	normal := err == nil ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, io.EOF) ||
		status == websocket.StatusNormalClosure ||
		status == websocket.StatusGoingAway

	if normal {
		if closeErr := h.router.OnClose(connID); closeErr != nil && !errors.Is(closeErr, core.ErrClientNotFound) {
			h.log.Warn().Err(closeErr).Str("conn_id", connID).Msg("close lifecycle failed")
		}
		conn.Close(websocket.StatusNormalClosure, "closing")
		return
	}

	if errErr := h.router.OnError(connID, err); errErr != nil && !errors.Is(errErr, core.ErrClientNotFound) {
		h.log.Warn().Err(errErr).Str("conn_id", connID).Msg("error lifecycle failed")
	}
	if status <= 0 {
		status = websocket.StatusInternalError
	}
	conn.Close(status, "connection error")
}

func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, connID string) error {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}

		inbound, err := proto.Decode(data)
		if err != nil {
			h.log.Warn().Err(err).Str("conn_id", connID).Msg("rejected malformed inbound")
			if writeErr := wsjson.Write(ctx, conn, errorOutbound(err)); writeErr != nil {
				return writeErr
			}
			continue
		}

		cmd, protoErr := inboundToCommand(inbound)
		if protoErr != nil {
			if writeErr := wsjson.Write(ctx, conn, proto.Outbound{
				Type:  proto.TypeError,
				Error: protoErr,
			}); writeErr != nil {
				return writeErr
			}
			continue
		}

		if err := h.router.OnInbound(connID, cmd); err != nil {
			h.log.Warn().Err(err).Str("conn_id", connID).Str("action", cmd.Action).Msg("inbound rejected")
			if writeErr := wsjson.Write(ctx, conn, errorOutbound(err)); writeErr != nil {
				return writeErr
			}
		}
	}
}

func (h *WSHandler) writeLoop(ctx context.Context, conn *websocket.Conn, events <-chan *core.Packet) error {
	for {
		select {
		case packet, ok := <-events:
			if !ok {
				return nil
			}
			if err := wsjson.Write(ctx, conn, outboundFromPacket(packet)); err != nil {
				h.log.Error().Err(err).Msg("write ws event")
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
