package http

import (
	"errors"
	"testing"

	"github.com/roomcast/roomcast/internal/core"
	"github.com/roomcast/roomcast/internal/proto"
)

func TestInboundToCommandConnectValidation(t *testing.T) {
	if _, protoErr := inboundToCommand(proto.Inbound{Action: "connect", UserName: "alice"}); protoErr == nil || protoErr.Code != errCodeBadRequest {
		t.Fatalf("expected bad_request for missing roomId, got %+v", protoErr)
	}
	if _, protoErr := inboundToCommand(proto.Inbound{Action: "connect", RoomID: "room1"}); protoErr == nil || protoErr.Code != errCodeBadRequest {
		t.Fatalf("expected bad_request for missing userName, got %+v", protoErr)
	}

	cmd, protoErr := inboundToCommand(proto.Inbound{Action: "connect", RoomID: "room1", UserName: "alice"})
	if protoErr != nil {
		t.Fatalf("unexpected error: %+v", protoErr)
	}
	if cmd.Action != core.ActionConnect || cmd.Room != "room1" || cmd.UserName != "alice" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestInboundToCommandMessageValidation(t *testing.T) {
	if _, protoErr := inboundToCommand(proto.Inbound{Action: "message"}); protoErr == nil {
		t.Fatal("expected bad_request for missing message")
	}

	cmd, protoErr := inboundToCommand(proto.Inbound{Action: "message", Message: "hi", Timestamp: 42})
	if protoErr != nil {
		t.Fatalf("unexpected error: %+v", protoErr)
	}
	if cmd.Text != "hi" || cmd.Timestamp != 42 {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestInboundToCommandPassesUnknownActionThrough(t *testing.T) {
	// Unknown and missing actions reach the router untouched so it can
	// classify them.
	cmd, protoErr := inboundToCommand(proto.Inbound{Action: "dance"})
	if protoErr != nil || cmd.Action != "dance" {
		t.Fatalf("unexpected mapping: %+v %+v", cmd, protoErr)
	}
	cmd, protoErr = inboundToCommand(proto.Inbound{})
	if protoErr != nil || cmd.Action != "" {
		t.Fatalf("unexpected mapping: %+v %+v", cmd, protoErr)
	}
}

func TestOutboundFromPacketUserList(t *testing.T) {
	out := outboundFromPacket(&core.Packet{
		Type:      core.PacketUserList,
		Timestamp: 42,
		Clients:   []core.UserRef{{Name: "alice"}, {Name: "bob"}},
	})
	if out.Type != proto.TypeUserList || out.Timestamp != 42 {
		t.Fatalf("unexpected outbound: %+v", out)
	}
	if len(out.Clients) != 2 || out.Clients[0].Name != "alice" || out.Clients[1].Name != "bob" {
		t.Fatalf("unexpected clients: %+v", out.Clients)
	}
}

func TestOutboundFromPacketMessage(t *testing.T) {
	out := outboundFromPacket(&core.Packet{
		Type:      core.PacketMessage,
		Timestamp: 42,
		Message:   "hi",
		From:      &core.UserRef{Name: "alice"},
	})
	if out.Type != proto.TypeMessage || out.Message != "hi" || out.From == nil || out.From.Name != "alice" {
		t.Fatalf("unexpected outbound: %+v", out)
	}
}

func TestErrorOutboundCodes(t *testing.T) {
	out := errorOutbound(core.ErrNotInRoom)
	if out.Type != proto.TypeError || out.Error == nil || out.Error.Code != core.ErrCodeNotInRoom {
		t.Fatalf("unexpected error outbound: %+v", out)
	}

	out = errorOutbound(errors.New("garbled frame"))
	if out.Error == nil || out.Error.Code != errCodeBadRequest {
		t.Fatalf("unexpected fallback code: %+v", out)
	}
}
