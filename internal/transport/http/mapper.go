package http

import (
	"github.com/roomcast/roomcast/internal/core"
	"github.com/roomcast/roomcast/internal/proto"
)

const errCodeBadRequest = "bad_request"

// inboundToCommand validates an inbound frame's required fields and maps
// it to a core command. The action value travels verbatim so the router
// can distinguish a missing action from an unrecognized one.
func inboundToCommand(in proto.Inbound) (core.Command, *proto.Error) {
	switch in.Action {
	case core.ActionConnect:
		if in.RoomID == "" {
			return core.Command{}, &proto.Error{Code: errCodeBadRequest, Msg: "roomId is required"}
		}
		if in.UserName == "" {
			return core.Command{}, &proto.Error{Code: errCodeBadRequest, Msg: "userName is required"}
		}
	case core.ActionMessage:
		if in.Message == "" {
			return core.Command{}, &proto.Error{Code: errCodeBadRequest, Msg: "message is required"}
		}
	}

	return core.Command{
		Action:    in.Action,
		Room:      in.RoomID,
		UserName:  in.UserName,
		Text:      in.Message,
		Timestamp: in.Timestamp,
	}, nil
}

func outboundFromPacket(packet *core.Packet) proto.Outbound {
	out := proto.Outbound{
		Type:      string(packet.Type),
		Timestamp: packet.Timestamp,
		Message:   packet.Message,
	}
	if packet.From != nil {
		out.From = &proto.User{Name: packet.From.Name}
	}
	if packet.Type == core.PacketUserList {
		out.Clients = make([]proto.User, 0, len(packet.Clients))
		for _, c := range packet.Clients {
			out.Clients = append(out.Clients, proto.User{Name: c.Name})
		}
	}
	return out
}

// errorOutbound wraps a dispatch error for delivery to the offending
// client.
func errorOutbound(err error) proto.Outbound {
	code := core.ErrorCode(err)
	if code == "" {
		code = errCodeBadRequest
	}
	return proto.Outbound{
		Type:  proto.TypeError,
		Error: &proto.Error{Code: code, Msg: err.Error()},
	}
}
