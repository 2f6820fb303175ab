package core

import "testing"

// Dispatch is synchronous under the router mutex, so emitted packets are
// already buffered in the event channels when an entry point returns.

func openConn(rt *Router, id string) chan *Packet {
	events := make(chan *Packet, 16)
	rt.OnOpen(id, events)
	return events
}

func connect(t *testing.T, rt *Router, id, room, name string) chan *Packet {
	t.Helper()

	events := openConn(rt, id)
	if err := rt.OnInbound(id, Command{Action: ActionConnect, Room: room, UserName: name}); err != nil {
		t.Fatalf("connect %s: %v", name, err)
	}
	return events
}

func mustPacket(t *testing.T, ch <-chan *Packet, kind PacketType) *Packet {
	t.Helper()

	select {
	case p := <-ch:
		if p.Type != kind {
			t.Fatalf("expected %s packet, got %s", kind, p.Type)
		}
		return p
	default:
		t.Fatalf("expected %s packet, channel empty", kind)
		return nil
	}
}

func mustNoPacket(t *testing.T, ch <-chan *Packet) {
	t.Helper()

	select {
	case p := <-ch:
		t.Fatalf("expected no packet, got %s", p.Type)
	default:
	}
}

func drain(ch <-chan *Packet) []*Packet {
	var packets []*Packet
	for {
		select {
		case p := <-ch:
			packets = append(packets, p)
		default:
			return packets
		}
	}
}
