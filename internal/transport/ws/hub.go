package ws

import (
	"context"
	"log/slog"
	"sync"

	"github.com/MouhibAssas/HotelRoomsManagement/internal/service"
)

type Conn interface {
	Send(msg Message) error
	Close() error
	ID() string
}

// Hub держит подписчиков ленты изменений.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]Conn // conn id -> conn
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string]Conn)}
}

func (h *Hub) Add(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c.ID()] = c
}

func (h *Hub) Remove(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, c.ID())
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

func (h *Hub) Broadcast(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, c := range h.conns {
		if err := c.Send(msg); err != nil {
			// best-effort, соединение уберёт его readLoop
			slog.Debug("ws broadcast failed", "conn", id, "type", msg.Type, "err", err)
		}
	}
}

// Publish реализует service.Notifier.
func (h *Hub) Publish(ctx context.Context, ev service.Event) {
	msg, ok := messageFromEvent(ev)
	if !ok {
		slog.WarnContext(ctx, "ws: unknown event", "type", ev.Type)
		return
	}
	h.Broadcast(msg)
}
