package ws

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MouhibAssas/HotelRoomsManagement/internal/domain"
	"github.com/MouhibAssas/HotelRoomsManagement/internal/roomstore"
	"github.com/MouhibAssas/HotelRoomsManagement/internal/service"
	"github.com/MouhibAssas/HotelRoomsManagement/internal/storage"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	id   string
	mu   sync.Mutex
	msgs []Message
	fail bool
}

func (c *fakeConn) Send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("broken pipe")
	}
	c.msgs = append(c.msgs, msg)
	return nil
}

func (c *fakeConn) Close() error { return nil }
func (c *fakeConn) ID() string   { return c.id }

func (c *fakeConn) received() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.msgs...)
}

func TestHub_BroadcastToAll(t *testing.T) {
	h := NewHub()
	a := &fakeConn{id: "a"}
	b := &fakeConn{id: "b"}
	broken := &fakeConn{id: "x", fail: true}
	h.Add(a)
	h.Add(b)
	h.Add(broken)
	require.Equal(t, 3, h.Len())

	h.Broadcast(Message{Type: TypeRoomDeleted, Payload: RoomDeletedPayload{ID: 1}})
	require.Len(t, a.received(), 1)
	require.Len(t, b.received(), 1)

	h.Remove(b)
	h.Broadcast(Message{Type: TypeRoomDeleted})
	require.Len(t, a.received(), 2)
	require.Len(t, b.received(), 1)
}

func TestHub_PublishMapsEvents(t *testing.T) {
	h := NewHub()
	c := &fakeConn{id: "c"}
	h.Add(c)

	room := domain.Room{ID: 5, RoomNumber: "301"}
	ctx := context.Background()
	h.Publish(ctx, service.Event{Type: service.EventRoomAdded, Room: &room, ID: 5})
	h.Publish(ctx, service.Event{Type: service.EventRoomUpdated, Room: &room, ID: 5})
	h.Publish(ctx, service.Event{Type: service.EventRoomDeleted, ID: 5})
	h.Publish(ctx, service.Event{Type: "bogus"})

	got := c.received()
	require.Len(t, got, 3)
	require.Equal(t, TypeRoomAdded, got[0].Type)
	require.Equal(t, RoomPayload{Room: room}, got[0].Payload)
	require.Equal(t, TypeRoomUpdated, got[1].Type)
	require.Equal(t, TypeRoomDeleted, got[2].Type)
	require.Equal(t, RoomDeletedPayload{ID: 5}, got[2].Payload)
}

type stateMsg struct {
	Type    string       `json:"type"`
	Payload StatePayload `json:"payload"`
}

type roomMsg struct {
	Type    string      `json:"type"`
	Payload RoomPayload `json:"payload"`
}

func TestServer_StateThenEvents(t *testing.T) {
	ctx := context.Background()
	svc := service.NewRoomService(roomstore.New(storage.NewMemoryKV()))
	svc.Initialize(ctx)

	hub := NewHub()
	svc.SetNotifier(hub)
	srv := httptest.NewServer(http.HandlerFunc(NewServer(hub, svc).HandleWS))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var st stateMsg
	require.NoError(t, conn.ReadJSON(&st))
	require.Equal(t, TypeState, st.Type)
	require.Len(t, st.Payload.Rooms, 8)
	require.Equal(t, 8, st.Payload.Stats.Total)
	require.Equal(t, roomstore.SourceStorage, st.Payload.Source)

	created, err := svc.CreateRoom(ctx, domain.RoomInput{RoomNumber: "501", Bedrooms: 1, MaxGuests: 2, ViewType: domain.ViewSea, Status: domain.StatusAvailable})
	require.NoError(t, err)

	var added roomMsg
	require.NoError(t, conn.ReadJSON(&added))
	require.Equal(t, TypeRoomAdded, added.Type)
	require.Equal(t, created.ID, added.Payload.Room.ID)

	require.NoError(t, conn.WriteJSON(Message{Type: TypeRefresh}))
	var again stateMsg
	require.NoError(t, conn.ReadJSON(&again))
	require.Equal(t, TypeState, again.Type)
	require.Len(t, again.Payload.Rooms, 9)
}
