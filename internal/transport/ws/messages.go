package ws

import (
	"github.com/MouhibAssas/HotelRoomsManagement/internal/domain"
	"github.com/MouhibAssas/HotelRoomsManagement/internal/roomstore"
	"github.com/MouhibAssas/HotelRoomsManagement/internal/service"
)

// Типы событий ленты изменений
const (
	TypeState       = "state"        // снапшот коллекции + сводка
	TypeRoomAdded   = "room_added"   // номер добавлен
	TypeRoomUpdated = "room_updated" // номер изменён
	TypeRoomDeleted = "room_deleted" // номер удалён
	TypeRefresh     = "refresh"      // клиент просит снапшот заново
)

type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

type StatePayload struct {
	Rooms  []domain.Room    `json:"rooms"`
	Stats  service.Stats    `json:"stats"`
	Source roomstore.Source `json:"source"`
}

type RoomPayload struct {
	Room domain.Room `json:"room"`
}

type RoomDeletedPayload struct {
	ID int64 `json:"id"`
}

// messageFromEvent переводит событие сервиса в сообщение ленты.
func messageFromEvent(ev service.Event) (Message, bool) {
	switch ev.Type {
	case service.EventRoomAdded, service.EventRoomUpdated:
		if ev.Room == nil {
			return Message{}, false
		}
		typ := TypeRoomAdded
		if ev.Type == service.EventRoomUpdated {
			typ = TypeRoomUpdated
		}
		return Message{Type: typ, Payload: RoomPayload{Room: *ev.Room}}, true
	case service.EventRoomDeleted:
		return Message{Type: TypeRoomDeleted, Payload: RoomDeletedPayload{ID: ev.ID}}, true
	}
	return Message{}, false
}
