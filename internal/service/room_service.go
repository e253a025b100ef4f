package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/MouhibAssas/HotelRoomsManagement/internal/domain"
	"github.com/MouhibAssas/HotelRoomsManagement/internal/roomstore"
)

const (
	maxPageLimit = 100
)

// RoomStore — то, что сервису нужно от хранилища.
type RoomStore interface {
	List(ctx context.Context) ([]domain.Room, roomstore.Source)
	Add(ctx context.Context, in domain.RoomInput) (domain.Room, error)
	Update(ctx context.Context, id int64, patch domain.RoomPatch) (domain.Room, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Initialize(ctx context.Context) []domain.Room
	Defaults() []domain.Room
}

type EventType string

const (
	EventRoomAdded   EventType = "room_added"
	EventRoomUpdated EventType = "room_updated"
	EventRoomDeleted EventType = "room_deleted"
)

// Event — успешная мутация коллекции.
type Event struct {
	Type EventType
	Room *domain.Room
	ID   int64
}

// Notifier получает события после каждой успешной мутации.
type Notifier interface {
	Publish(ctx context.Context, ev Event)
}

type Filter struct {
	Status string // "" или "all" — любой
	Query  string // подстрока roomNumber, без учёта регистра
	Limit  int    // 0 — без пагинации
	Cursor string
}

type Page struct {
	Items      []domain.Room
	NextCursor string
	Source     roomstore.Source
}

type Stats struct {
	Total         int     `json:"total"`
	Available     int     `json:"available"`
	Occupied      int     `json:"occupied"`
	Maintenance   int     `json:"maintenance"`
	Cleaning      int     `json:"cleaning"`
	OccupancyRate float64 `json:"occupancyRate"`
}

type RoomService struct {
	store    RoomStore
	notifier Notifier
}

func NewRoomService(store RoomStore) *RoomService {
	return &RoomService{store: store}
}

// SetNotifier подключает получателя событий. Хаб создаётся после сервиса,
// поэтому не через конструктор.
func (s *RoomService) SetNotifier(n Notifier) {
	s.notifier = n
}

// ListRooms фильтрует коллекцию и режет её на страницы по курсору.
// Порядок — порядок хранилища.
func (s *RoomService) ListRooms(ctx context.Context, f Filter) (Page, error) {
	cur, err := DecodeCursor(f.Cursor)
	if err != nil {
		return Page{}, err
	}

	rooms, src := s.store.List(ctx)
	filtered := filterRooms(rooms, f.Status, f.Query)

	start := 0
	if cur != nil {
		idx := indexOf(filtered, cur.ID)
		if idx < 0 {
			return Page{}, fmt.Errorf("%w: room %d is not in the result", domain.ErrInvalidCursor, cur.ID)
		}
		start = idx + 1
	}

	limit := f.Limit
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items := filtered[start:]
	page := Page{Source: src}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
		next, err := EncodeCursor(Cursor{ID: items[len(items)-1].ID})
		if err != nil {
			return Page{}, err
		}
		page.NextCursor = next
	}
	page.Items = append([]domain.Room{}, items...)
	return page, nil
}

// Snapshot — вся коллекция как есть.
func (s *RoomService) Snapshot(ctx context.Context) ([]domain.Room, roomstore.Source) {
	return s.store.List(ctx)
}

// GetRoom возвращает номер по ID.
func (s *RoomService) GetRoom(ctx context.Context, id int64) (domain.Room, error) {
	rooms, _ := s.store.List(ctx)
	idx := indexOf(rooms, id)
	if idx < 0 {
		return domain.Room{}, domain.ErrRoomNotFound
	}
	return rooms[idx], nil
}

func (s *RoomService) CreateRoom(ctx context.Context, in domain.RoomInput) (domain.Room, error) {
	room, err := s.store.Add(ctx, in)
	if err != nil {
		return domain.Room{}, fmt.Errorf("store.Add: %w", err)
	}
	s.publish(ctx, Event{Type: EventRoomAdded, Room: &room, ID: room.ID})
	return room, nil
}

func (s *RoomService) UpdateRoom(ctx context.Context, id int64, patch domain.RoomPatch) (domain.Room, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return domain.Room{}, domain.ErrInvalidStatus
	}
	room, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return domain.Room{}, fmt.Errorf("store.Update: %w", err)
	}
	s.publish(ctx, Event{Type: EventRoomUpdated, Room: &room, ID: room.ID})
	return room, nil
}

// ChangeStatus — быстрая смена статуса с дашборда.
func (s *RoomService) ChangeStatus(ctx context.Context, id int64, status domain.Status) (domain.Room, error) {
	if !status.Valid() {
		return domain.Room{}, domain.ErrInvalidStatus
	}
	return s.UpdateRoom(ctx, id, domain.RoomPatch{Status: &status})
}

func (s *RoomService) DeleteRoom(ctx context.Context, id int64) error {
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("store.Delete: %w", err)
	}
	if !removed {
		return domain.ErrRoomNotFound
	}
	s.publish(ctx, Event{Type: EventRoomDeleted, ID: id})
	return nil
}

func (s *RoomService) Stats(ctx context.Context) Stats {
	rooms, _ := s.store.List(ctx)
	return ComputeStats(rooms)
}

func (s *RoomService) Initialize(ctx context.Context) []domain.Room {
	return s.store.Initialize(ctx)
}

func (s *RoomService) Defaults() []domain.Room {
	return s.store.Defaults()
}

// ComputeStats считает сводку; доля занятых округляется до десятых.
func ComputeStats(rooms []domain.Room) Stats {
	st := Stats{Total: len(rooms)}
	for _, r := range rooms {
		switch r.Status {
		case domain.StatusAvailable:
			st.Available++
		case domain.StatusOccupied:
			st.Occupied++
		case domain.StatusMaintenance:
			st.Maintenance++
		case domain.StatusCleaning:
			st.Cleaning++
		}
	}
	if st.Total > 0 {
		st.OccupancyRate = math.Round(float64(st.Occupied)/float64(st.Total)*1000) / 10
	}
	return st
}

func (s *RoomService) publish(ctx context.Context, ev Event) {
	if s.notifier != nil {
		s.notifier.Publish(ctx, ev)
	}
}

func filterRooms(rooms []domain.Room, status, query string) []domain.Room {
	status = strings.TrimSpace(status)
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]domain.Room, 0, len(rooms))
	for _, r := range rooms {
		if status != "" && status != "all" && string(r.Status) != status {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(r.RoomNumber), query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func indexOf(rooms []domain.Room, id int64) int {
	for i := range rooms {
		if rooms[i].ID == id {
			return i
		}
	}
	return -1
}
