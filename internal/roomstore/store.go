package roomstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/MouhibAssas/HotelRoomsManagement/internal/domain"
	"github.com/MouhibAssas/HotelRoomsManagement/internal/storage"
)

// DefaultKey — ключ слота, под которым лежит вся коллекция.
const DefaultKey = "hotelRooms"

// Source — откуда пришли данные при чтении.
type Source string

const (
	SourceStorage  Source = "storage"
	SourceRemote   Source = "remote"
	SourceDefaults Source = "defaults"
)

// Fetcher — удалённый источник номеров (второй уровень fallback).
type Fetcher interface {
	FetchRooms(ctx context.Context) ([]domain.Room, error)
}

// Store владеет коллекцией номеров. Каждая мутация перечитывает коллекцию
// целиком, меняет её в памяти и перезаписывает слот целиком.
// Внутри процесса мутации сериализуются; между процессами побеждает
// последний писатель.
type Store struct {
	kv      storage.KV
	fetcher Fetcher
	key     string
	ids     *IDSource

	mu sync.Mutex
}

type Option func(*Store)

func WithKey(key string) Option {
	return func(s *Store) {
		if strings.TrimSpace(key) != "" {
			s.key = key
		}
	}
}

func WithFetcher(f Fetcher) Option {
	return func(s *Store) { s.fetcher = f }
}

func WithIDSource(ids *IDSource) Option {
	return func(s *Store) {
		if ids != nil {
			s.ids = ids
		}
	}
}

func New(kv storage.KV, opts ...Option) *Store {
	s := &Store{
		kv:  kv,
		key: DefaultKey,
		ids: NewIDSource(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Key() string { return s.key }

// Defaults — см. пакетную Defaults.
func (s *Store) Defaults() []domain.Room { return Defaults() }

// List возвращает коллекцию: слот -> удалённый /api/rooms -> Defaults.
// Ошибки не возвращаются, только логируются.
func (s *Store) List(ctx context.Context) ([]domain.Room, Source) {
	if rooms, ok := s.readSlot(ctx); ok {
		return rooms, SourceStorage
	}

	if s.fetcher != nil {
		rooms, err := s.fetcher.FetchRooms(ctx)
		if err == nil {
			return rooms, SourceRemote
		}
		slog.WarnContext(ctx, "roomstore.List: remote fetch failed, using defaults", slog.Any("err", err))
	}

	return Defaults(), SourceDefaults
}

// Save сериализует коллекцию и перезаписывает слот. Без повторов.
func (s *Store) Save(ctx context.Context, rooms []domain.Room) error {
	if rooms == nil {
		rooms = []domain.Room{}
	}
	data, err := json.Marshal(rooms)
	if err != nil {
		slog.ErrorContext(ctx, "roomstore.Save: marshal", slog.Any("err", err))
		return fmt.Errorf("marshal rooms: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		slog.ErrorContext(ctx, "roomstore.Save:", slog.String("key", s.key), slog.Any("err", err))
		return fmt.Errorf("save rooms: %w", err)
	}
	return nil
}

// Add назначает id, заполняет дефолты, дописывает номер в конец и сохраняет.
func (s *Store) Add(ctx context.Context, in domain.RoomInput) (domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rooms, _ := s.List(ctx)
	room := in.ToRoom(s.ids.Next(maxID(rooms)))
	rooms = append(rooms, room)

	if err := s.Save(ctx, rooms); err != nil {
		return domain.Room{}, err
	}
	return room.Clone(), nil
}

// Update накладывает patch на номер с данным id. Если номера нет —
// ErrRoomNotFound и слот не трогается.
func (s *Store) Update(ctx context.Context, id int64, patch domain.RoomPatch) (domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rooms, _ := s.List(ctx)
	idx := indexOf(rooms, id)
	if idx < 0 {
		return domain.Room{}, domain.ErrRoomNotFound
	}
	rooms[idx] = patch.Apply(rooms[idx])

	if err := s.Save(ctx, rooms); err != nil {
		return domain.Room{}, err
	}
	return rooms[idx].Clone(), nil
}

// Delete удаляет номер и сохраняет отфильтрованную коллекцию.
// err == nil означает, что запись прошла; removed — нашёлся ли номер.
func (s *Store) Delete(ctx context.Context, id int64) (removed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rooms, _ := s.List(ctx)
	kept := make([]domain.Room, 0, len(rooms))
	for _, r := range rooms {
		if r.ID == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}

	if err := s.Save(ctx, kept); err != nil {
		return false, err
	}
	return removed, nil
}

// Initialize при первом запуске засевает слот: если там уже есть данные —
// возвращает их, иначе берёт коллекцию по цепочке List и сразу сохраняет.
func (s *Store) Initialize(ctx context.Context) []domain.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rooms, ok := s.readSlot(ctx); ok {
		return rooms
	}

	rooms, src := s.List(ctx)
	if err := s.Save(ctx, rooms); err != nil {
		slog.WarnContext(ctx, "roomstore.Initialize: seed not persisted", slog.String("source", string(src)), slog.Any("err", err))
	} else {
		slog.InfoContext(ctx, "roomstore seeded", slog.String("source", string(src)), slog.Int("rooms", len(rooms)))
	}
	return rooms
}

// readSlot читает и разбирает слот. Пустой, повреждённый или недоступный
// слот — это false, а не ошибка.
func (s *Store) readSlot(ctx context.Context) ([]domain.Room, bool) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slog.WarnContext(ctx, "roomstore: storage read failed", slog.String("key", s.key), slog.Any("err", err))
		}
		return nil, false
	}
	if strings.TrimSpace(raw) == "" {
		return nil, false
	}

	var rooms []domain.Room
	if err := json.Unmarshal([]byte(raw), &rooms); err != nil {
		slog.WarnContext(ctx, "roomstore: stored data is corrupt", slog.String("key", s.key), slog.Any("err", err))
		return nil, false
	}
	if rooms == nil {
		// "null" в слоте
		return nil, false
	}
	return rooms, true
}

func indexOf(rooms []domain.Room, id int64) int {
	for i := range rooms {
		if rooms[i].ID == id {
			return i
		}
	}
	return -1
}

func maxID(rooms []domain.Room) int64 {
	var m int64
	for _, r := range rooms {
		if r.ID > m {
			m = r.ID
		}
	}
	return m
}
