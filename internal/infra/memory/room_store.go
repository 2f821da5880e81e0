package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"roombook/internal/domain/room"
	"roombook/internal/infra"
	"roombook/internal/usecase/queries"

	"github.com/google/uuid"
)

// RoomStore is the in-memory room registry. It serves both the write port
// and the read store; iteration follows insertion order.
type RoomStore struct {
	mu    sync.RWMutex
	rooms map[uuid.UUID]*room.Room
	order []uuid.UUID
}

func NewRoomStore() *RoomStore {
	return &RoomStore{rooms: make(map[uuid.UUID]*room.Room)}
}

func (s *RoomStore) Create(_ context.Context, entity *room.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[entity.ID()]; ok {
		return infra.WrapRepoErr("room already exists", nil, infra.KindDuplicateKey)
	}
	s.rooms[entity.ID()] = withTimestamps(entity, time.Now())
	s.order = append(s.order, entity.ID())
	return nil
}

func (s *RoomStore) Update(_ context.Context, entity *room.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.rooms[entity.ID()]
	if !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	s.rooms[entity.ID()] = room.ReconstructRoom(
		entity.ID(), entity.Name(), entity.Location(), entity.Capacity(),
		entity.Description(), entity.ImageURL(), slices.Clone(entity.Amenities()),
		existing.CreatedAt(), time.Now(),
	)
	return nil
}

func (s *RoomStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[id]; !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	delete(s.rooms, id)
	s.order = slices.DeleteFunc(s.order, func(o uuid.UUID) bool { return o == id })
	return nil
}

func (s *RoomStore) FindByID(_ context.Context, id uuid.UUID) (*room.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return entity, nil
}

func (s *RoomStore) FindAll(_ context.Context) ([]*queries.RoomView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]*queries.RoomView, 0, len(s.order))
	for _, id := range s.order {
		views = append(views, toRoomView(s.rooms[id]))
	}
	return views, nil
}

func (s *RoomStore) FindView(_ context.Context, id uuid.UUID) (*queries.RoomView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return toRoomView(entity), nil
}

// RoomReadStore adapts RoomStore to the read-side port, which returns views
// rather than entities.
type RoomReadStore struct {
	store *RoomStore
}

func NewRoomReadStore(store *RoomStore) *RoomReadStore {
	return &RoomReadStore{store: store}
}

func (r *RoomReadStore) FindAll(ctx context.Context) ([]*queries.RoomView, error) {
	return r.store.FindAll(ctx)
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	return r.store.FindView(ctx, id)
}

// displayInfo is used by the reservation store to join room fields into views.
func (s *RoomStore) displayInfo(id uuid.UUID) (name, location string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, found := s.rooms[id]
	if !found {
		return "", "", false
	}
	return entity.Name(), entity.Location(), true
}

func withTimestamps(entity *room.Room, now time.Time) *room.Room {
	return room.ReconstructRoom(
		entity.ID(), entity.Name(), entity.Location(), entity.Capacity(),
		entity.Description(), entity.ImageURL(), slices.Clone(entity.Amenities()),
		now, now,
	)
}

func toRoomView(entity *room.Room) *queries.RoomView {
	return &queries.RoomView{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Location:    entity.Location(),
		Capacity:    entity.Capacity(),
		Description: entity.Description(),
		ImageURL:    entity.ImageURL(),
		Amenities:   slices.Clone(entity.Amenities()),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}
