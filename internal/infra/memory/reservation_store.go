package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/infra"
	"roombook/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReservationStore is the in-memory reservation store. Iteration follows
// insertion order, matching what the calendar expects for display.
type ReservationStore struct {
	mu           sync.RWMutex
	reservations map[uuid.UUID]*booking.Reservation
	order        []uuid.UUID
	rooms        *RoomStore
}

func NewReservationStore(rooms *RoomStore) *ReservationStore {
	return &ReservationStore{
		reservations: make(map[uuid.UUID]*booking.Reservation),
		rooms:        rooms,
	}
}

func (s *ReservationStore) Insert(_ context.Context, res *booking.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reservations[res.ID()]; ok {
		return infra.WrapRepoErr("reservation already exists", nil, infra.KindDuplicateKey)
	}
	s.reservations[res.ID()] = booking.ReconstructReservation(
		res.ID(), res.RoomID(), res.OwnerID(), res.Interval(), time.Now(),
	)
	s.order = append(s.order, res.ID())
	return nil
}

func (s *ReservationStore) Remove(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reservations[id]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	delete(s.reservations, id)
	s.order = slices.DeleteFunc(s.order, func(o uuid.UUID) bool { return o == id })
	return nil
}

func (s *ReservationStore) FindByID(_ context.Context, id uuid.UUID) (*booking.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res, ok := s.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return res, nil
}

func (s *ReservationStore) ListByRoom(_ context.Context, roomID uuid.UUID) ([]*booking.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*booking.Reservation
	for _, id := range s.order {
		res := s.reservations[id]
		if res.RoomID() == roomID {
			result = append(result, res)
		}
	}
	return result, nil
}

func (s *ReservationStore) HasAnyForRoom(_ context.Context, roomID uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, res := range s.reservations {
		if res.RoomID() == roomID {
			return true, nil
		}
	}
	return false, nil
}

// ReservationReadStore adapts ReservationStore to the read-side port,
// joining room display fields into each view.
type ReservationReadStore struct {
	store *ReservationStore
}

func NewReservationReadStore(store *ReservationStore) *ReservationReadStore {
	return &ReservationReadStore{store: store}
}

func (r *ReservationReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	res, ok := r.store.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return r.toView(res), nil
}

func (r *ReservationReadStore) Find(_ context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var views []*queries.ReservationView
	for _, id := range r.store.order {
		res := r.store.reservations[id]
		if filter.RoomID != nil && res.RoomID() != *filter.RoomID {
			continue
		}
		if filter.OwnerID != nil && res.OwnerID() != *filter.OwnerID {
			continue
		}
		views = append(views, r.toView(res))
	}
	return views, nil
}

func (r *ReservationReadStore) toView(res *booking.Reservation) *queries.ReservationView {
	name, location, _ := r.store.rooms.displayInfo(res.RoomID())
	return &queries.ReservationView{
		ID:           res.ID(),
		RoomID:       res.RoomID(),
		RoomName:     name,
		RoomLocation: location,
		OwnerID:      res.OwnerID(),
		Start:        res.Interval().Start(),
		End:          res.Interval().End(),
		CreatedAt:    res.CreatedAt(),
	}
}
