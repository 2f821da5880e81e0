package commands

import (
	"sync"

	"github.com/google/uuid"
)

// roomLocks hands out one mutex per room so that availability check and
// commit run as a unit for that room, while bookings for different rooms
// proceed concurrently. Locks are never released back; room counts stay
// small enough that this does not matter.
type roomLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newRoomLocks() *roomLocks {
	return &roomLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (l *roomLocks) get(roomID uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[roomID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[roomID] = m
	}
	return m
}
