package booking

import (
	"time"

	"github.com/google/uuid"
)

// Reservation holds a room for its owner over an interval. Created only by
// the booking transaction and removed only by cancellation; an interval or
// room change is modeled as cancel + book, never update-in-place.
type Reservation struct {
	id        uuid.UUID
	roomID    uuid.UUID
	ownerID   uuid.UUID
	interval  Interval
	createdAt time.Time
}

func NewReservation(roomID, ownerID uuid.UUID, interval Interval) *Reservation {
	return &Reservation{
		id:       uuid.New(),
		roomID:   roomID,
		ownerID:  ownerID,
		interval: interval,
	}
}

func ReconstructReservation(
	id, roomID, ownerID uuid.UUID,
	interval Interval,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		roomID:    roomID,
		ownerID:   ownerID,
		interval:  interval,
		createdAt: createdAt,
	}
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.ownerID == userID
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) RoomID() uuid.UUID    { return r.roomID }
func (r *Reservation) OwnerID() uuid.UUID   { return r.ownerID }
func (r *Reservation) Interval() Interval   { return r.interval }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
