package commands

import (
	"context"

	"roombook/internal/domain/booking"

	"github.com/google/uuid"
)

// AvailabilityChecker answers the free/occupied question for a candidate
// interval by scanning the room's committed reservations. It is pure with
// respect to overlap: a room unknown to the store is simply available, and
// room existence is the booking transaction's concern.
type AvailabilityChecker struct {
	reservations ReservationRepository
}

func NewAvailabilityChecker(reservations ReservationRepository) *AvailabilityChecker {
	return &AvailabilityChecker{reservations: reservations}
}

func (a *AvailabilityChecker) IsAvailable(ctx context.Context, roomID uuid.UUID, interval booking.Interval) (bool, error) {
	existing, err := a.reservations.ListByRoom(ctx, roomID)
	if err != nil {
		return false, err
	}
	for _, res := range existing {
		if res.Interval().Overlaps(interval) {
			return false, nil
		}
	}
	return true, nil
}
