package commands

import (
	"context"
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/infra"
	"roombook/internal/pkg/clock"
	"roombook/internal/pkg/errs"
	"roombook/internal/usecase/queries"
	"roombook/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingCommands interface {
	Book(ctx context.Context, actor shared.Actor, roomID uuid.UUID, start, end time.Time) (*queries.ReservationView, error)
	Cancel(ctx context.Context, actor shared.Actor, reservationID uuid.UUID) error
}

type bookingCommandsImpl struct {
	rooms        RoomRepository
	reservations ReservationRepository
	views        queries.ReservationReadStore
	availability *AvailabilityChecker
	locks        *roomLocks
	clock        clock.Clock
	hours        booking.BusinessHours
}

func NewBookingCommands(
	rooms RoomRepository,
	reservations ReservationRepository,
	views queries.ReservationReadStore,
	clock clock.Clock,
	hours booking.BusinessHours,
) BookingCommands {
	return &bookingCommandsImpl{
		rooms:        rooms,
		reservations: reservations,
		views:        views,
		availability: NewAvailabilityChecker(reservations),
		locks:        newRoomLocks(),
		clock:        clock,
		hours:        hours,
	}
}

// Book is the single mutating path for reservations. Checks run in order
// and short-circuit to their sentinel error; the availability check and the
// commit hold the room's lock so no two overlapping bookings for the same
// room can both pass.
func (b *bookingCommandsImpl) Book(
	ctx context.Context,
	actor shared.Actor,
	roomID uuid.UUID,
	start, end time.Time,
) (*queries.ReservationView, error) {
	if _, err := b.rooms.FindByID(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	interval, err := booking.NewInterval(start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInterval)
	}

	if !interval.StartsOnOrAfterDay(b.clock.Now()) {
		return nil, errs.ErrPastDate
	}

	if !interval.WithinBusinessHours(b.hours) {
		return nil, errs.ErrOutsideBusinessHours
	}

	reservation, err := b.commit(ctx, actor, roomID, interval)
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the joined view from the read store.
	view, err := b.views.FindByID(ctx, reservation.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (b *bookingCommandsImpl) commit(
	ctx context.Context,
	actor shared.Actor,
	roomID uuid.UUID,
	interval booking.Interval,
) (*booking.Reservation, error) {
	lock := b.locks.get(roomID)
	lock.Lock()
	defer lock.Unlock()

	free, err := b.availability.IsAvailable(ctx, roomID, interval)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !free {
		return nil, errs.ErrSlotUnavailable
	}

	reservation := booking.NewReservation(roomID, actor.ID, interval)
	if err := b.reservations.Insert(ctx, reservation); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return reservation, nil
}

// Cancel removes a reservation. Only the owner or an admin may cancel;
// there is no hours or date restriction on cancellation.
func (b *bookingCommandsImpl) Cancel(ctx context.Context, actor shared.Actor, reservationID uuid.UUID) error {
	reservation, err := b.reservations.FindByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrReservationNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !reservation.IsOwnedBy(actor.ID) && !actor.IsAdmin() {
		return errs.ErrNotAuthorized
	}

	if err := b.reservations.Remove(ctx, reservationID); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
