//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/infra/memory"
	"roombook/internal/pkg/clock"
	"roombook/internal/pkg/errs"
	"roombook/internal/usecase/commands"
	"roombook/internal/usecase/queries"
	"roombook/internal/usecase/shared"
	"roombook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	rooms        *memory.RoomStore
	reservations *memory.ReservationStore
	views        *memory.ReservationReadStore
	clock        *clock.MockClock
	commands     commands.BookingCommands

	roomID uuid.UUID
	member shared.Actor
	other  shared.Actor
	admin  shared.Actor
	now    time.Time
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.rooms = memory.NewRoomStore()
	s.reservations = memory.NewReservationStore(s.rooms)
	s.views = memory.NewReservationReadStore(s.reservations)

	// Monday 2026-09-14 08:00 UTC
	s.now = time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)

	hours, err := booking.NewBusinessHours(9, 17)
	s.Require().NoError(err)

	s.commands = commands.NewBookingCommands(s.rooms, s.reservations, s.views, s.clock, hours)

	entity, err := builder.NewRoomBuilder().BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(s.rooms.Create(context.Background(), entity))
	s.roomID = entity.ID()

	s.member = shared.Actor{ID: uuid.New(), Role: "member"}
	s.other = shared.Actor{ID: uuid.New(), Role: "member"}
	s.admin = shared.Actor{ID: uuid.New(), Role: "admin"}
}

func (s *BookingCommandsTestSuite) slot(dayOffset, hour, minutes int) (time.Time, time.Time) {
	start := time.Date(2026, 9, 14+dayOffset, hour, 0, 0, 0, time.UTC)
	return start, start.Add(time.Duration(minutes) * time.Minute)
}

func (s *BookingCommandsTestSuite) TestBook() {
	ctx := context.Background()

	s.Run("books a free slot and returns the joined view", func() {
		start, end := s.slot(1, 10, 60)
		view, err := s.commands.Book(ctx, s.member, s.roomID, start, end)
		s.Require().NoError(err)
		s.Equal(s.roomID, view.RoomID)
		s.Equal("Executive Boardroom", view.RoomName)
		s.Equal("Floor 1", view.RoomLocation)
		s.Equal(s.member.ID, view.OwnerID)
		s.Equal(start, view.Start)
		s.Equal(end, view.End)
		s.False(view.CreatedAt.IsZero())
	})

	s.Run("unknown room", func() {
		start, end := s.slot(1, 10, 60)
		_, err := s.commands.Book(ctx, s.member, uuid.New(), start, end)
		s.Require().ErrorIs(err, errs.ErrRoomNotFound)
	})

	s.Run("start not before end", func() {
		start, _ := s.slot(1, 10, 60)
		_, err := s.commands.Book(ctx, s.member, s.roomID, start, start)
		s.Require().ErrorIs(err, errs.ErrInvalidInterval)
	})

	s.Run("past date", func() {
		start, end := s.slot(-1, 10, 60)
		_, err := s.commands.Book(ctx, s.member, s.roomID, start, end)
		s.Require().ErrorIs(err, errs.ErrPastDate)
	})

	s.Run("a valid slot becomes past once the day rolls over", func() {
		start, end := s.slot(0, 15, 60)
		s.clock.Advance(24 * time.Hour)
		_, err := s.commands.Book(ctx, s.member, s.roomID, start, end)
		s.Require().ErrorIs(err, errs.ErrPastDate)
		s.clock.Set(s.now)
	})

	s.Run("later today is allowed even if earlier than now", func() {
		// Clock says 14:00; a 9:00 slot today still books.
		s.clock.Set(time.Date(2026, 9, 14, 14, 0, 0, 0, time.UTC))
		start, end := s.slot(0, 9, 60)
		_, err := s.commands.Book(ctx, s.member, s.roomID, start, end)
		s.Require().NoError(err)
		s.clock.Set(s.now)
	})

	s.Run("outside business hours", func() {
		start, end := s.slot(2, 7, 60)
		_, err := s.commands.Book(ctx, s.member, s.roomID, start, end)
		s.Require().ErrorIs(err, errs.ErrOutsideBusinessHours)

		// Starts inside, spills past close.
		start = time.Date(2026, 9, 16, 16, 30, 0, 0, time.UTC)
		_, err = s.commands.Book(ctx, s.member, s.roomID, start, start.Add(time.Hour))
		s.Require().ErrorIs(err, errs.ErrOutsideBusinessHours)
	})

	s.Run("overlapping slot is rejected", func() {
		start, end := s.slot(3, 10, 120)
		_, err := s.commands.Book(ctx, s.member, s.roomID, start, end)
		s.Require().NoError(err)

		// Same slot, different user.
		_, err = s.commands.Book(ctx, s.other, s.roomID, start, end)
		s.Require().ErrorIs(err, errs.ErrSlotUnavailable)

		// Partial overlap.
		_, err = s.commands.Book(ctx, s.other, s.roomID, start.Add(time.Hour), end.Add(time.Hour))
		s.Require().ErrorIs(err, errs.ErrSlotUnavailable)
	})

	s.Run("back to back bookings both succeed", func() {
		start, end := s.slot(4, 10, 60)
		_, err := s.commands.Book(ctx, s.member, s.roomID, start, end)
		s.Require().NoError(err)

		_, err = s.commands.Book(ctx, s.other, s.roomID, end, end.Add(time.Hour))
		s.Require().NoError(err)
	})

	s.Run("same slot in another room succeeds", func() {
		otherRoom, err := builder.NewRoomBuilder().WithName("Creative Space").BuildDomain()
		s.Require().NoError(err)
		s.Require().NoError(s.rooms.Create(ctx, otherRoom))

		start, end := s.slot(5, 10, 60)
		_, err = s.commands.Book(ctx, s.member, s.roomID, start, end)
		s.Require().NoError(err)
		_, err = s.commands.Book(ctx, s.other, otherRoom.ID(), start, end)
		s.Require().NoError(err)
	})
}

func (s *BookingCommandsTestSuite) TestCancel() {
	ctx := context.Background()

	book := func() *queries.ReservationView {
		start, end := s.slot(1, 10, 60)
		view, err := s.commands.Book(ctx, s.member, s.roomID, start, end)
		s.Require().NoError(err)
		return view
	}

	s.Run("owner can cancel and the slot opens up", func() {
		view := book()
		s.Require().NoError(s.commands.Cancel(ctx, s.member, view.ID))

		// Rebooking the same slot now succeeds.
		_, err := s.commands.Book(ctx, s.other, s.roomID, view.Start, view.End)
		s.Require().NoError(err)
	})

	s.Run("admin can cancel anyone's reservation", func() {
		view := book()
		s.Require().NoError(s.commands.Cancel(ctx, s.admin, view.ID))
	})

	s.Run("another member cannot cancel", func() {
		view := book()
		err := s.commands.Cancel(ctx, s.other, view.ID)
		s.Require().ErrorIs(err, errs.ErrNotAuthorized)

		// Still booked.
		_, err = s.views.FindByID(ctx, view.ID)
		s.Require().NoError(err)
		s.Require().NoError(s.commands.Cancel(ctx, s.member, view.ID))
	})

	s.Run("unknown reservation", func() {
		err := s.commands.Cancel(ctx, s.member, uuid.New())
		s.Require().ErrorIs(err, errs.ErrReservationNotFound)
	})
}

// The double-booking scenario end to end: conflict, cancel, rebook.
func (s *BookingCommandsTestSuite) TestConflictCancelRebook() {
	ctx := context.Background()
	start, end := s.slot(1, 13, 90)

	first, err := s.commands.Book(ctx, s.member, s.roomID, start, end)
	s.Require().NoError(err)

	_, err = s.commands.Book(ctx, s.other, s.roomID, start, end)
	s.Require().ErrorIs(err, errs.ErrSlotUnavailable)

	s.Require().NoError(s.commands.Cancel(ctx, s.member, first.ID))

	second, err := s.commands.Book(ctx, s.other, s.roomID, start, end)
	s.Require().NoError(err)
	s.Equal(s.other.ID, second.OwnerID)
}

// Concurrent requests for the same slot: exactly one wins.
func (s *BookingCommandsTestSuite) TestConcurrentBookingSingleWinner() {
	ctx := context.Background()
	start, end := s.slot(1, 11, 60)

	const attempts = 16
	errCh := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			actor := shared.Actor{ID: uuid.New(), Role: "member"}
			_, err := s.commands.Book(ctx, actor, s.roomID, start, end)
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	var wins, conflicts int
	for err := range errCh {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, errs.ErrSlotUnavailable):
			conflicts++
		default:
			s.FailNowf("unexpected error", "%v", err)
		}
	}
	s.Equal(1, wins)
	s.Equal(attempts-1, conflicts)

	listed, err := s.reservations.ListByRoom(ctx, s.roomID)
	s.Require().NoError(err)
	s.Len(listed, 1)
}
