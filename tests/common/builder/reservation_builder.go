//go:build unit || e2e

package builder

import (
	"time"

	"roombook/internal/domain/booking"
	reqdto "roombook/internal/handler/dto/request"
	"roombook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	RoomID       uuid.UUID
	RoomName     string
	RoomLocation string
	OwnerID      uuid.UUID
	Start        time.Time
	End          time.Time
	CreatedAt    time.Time
}

// NewReservationBuilder defaults to a one-hour slot tomorrow at 10:00,
// inside the default business hours.
func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return &ReservationBuilder{
		RoomID:       uuid.New(),
		RoomName:     "Executive Boardroom",
		RoomLocation: "Floor 1",
		OwnerID:      uuid.New(),
		Start:        day.Add(10 * time.Hour),
		End:          day.Add(11 * time.Hour),
		CreatedAt:    now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*booking.Reservation, error) {
	interval, err := booking.NewInterval(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return booking.NewReservation(b.RoomID, b.OwnerID, interval), nil
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomID: b.RoomID,
		Start:  b.Start,
		End:    b.End,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:           uuid.New(),
		RoomID:       b.RoomID,
		RoomName:     b.RoomName,
		RoomLocation: b.RoomLocation,
		OwnerID:      b.OwnerID,
		Start:        b.Start,
		End:          b.End,
		CreatedAt:    b.CreatedAt,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithRoomID(roomID uuid.UUID) *ReservationBuilder {
	b.RoomID = roomID
	return b
}

func (b *ReservationBuilder) WithOwnerID(ownerID uuid.UUID) *ReservationBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *ReservationBuilder) WithSlot(start, end time.Time) *ReservationBuilder {
	b.Start = start
	b.End = end
	return b
}
