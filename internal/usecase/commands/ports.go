package commands

import (
	"context"

	"roombook/internal/domain/booking"
	"roombook/internal/domain/room"
	"roombook/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side ports. Implemented by infra/postgres and infra/memory; the
// concrete backend is a swappable adapter, not part of the contract.

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) error
	Update(ctx context.Context, r *room.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
}

type ReservationRepository interface {
	Insert(ctx context.Context, res *booking.Reservation) error
	Remove(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*booking.Reservation, error)
	HasAnyForRoom(ctx context.Context, roomID uuid.UUID) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}
