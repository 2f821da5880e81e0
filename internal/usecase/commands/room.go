package commands

import (
	"context"

	"roombook/internal/domain/room"
	"roombook/internal/infra"
	"roombook/internal/pkg/errs"
	"roombook/internal/usecase/queries"
	"roombook/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRoomParams struct {
	Name        string
	Location    string
	Capacity    int
	Description string
	ImageURL    string
	Amenities   []string
}

// UpdateRoomParams carries a partial update; nil fields are left untouched.
type UpdateRoomParams struct {
	Name        *string
	Location    *string
	Capacity    *int
	Description *string
	ImageURL    *string
	Amenities   []string
}

type RoomCommands interface {
	Create(ctx context.Context, actor shared.Actor, params CreateRoomParams) (*queries.RoomView, error)
	Update(ctx context.Context, actor shared.Actor, id uuid.UUID, params UpdateRoomParams) error
	Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) error
}

type roomCommandsImpl struct {
	rooms        RoomRepository
	reservations ReservationRepository
	views        queries.RoomReadStore
}

func NewRoomCommands(
	rooms RoomRepository,
	reservations ReservationRepository,
	views queries.RoomReadStore,
) RoomCommands {
	return &roomCommandsImpl{
		rooms:        rooms,
		reservations: reservations,
		views:        views,
	}
}

func (r *roomCommandsImpl) Create(ctx context.Context, actor shared.Actor, params CreateRoomParams) (*queries.RoomView, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrNotAuthorized
	}

	entity, err := room.NewRoom(
		params.Name,
		params.Location,
		params.Capacity,
		params.Description,
		params.ImageURL,
		params.Amenities,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := r.rooms.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := r.views.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (r *roomCommandsImpl) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, params UpdateRoomParams) error {
	if !actor.IsAdmin() {
		return errs.ErrNotAuthorized
	}

	entity, err := r.rooms.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrRoomNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := entity.Update(
		params.Name,
		params.Location,
		params.Capacity,
		params.Description,
		params.ImageURL,
		params.Amenities,
	); err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := r.rooms.Update(ctx, entity); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// Delete rejects rooms that still have reservations: bookings must be
// canceled explicitly first, so none are silently orphaned.
func (r *roomCommandsImpl) Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return errs.ErrNotAuthorized
	}

	if _, err := r.rooms.FindByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrRoomNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	inUse, err := r.reservations.HasAnyForRoom(ctx, id)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if inUse {
		return errs.ErrRoomInUse
	}

	if err := r.rooms.Delete(ctx, id); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
