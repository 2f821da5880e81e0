package postgres

import (
	"context"
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/infra"
	"roombook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReservationRepository is the write side of the reservation store.
type ReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Insert(ctx context.Context, res *booking.Reservation) error {
	query := `
		INSERT INTO reservations (id, room_id, user_id, start_at, end_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query,
		res.ID(), res.RoomID(), res.OwnerID(),
		res.Interval().Start(), res.Interval().End())
	if err != nil {
		return wrapQueryErr("failed to insert reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Remove(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return wrapQueryErr("failed to remove reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error) {
	query := `
		SELECT id, room_id, user_id, start_at, end_at, created_at
		FROM reservations
		WHERE id = $1`

	var (
		resID     uuid.UUID
		roomID    uuid.UUID
		ownerID   uuid.UUID
		startAt   time.Time
		endAt     time.Time
		createdAt time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&resID, &roomID, &ownerID, &startAt, &endAt, &createdAt)
	if err != nil {
		return nil, wrapQueryErr("failed to find reservation by ID", err)
	}

	return reconstructReservation(resID, roomID, ownerID, startAt, endAt, createdAt)
}

func (r *ReservationRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*booking.Reservation, error) {
	query := `
		SELECT id, room_id, user_id, start_at, end_at, created_at
		FROM reservations
		WHERE room_id = $1
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		return nil, wrapQueryErr("failed to list reservations by room", err)
	}
	defer rows.Close()

	var result []*booking.Reservation
	for rows.Next() {
		var (
			resID     uuid.UUID
			rID       uuid.UUID
			ownerID   uuid.UUID
			startAt   time.Time
			endAt     time.Time
			createdAt time.Time
		)
		if err := rows.Scan(&resID, &rID, &ownerID, &startAt, &endAt, &createdAt); err != nil {
			return nil, wrapQueryErr("failed to scan reservation", err)
		}
		res, err := reconstructReservation(resID, rID, ownerID, startAt, endAt, createdAt)
		if err != nil {
			return nil, err
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to read reservation rows", err)
	}
	return result, nil
}

func (r *ReservationRepository) HasAnyForRoom(ctx context.Context, roomID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reservations WHERE room_id = $1)`, roomID).Scan(&exists)
	if err != nil {
		return false, wrapQueryErr("failed to check reservations for room", err)
	}
	return exists, nil
}

func reconstructReservation(id, roomID, ownerID uuid.UUID, startAt, endAt, createdAt time.Time) (*booking.Reservation, error) {
	interval, err := booking.NewInterval(startAt, endAt)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has invalid interval", err)
	}
	return booking.ReconstructReservation(id, roomID, ownerID, interval, createdAt), nil
}

// ReservationReadStore serves the joined views the UI consumes.
type ReservationReadStore struct {
	db *pgxpool.Pool
}

func NewReservationReadStore(db *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

const reservationViewSelect = `
	SELECT r.id, r.room_id, rm.name, rm.location, r.user_id, r.start_at, r.end_at, r.created_at
	FROM reservations r
	JOIN rooms rm ON rm.id = r.room_id`

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var view queries.ReservationView
	err := r.db.QueryRow(ctx, reservationViewSelect+` WHERE r.id = $1`, id).Scan(
		&view.ID, &view.RoomID, &view.RoomName, &view.RoomLocation,
		&view.OwnerID, &view.Start, &view.End, &view.CreatedAt)
	if err != nil {
		return nil, wrapQueryErr("failed to find reservation view by ID", err)
	}
	return &view, nil
}

func (r *ReservationReadStore) Find(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	query := reservationViewSelect + `
	WHERE ($1::uuid IS NULL OR r.room_id = $1)
	  AND ($2::uuid IS NULL OR r.user_id = $2)
	ORDER BY r.created_at, r.id`

	rows, err := r.db.Query(ctx, query, filter.RoomID, filter.OwnerID)
	if err != nil {
		return nil, wrapQueryErr("failed to list reservation views", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		var view queries.ReservationView
		if err := rows.Scan(
			&view.ID, &view.RoomID, &view.RoomName, &view.RoomLocation,
			&view.OwnerID, &view.Start, &view.End, &view.CreatedAt); err != nil {
			return nil, wrapQueryErr("failed to scan reservation view", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to read reservation view rows", err)
	}
	return views, nil
}
