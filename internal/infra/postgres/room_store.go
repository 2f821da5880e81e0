package postgres

import (
	"context"
	"encoding/json"
	"time"

	"roombook/internal/domain/room"
	"roombook/internal/infra"
	"roombook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RoomRepository is the write side of the room registry.
type RoomRepository struct {
	db *pgxpool.Pool
}

func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, entity *room.Room) error {
	amenities, err := json.Marshal(entity.Amenities())
	if err != nil {
		return infra.WrapRepoErr("failed to encode amenities", err)
	}

	query := `
		INSERT INTO rooms (id, name, location, capacity, description, image, amenities)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.db.Exec(ctx, query,
		entity.ID(), entity.Name(), entity.Location(), entity.Capacity(),
		entity.Description(), entity.ImageURL(), amenities)
	if err != nil {
		return wrapQueryErr("failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, entity *room.Room) error {
	amenities, err := json.Marshal(entity.Amenities())
	if err != nil {
		return infra.WrapRepoErr("failed to encode amenities", err)
	}

	query := `
		UPDATE rooms
		SET name = $2, location = $3, capacity = $4, description = $5,
		    image = $6, amenities = $7, updated_at = now()
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		entity.ID(), entity.Name(), entity.Location(), entity.Capacity(),
		entity.Description(), entity.ImageURL(), amenities)
	if err != nil {
		return wrapQueryErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return wrapQueryErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	query := `
		SELECT id, name, location, capacity, description, image, amenities, created_at, updated_at
		FROM rooms
		WHERE id = $1`

	var (
		roomID      uuid.UUID
		name        string
		location    string
		capacity    int
		description string
		imageURL    string
		amenities   []byte
		createdAt   time.Time
		updatedAt   time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&roomID, &name, &location, &capacity, &description, &imageURL,
		&amenities, &createdAt, &updatedAt)
	if err != nil {
		return nil, wrapQueryErr("failed to find room by ID", err)
	}

	list, err := decodeAmenities(amenities)
	if err != nil {
		return nil, err
	}

	return room.ReconstructRoom(roomID, name, location, capacity, description, imageURL, list, createdAt, updatedAt), nil
}

// RoomReadStore is the read side: view rows for listings and lookups.
type RoomReadStore struct {
	db *pgxpool.Pool
}

func NewRoomReadStore(db *pgxpool.Pool) *RoomReadStore {
	return &RoomReadStore{db: db}
}

func (r *RoomReadStore) FindAll(ctx context.Context) ([]*queries.RoomView, error) {
	query := `
		SELECT id, name, location, capacity, description, image, amenities, created_at, updated_at
		FROM rooms
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapQueryErr("failed to list rooms", err)
	}
	defer rows.Close()

	var views []*queries.RoomView
	for rows.Next() {
		view, err := scanRoomView(rows.Scan)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to read room rows", err)
	}
	return views, nil
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	query := `
		SELECT id, name, location, capacity, description, image, amenities, created_at, updated_at
		FROM rooms
		WHERE id = $1`

	view, err := scanRoomView(func(dest ...any) error {
		return r.db.QueryRow(ctx, query, id).Scan(dest...)
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func scanRoomView(scan func(dest ...any) error) (*queries.RoomView, error) {
	var (
		view      queries.RoomView
		amenities []byte
	)
	err := scan(
		&view.ID, &view.Name, &view.Location, &view.Capacity,
		&view.Description, &view.ImageURL, &amenities,
		&view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		return nil, wrapQueryErr("failed to scan room", err)
	}

	list, err := decodeAmenities(amenities)
	if err != nil {
		return nil, err
	}
	view.Amenities = list
	return &view, nil
}

func decodeAmenities(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, infra.WrapRepoErr("failed to decode amenities", err)
	}
	return list, nil
}
