package room

import (
	"errors"
	"strings"
	"time"

	"roombook/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("room name must not be empty")
	ErrEmptyLocation   = errors.New("room location must not be empty")
	ErrInvalidCapacity = errors.New("room capacity must be positive")
)

// Room is the bookable unit of inventory. Identity is the id, assigned at
// creation and never reused. All mutation goes through Update.
type Room struct {
	id          uuid.UUID
	name        string
	location    string
	capacity    int
	description string
	imageURL    string
	amenities   []string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRoom(name, location string, capacity int, description, imageURL string, amenities []string) (*Room, error) {
	r := &Room{
		id:          uuid.New(),
		name:        strings.TrimSpace(name),
		location:    strings.TrimSpace(location),
		capacity:    capacity,
		description: description,
		imageURL:    imageURL,
		amenities:   normalizeAmenities(amenities),
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructRoom(
	id uuid.UUID,
	name, location string,
	capacity int,
	description, imageURL string,
	amenities []string,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:          id,
		name:        name,
		location:    location,
		capacity:    capacity,
		description: description,
		imageURL:    imageURL,
		amenities:   amenities,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Update applies a partial update. Nil fields keep their current value.
func (r *Room) Update(name, location *string, capacity *int, description, imageURL *string, amenities []string) error {
	next := *r
	next.name = strings.TrimSpace(patch.Coalesce(name, r.name))
	next.location = strings.TrimSpace(patch.Coalesce(location, r.location))
	next.capacity = patch.Coalesce(capacity, r.capacity)
	next.description = patch.Coalesce(description, r.description)
	next.imageURL = patch.Coalesce(imageURL, r.imageURL)
	if amenities != nil {
		next.amenities = normalizeAmenities(amenities)
	}
	if err := next.validate(); err != nil {
		return err
	}
	*r = next
	return nil
}

func (r *Room) validate() error {
	if r.name == "" {
		return ErrEmptyName
	}
	if r.location == "" {
		return ErrEmptyLocation
	}
	if r.capacity <= 0 {
		return ErrInvalidCapacity
	}
	return nil
}

// normalizeAmenities keeps order, drops blanks.
func normalizeAmenities(in []string) []string {
	out := make([]string, 0, len(in))
	for _, a := range in {
		a = strings.TrimSpace(a)
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

func (r *Room) ID() uuid.UUID       { return r.id }
func (r *Room) Name() string        { return r.name }
func (r *Room) Location() string    { return r.location }
func (r *Room) Capacity() int       { return r.capacity }
func (r *Room) Description() string { return r.description }
func (r *Room) ImageURL() string    { return r.imageURL }
func (r *Room) Amenities() []string { return r.amenities }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
