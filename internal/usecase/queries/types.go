package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type RoomView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Amenities   []string  `json:"amenities"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReservationView joins room display fields the way the calendar and
// my-bookings pages consume them.
type ReservationView struct {
	ID           uuid.UUID `json:"id"`
	RoomID       uuid.UUID `json:"room_id"`
	RoomName     string    `json:"room_name"`
	RoomLocation string    `json:"room_location"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	CreatedAt    time.Time `json:"created_at"`
}

type UserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// ReservationFilter narrows listings; nil fields match everything.
type ReservationFilter struct {
	RoomID  *uuid.UUID
	OwnerID *uuid.UUID
}
