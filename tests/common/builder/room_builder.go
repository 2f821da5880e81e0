//go:build unit || e2e

package builder

import (
	"time"

	domroom "roombook/internal/domain/room"
	reqdto "roombook/internal/handler/dto/request"
	"roombook/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	Name        string
	Location    string
	Capacity    int
	Description string
	ImageURL    string
	Amenities   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewRoomBuilder() *RoomBuilder {
	now := time.Now()
	return &RoomBuilder{
		Name:        "Executive Boardroom",
		Location:    "Floor 1",
		Capacity:    20,
		Description: "Luxurious Modern Space",
		ImageURL:    "https://example.com/boardroom.jpg",
		Amenities:   []string{"Projector", "Whiteboard"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RoomBuilder) BuildDomain() (*domroom.Room, error) {
	return domroom.NewRoom(b.Name, b.Location, b.Capacity, b.Description, b.ImageURL, b.Amenities)
}

func (b *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		Name:        b.Name,
		Location:    b.Location,
		Capacity:    b.Capacity,
		Description: b.Description,
		ImageURL:    b.ImageURL,
		Amenities:   b.Amenities,
	}
}

func (b *RoomBuilder) BuildUpdateRequestDTO() reqdto.UpdateRoomRequest {
	name := b.Name
	location := b.Location
	capacity := b.Capacity
	description := b.Description
	imageURL := b.ImageURL
	return reqdto.UpdateRoomRequest{
		Name:        &name,
		Location:    &location,
		Capacity:    &capacity,
		Description: &description,
		ImageURL:    &imageURL,
		Amenities:   b.Amenities,
	}
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:          uuid.New(),
		Name:        b.Name,
		Location:    b.Location,
		Capacity:    b.Capacity,
		Description: b.Description,
		ImageURL:    b.ImageURL,
		Amenities:   b.Amenities,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *RoomBuilder) WithName(name string) *RoomBuilder {
	b.Name = name
	return b
}

func (b *RoomBuilder) WithLocation(location string) *RoomBuilder {
	b.Location = location
	return b
}

func (b *RoomBuilder) WithCapacity(capacity int) *RoomBuilder {
	b.Capacity = capacity
	return b
}

func (b *RoomBuilder) WithAmenities(amenities []string) *RoomBuilder {
	b.Amenities = amenities
	return b
}
