package response

import (
	"time"

	"roombook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	RoomID       uuid.UUID `json:"room_id"`
	RoomName     string    `json:"room_name"`
	RoomLocation string    `json:"room_location"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:           v.ID,
		RoomID:       v.RoomID,
		RoomName:     v.RoomName,
		RoomLocation: v.RoomLocation,
		OwnerID:      v.OwnerID,
		Start:        v.Start,
		End:          v.End,
		CreatedAt:    v.CreatedAt,
	}
}
