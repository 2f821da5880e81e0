package request

import (
	"time"

	"github.com/google/uuid"
)

// CreateReservationRequest carries a finished (start, end) pair. However the
// client produced it (drag-select, form), the engine re-validates it from
// scratch; nothing here is trusted.
type CreateReservationRequest struct {
	RoomID uuid.UUID `json:"room_id" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}
