package shared

import (
	"roombook/internal/domain/user"

	"github.com/google/uuid"
)

// Actor identifies the authenticated requester. The engine never reads
// ambient session state; every command receives the actor explicitly.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

type TokenValidator interface {
	Validate(token string) (uuid.UUID, user.Role, error)
}
