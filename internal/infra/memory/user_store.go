package memory

import (
	"context"
	"sync"

	"roombook/internal/domain/user"
	"roombook/internal/infra"

	"github.com/google/uuid"
)

type UserStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*user.User
	byEmail map[string]*user.User
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[uuid.UUID]*user.User),
		byEmail: make(map[string]*user.User),
	}
}

func (s *UserStore) Create(_ context.Context, entity *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[entity.Email().String()]; ok {
		return infra.WrapRepoErr("user already exists", nil, infra.KindDuplicateKey)
	}
	s.byID[entity.ID()] = entity
	s.byEmail[entity.Email().String()] = entity
	return nil
}

func (s *UserStore) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.byEmail[email.String()]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return entity, nil
}

func (s *UserStore) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return entity, nil
}
