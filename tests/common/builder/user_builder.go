//go:build unit || e2e

package builder

import (
	domuser "roombook/internal/domain/user"
	reqdto "roombook/internal/handler/dto/request"
	"roombook/internal/pkg/password"
	"roombook/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email    string
	Password string
	Role     domuser.Role
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:    "member@example.com",
		Password: "password123",
		Role:     domuser.RoleMember,
		IsActive: true,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	email, err := domuser.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	hash, err := password.Hash(b.Password)
	if err != nil {
		return nil, err
	}
	return domuser.NewUser(email, hash, b.Role), nil
}

func (b *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:       uuid.New(),
		Email:    b.Email,
		Role:     b.Role.String(),
		IsActive: b.IsActive,
	}
}

// Fluent builder methods
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithPassword(pw string) *UserBuilder {
	b.Password = pw
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.Role = domuser.RoleAdmin
	return b
}

func (b *UserBuilder) AsInactive() *UserBuilder {
	b.IsActive = false
	return b
}
