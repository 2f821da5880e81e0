package commands

import (
	"context"

	"roombook/internal/domain/user"
	"roombook/internal/infra"
	"roombook/internal/pkg/errs"
	"roombook/internal/pkg/jwt"
	"roombook/internal/pkg/password"
	"roombook/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResult struct {
	AccessToken string
	User        *queries.UserView
}

type AuthCommands interface {
	Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*queries.UserView, error)
}

type authCommandsImpl struct {
	users      UserRepository
	jwtService *jwt.Service
}

func NewAuthCommands(users UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		users:      users,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error) {
	entity, err := a.users.FindByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !entity.IsActive() {
		return nil, errs.ErrUserInactive
	}

	if err := password.Compare(entity.PasswordHash(), credentials.Password()); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(entity.ID(), entity.Role())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTokenGeneration)
	}

	return &LoginResult{
		AccessToken: token,
		User:        toUserView(entity),
	}, nil
}

func (a *authCommandsImpl) CurrentUser(ctx context.Context, userID uuid.UUID) (*queries.UserView, error) {
	entity, err := a.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !entity.IsActive() {
		return nil, errs.ErrUserInactive
	}

	return toUserView(entity), nil
}

func toUserView(entity *user.User) *queries.UserView {
	return &queries.UserView{
		ID:       entity.ID(),
		Email:    entity.Email().String(),
		Role:     entity.Role().String(),
		IsActive: entity.IsActive(),
	}
}
