//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"roombook/internal/domain/user"
	"roombook/internal/infra/memory"
	"roombook/internal/pkg/errs"
	"roombook/internal/pkg/jwt"
	"roombook/internal/pkg/password"
	"roombook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	users      *memory.UserStore
	jwtService *jwt.Service
	commands   commands.AuthCommands
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.users = memory.NewUserStore()
	s.jwtService = jwt.NewService("test-secret", time.Hour)
	s.commands = commands.NewAuthCommands(s.users, s.jwtService)
}

func (s *AuthCommandsTestSuite) addUser(email, plain string, role user.Role, active bool) *user.User {
	emailVO, err := user.NewEmail(email)
	s.Require().NoError(err)
	hash, err := password.Hash(plain)
	s.Require().NoError(err)

	entity := user.NewUser(emailVO, hash, role)
	if !active {
		entity = user.ReconstructUser(entity.ID(), emailVO, hash, role, false, time.Now(), time.Now())
	}
	s.Require().NoError(s.users.Create(context.Background(), entity))
	return entity
}

func (s *AuthCommandsTestSuite) credentials(email, plain string) user.Credentials {
	creds, err := user.NewCredentials(email, plain)
	s.Require().NoError(err)
	return creds
}

func (s *AuthCommandsTestSuite) TestLogin() {
	ctx := context.Background()

	s.Run("valid credentials return a working token", func() {
		entity := s.addUser("alice@example.com", "password123", user.RoleMember, true)

		result, err := s.commands.Login(ctx, s.credentials("alice@example.com", "password123"))
		s.Require().NoError(err)
		s.Equal(entity.ID(), result.User.ID)
		s.Equal("member", result.User.Role)

		id, role, err := s.jwtService.Validate(result.AccessToken)
		s.Require().NoError(err)
		s.Equal(entity.ID(), id)
		s.Equal(user.RoleMember, role)
	})

	s.Run("wrong password", func() {
		s.addUser("bob@example.com", "password123", user.RoleMember, true)

		_, err := s.commands.Login(ctx, s.credentials("bob@example.com", "wrong-password"))
		s.Require().ErrorIs(err, errs.ErrInvalidCredentials)
	})

	s.Run("unknown email maps to the same error as a wrong password", func() {
		_, err := s.commands.Login(ctx, s.credentials("nobody@example.com", "password123"))
		s.Require().ErrorIs(err, errs.ErrInvalidCredentials)
	})

	s.Run("inactive account", func() {
		s.addUser("gone@example.com", "password123", user.RoleMember, false)

		_, err := s.commands.Login(ctx, s.credentials("gone@example.com", "password123"))
		s.Require().ErrorIs(err, errs.ErrUserInactive)
	})
}

func (s *AuthCommandsTestSuite) TestCurrentUser() {
	ctx := context.Background()

	s.Run("returns the profile", func() {
		entity := s.addUser("carol@example.com", "password123", user.RoleAdmin, true)

		view, err := s.commands.CurrentUser(ctx, entity.ID())
		s.Require().NoError(err)
		s.Equal("carol@example.com", view.Email)
		s.Equal("admin", view.Role)
		s.True(view.IsActive)
	})

	s.Run("unknown id", func() {
		_, err := s.commands.CurrentUser(ctx, uuid.New())
		s.Require().ErrorIs(err, errs.ErrUserNotFound)
	})
}
