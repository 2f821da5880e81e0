package postgres

import (
	"context"
	"time"

	"roombook/internal/domain/user"
	"roombook/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, entity *user.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query,
		entity.ID(), entity.Email().String(), entity.PasswordHash(),
		entity.Role().String(), entity.IsActive())
	if err != nil {
		return wrapQueryErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	query := `
		SELECT id, email, password_hash, role, is_active, created_at, updated_at
		FROM users
		WHERE email = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, email.String()))
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `
		SELECT id, email, password_hash, role, is_active, created_at, updated_at
		FROM users
		WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *UserRepository) scanUser(row rowScanner) (*user.User, error) {
	var (
		id           uuid.UUID
		email        string
		passwordHash string
		role         string
		isActive     bool
		createdAt    time.Time
		updatedAt    time.Time
	)
	if err := row.Scan(&id, &email, &passwordHash, &role, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, wrapQueryErr("failed to find user", err)
	}

	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user has invalid email", err)
	}
	roleVO, err := user.NewRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user has invalid role", err)
	}

	return user.ReconstructUser(id, emailVO, passwordHash, roleVO, isActive, createdAt, updatedAt), nil
}
