package service

import (
	"context"
	"errors"

	"github.com/TSC-Home/svelte-grow-todo/internal/domain"
	"github.com/TSC-Home/svelte-grow-todo/internal/logger"
	"github.com/TSC-Home/svelte-grow-todo/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users     *repository.UserRepository
	snapshots *repository.SnapshotRepository
}

func NewAuthService(db *pgxpool.Pool) *AuthService {
	return &AuthService{
		users:     repository.NewUserRepository(db),
		snapshots: repository.NewSnapshotRepository(db),
	}
}

// SignUp creates the account, seeds the default plant snapshot and
// returns a session token. The snapshot write happens after the user
// row exists; if it fails the account stands and reads fall back to
// defaults.
func (s *AuthService) SignUp(ctx context.Context, email, password, username string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.ErrMissingCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, "", err
	}

	if err := s.snapshots.Create(ctx, u.ID); err != nil {
		logger.Error("failed to create snapshot for new user", "user_id", u.ID, "error", err)
	}

	token, err := GenerateJWT(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.ErrMissingCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
