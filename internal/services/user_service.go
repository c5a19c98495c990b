package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dvmorais/daily-diet-api/internal/auth"
	"github.com/dvmorais/daily-diet-api/internal/models"
	repo "github.com/dvmorais/daily-diet-api/internal/repository"
)

// ErrInvalidCredentials covers both an unknown username and a wrong password
// so the login response cannot reveal which one it was.
var ErrInvalidCredentials = errors.New("username or password invalid")

// ErrUnauthenticated means the session cookie resolved to no user.
var ErrUnauthenticated = errors.New("unauthorized")

type UserService struct {
	users repo.Users
}

func NewUserService(users repo.Users) *UserService {
	return &UserService{users: users}
}

// Register hashes the already-validated credentials and inserts the user.
func (s *UserService) Register(ctx context.Context, name, email, username, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	return s.users.Create(ctx, models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Username:  username,
		Password:  hash,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// Login verifies the credentials and rotates the session id. A user has at
// most one live session: logging in from a second client overwrites the
// stored id and the first client's cookie stops resolving.
func (s *UserService) Login(ctx context.Context, username, password string) (models.User, string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, "", ErrInvalidCredentials
		}
		return models.User{}, "", err
	}
	if err := auth.VerifyPassword(password, u.Password); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	sessionID := auth.NewSessionID()
	if err := s.users.SetSessionID(ctx, u.ID, sessionID); err != nil {
		return models.User{}, "", err
	}
	return u, sessionID, nil
}

// Authenticate resolves a session cookie value to its user.
func (s *UserService) Authenticate(ctx context.Context, sessionID string) (models.User, error) {
	u, err := s.users.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUnauthenticated
		}
		return models.User{}, err
	}
	return u, nil
}
