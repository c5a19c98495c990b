package repository

import (
	"context"

	"github.com/dvmorais/daily-diet-api/internal/models"
)

// Users is the user store. Lookups that find nothing return sql.ErrNoRows
// from the underlying driver; callers map that to their own sentinel.
type Users interface {
	Create(ctx context.Context, u models.User) error
	GetByUsername(ctx context.Context, username string) (models.User, error)
	GetBySessionID(ctx context.Context, sessionID string) (models.User, error)
	SetSessionID(ctx context.Context, userID, sessionID string) error
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// Foods is the food store. Reads and the existence check are always scoped
// by owner; Update and Delete act on id alone and expect the caller to have
// run ExistsForUser first.
type Foods interface {
	Create(ctx context.Context, f models.Food) error
	ListByUser(ctx context.Context, userID string) ([]models.Food, error)
	GetByIDForUser(ctx context.Context, id, userID string) (models.Food, error)
	ExistsForUser(ctx context.Context, id, userID string) (bool, error)
	Update(ctx context.Context, f models.Food) error
	Delete(ctx context.Context, id string) error
	CountByUser(ctx context.Context, userID string) (int, error)
	CountByUserOnDiet(ctx context.Context, userID string, onDiet bool) (int, error)
}
