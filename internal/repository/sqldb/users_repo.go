package sqldb

import (
	"context"
	"database/sql"

	"github.com/dvmorais/daily-diet-api/internal/models"
	"github.com/dvmorais/daily-diet-api/internal/repository"
)

type usersRepo struct{ db *sql.DB }

func NewUsers(db *sql.DB) repository.Users {
	return &usersRepo{db: db}
}

const userColumns = `id, name, email, username, password, session_id, created_at`

func (r *usersRepo) Create(ctx context.Context, u models.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users(id, name, email, username, password, created_at) VALUES($1,$2,$3,$4,$5,$6)`,
		u.ID, u.Name, u.Email, u.Username, u.Password, u.CreatedAt,
	)
	return err
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username=$1`, username))
}

func (r *usersRepo) GetBySessionID(ctx context.Context, sessionID string) (models.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE session_id=$1`, sessionID))
}

func (r *usersRepo) SetSessionID(ctx context.Context, userID, sessionID string) error {
	// placeholders stay in appearance order: sqlite numbers $-parameters by
	// first occurrence, not by their digits
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET session_id=$1 WHERE id=$2`, sessionID, userID)
	return err
}

func (r *usersRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email=$1)`, email).Scan(&exists)
	return exists, err
}

func (r *usersRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username=$1)`, username).Scan(&exists)
	return exists, err
}

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	var sessionID sql.NullString
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Username, &u.Password, &sessionID, &u.CreatedAt)
	u.SessionID = sessionID.String
	return u, err
}
