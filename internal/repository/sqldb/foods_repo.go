package sqldb

import (
	"context"
	"database/sql"

	"github.com/dvmorais/daily-diet-api/internal/models"
	"github.com/dvmorais/daily-diet-api/internal/repository"
)

type foodsRepo struct{ db *sql.DB }

func NewFoods(db *sql.DB) repository.Foods {
	return &foodsRepo{db: db}
}

const foodColumns = `id, user_id, name, description, date, is_it_on_diet, created_at, updated_at`

func (r *foodsRepo) Create(ctx context.Context, f models.Food) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO foods(`+foodColumns+`) VALUES($1,$2,$3,$4,$5,$6,$7,$8)`,
		f.ID, f.UserID, f.Name, f.Description, f.Date, f.IsItOnDiet, f.CreatedAt, f.UpdatedAt,
	)
	return err
}

func (r *foodsRepo) ListByUser(ctx context.Context, userID string) ([]models.Food, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+foodColumns+` FROM foods WHERE user_id=$1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Food{}
	for rows.Next() {
		var f models.Food
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.Description, &f.Date, &f.IsItOnDiet, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *foodsRepo) GetByIDForUser(ctx context.Context, id, userID string) (models.Food, error) {
	var f models.Food
	err := r.db.QueryRowContext(ctx,
		`SELECT `+foodColumns+` FROM foods WHERE id=$1 AND user_id=$2`, id, userID,
	).Scan(&f.ID, &f.UserID, &f.Name, &f.Description, &f.Date, &f.IsItOnDiet, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

func (r *foodsRepo) ExistsForUser(ctx context.Context, id, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM foods WHERE id=$1 AND user_id=$2)`, id, userID).Scan(&exists)
	return exists, err
}

func (r *foodsRepo) Update(ctx context.Context, f models.Food) error {
	// placeholders stay in appearance order; see usersRepo.SetSessionID
	_, err := r.db.ExecContext(ctx,
		`UPDATE foods SET name=$1, description=$2, date=$3, is_it_on_diet=$4, updated_at=$5 WHERE id=$6`,
		f.Name, f.Description, f.Date, f.IsItOnDiet, f.UpdatedAt, f.ID,
	)
	return err
}

func (r *foodsRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM foods WHERE id=$1`, id)
	return err
}

func (r *foodsRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(id) FROM foods WHERE user_id=$1`, userID).Scan(&n)
	return n, err
}

func (r *foodsRepo) CountByUserOnDiet(ctx context.Context, userID string, onDiet bool) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(id) FROM foods WHERE user_id=$1 AND is_it_on_diet=$2`, userID, onDiet).Scan(&n)
	return n, err
}
