package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dvmorais/daily-diet-api/internal/models"
	repo "github.com/dvmorais/daily-diet-api/internal/repository"
)

// ErrFoodNotFound is returned when a food does not exist or belongs to a
// different user; the two cases are indistinguishable on purpose.
var ErrFoodNotFound = errors.New("food not found")

type FoodService struct {
	foods repo.Foods
}

func NewFoodService(foods repo.Foods) *FoodService {
	return &FoodService{foods: foods}
}

func (s *FoodService) Create(ctx context.Context, ownerID, name, description string, date time.Time, isItOnDiet bool) error {
	now := time.Now().UTC().Format(time.RFC3339)
	return s.foods.Create(ctx, models.Food{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		Name:        name,
		Description: description,
		Date:        date.UTC().Format(time.RFC3339),
		IsItOnDiet:  isItOnDiet,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *FoodService) List(ctx context.Context, ownerID string) ([]models.Food, error) {
	return s.foods.ListByUser(ctx, ownerID)
}

func (s *FoodService) Get(ctx context.Context, ownerID, foodID string) (models.Food, error) {
	f, err := s.foods.GetByIDForUser(ctx, foodID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Food{}, ErrFoodNotFound
		}
		return models.Food{}, err
	}
	return f, nil
}

// Update checks ownership first, then writes by id alone. The two steps are
// separate statements, not a transaction; a concurrent delete in between is
// an accepted race.
func (s *FoodService) Update(ctx context.Context, ownerID, foodID, name, description string, date time.Time, isItOnDiet bool) error {
	exists, err := s.foods.ExistsForUser(ctx, foodID, ownerID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrFoodNotFound
	}
	return s.foods.Update(ctx, models.Food{
		ID:          foodID,
		Name:        name,
		Description: description,
		Date:        date.UTC().Format(time.RFC3339),
		IsItOnDiet:  isItOnDiet,
		UpdatedAt:   time.Now().UTC().Format(time.RFC3339),
	})
}

// Delete runs the same check-then-write sequence as Update.
func (s *FoodService) Delete(ctx context.Context, ownerID, foodID string) error {
	exists, err := s.foods.ExistsForUser(ctx, foodID, ownerID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrFoodNotFound
	}
	return s.foods.Delete(ctx, foodID)
}

// Metrics issues the three scoped counts and derives the on-diet percentage.
// With no foods logged the percentage has no value and stays nil.
func (s *FoodService) Metrics(ctx context.Context, ownerID string) (models.Metrics, error) {
	var m models.Metrics
	var err error

	if m.TotalFoods, err = s.foods.CountByUser(ctx, ownerID); err != nil {
		return models.Metrics{}, err
	}
	if m.TotalDietFoods, err = s.foods.CountByUserOnDiet(ctx, ownerID, true); err != nil {
		return models.Metrics{}, err
	}
	if m.TotalOutDietFoods, err = s.foods.CountByUserOnDiet(ctx, ownerID, false); err != nil {
		return models.Metrics{}, err
	}

	if m.TotalFoods > 0 {
		pct := float64(m.TotalDietFoods*100) / float64(m.TotalFoods)
		m.FoodsWithinDiet = &pct
	}
	return m, nil
}
