package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dvmorais/daily-diet-api/internal/api/httpx"
	"github.com/dvmorais/daily-diet-api/internal/api/validate"
	"github.com/dvmorais/daily-diet-api/internal/metrics"
	"github.com/dvmorais/daily-diet-api/internal/middleware"
	"github.com/dvmorais/daily-diet-api/internal/models"
	"github.com/dvmorais/daily-diet-api/internal/services"
)

// foodNotFoundMsg keeps the exact body (trailing space included) clients of
// the original API match on.
const foodNotFoundMsg = "Food not found "

type FoodsHandler struct {
	foods *services.FoodService
}

func NewFoodsHandler(foods *services.FoodService) *FoodsHandler {
	return &FoodsHandler{foods: foods}
}

// Create handles POST /foods.
func (h *FoodsHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	in, errs := validate.FoodBody(raw)
	if len(errs) > 0 {
		httpx.WriteValidationErrors(w, errs)
		return
	}

	if err := h.foods.Create(r.Context(), uid, in.Name, in.Description, in.Date, in.IsItOnDiet); err != nil {
		slog.Error("create food", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	metrics.FoodsLogged.Inc()
	w.WriteHeader(http.StatusCreated)
}

type listResponse struct {
	Foods []models.Food `json:"foods"`
}

// List handles GET /foods.
func (h *FoodsHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	foods, err := h.foods.List(r.Context(), uid)
	if err != nil {
		slog.Error("list foods", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, listResponse{Foods: foods})
}

type metricsResponse struct {
	Metrics models.Metrics `json:"metrics"`
}

// Metrics handles GET /foods/metrics.
func (h *FoodsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	m, err := h.foods.Metrics(r.Context(), uid)
	if err != nil {
		slog.Error("food metrics", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, metricsResponse{Metrics: m})
}

type foodResponse struct {
	Food *models.Food `json:"food,omitempty"`
}

// Get handles GET /foods/{foodId}. An unknown or foreign id is still a 200,
// just with no food key, matching the contract.
func (h *FoodsHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	foodID := chi.URLParam(r, "foodId")
	if errs := validate.FoodID(foodID); len(errs) > 0 {
		httpx.WriteValidationErrors(w, errs)
		return
	}

	f, err := h.foods.Get(r.Context(), uid, foodID)
	if err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			httpx.WriteJSON(w, http.StatusOK, foodResponse{})
			return
		}
		slog.Error("get food", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, foodResponse{Food: &f})
}

// Update handles PUT /foods/{foodId}. A miss on the ownership check is a 400,
// not a 404; clients of the original API depend on that.
func (h *FoodsHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	foodID := chi.URLParam(r, "foodId")
	if errs := validate.FoodID(foodID); len(errs) > 0 {
		httpx.WriteValidationErrors(w, errs)
		return
	}

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	in, errs := validate.FoodBody(raw)
	if len(errs) > 0 {
		httpx.WriteValidationErrors(w, errs)
		return
	}

	err := h.foods.Update(r.Context(), uid, foodID, in.Name, in.Description, in.Date, in.IsItOnDiet)
	if err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			httpx.WriteError(w, http.StatusBadRequest, foodNotFoundMsg)
			return
		}
		slog.Error("update food", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /foods/{foodId}.
func (h *FoodsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	foodID := chi.URLParam(r, "foodId")
	if errs := validate.FoodID(foodID); len(errs) > 0 {
		httpx.WriteValidationErrors(w, errs)
		return
	}

	err := h.foods.Delete(r.Context(), uid, foodID)
	if err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			httpx.WriteError(w, http.StatusBadRequest, foodNotFoundMsg)
			return
		}
		slog.Error("delete food", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
