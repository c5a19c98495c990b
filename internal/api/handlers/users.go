package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dvmorais/daily-diet-api/internal/api/httpx"
	"github.com/dvmorais/daily-diet-api/internal/api/validate"
	"github.com/dvmorais/daily-diet-api/internal/metrics"
	"github.com/dvmorais/daily-diet-api/internal/services"
)

// sessionCookieMaxAge is 7 days.
const sessionCookieMaxAge = 7 * 24 * 60 * 60

type UsersHandler struct {
	users  *services.UserService
	lookup validate.UserLookup
}

func NewUsersHandler(users *services.UserService, lookup validate.UserLookup) *UsersHandler {
	return &UsersHandler{users: users, lookup: lookup}
}

// Create handles POST /users.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad request")
		return
	}

	in, errs, err := validate.UserCreation(r.Context(), raw, h.lookup)
	if err != nil {
		slog.Error("user validation", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if len(errs) > 0 {
		httpx.WriteValidationErrors(w, errs)
		return
	}

	if err := h.users.Register(r.Context(), in.Name, in.Email, in.Username, in.Password); err != nil {
		slog.Error("register", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	metrics.UsersRegistered.Inc()
	w.WriteHeader(http.StatusCreated)
}

type sessionUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type sessionResponse struct {
	User sessionUser `json:"user"`
}

// CreateSession handles POST /users/sessions.
func (h *UsersHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad request")
		return
	}

	in, errs := validate.SessionBody(raw)
	if len(errs) > 0 {
		httpx.WriteValidationErrors(w, errs)
		return
	}

	u, sessionID, err := h.users.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusBadRequest, "Username or password invalid.")
			return
		}
		slog.Error("login", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:   "sessionId",
		Value:  sessionID,
		Path:   "/",
		MaxAge: sessionCookieMaxAge,
	})

	metrics.SessionsOpened.Inc()
	httpx.WriteJSON(w, http.StatusOK, sessionResponse{
		User: sessionUser{Name: u.Name, Email: u.Email, Username: u.Username},
	})
}
