package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dvmorais/daily-diet-api/internal/api/httpx"
	"github.com/dvmorais/daily-diet-api/internal/services"
)

type ctxKey string

const ctxUserIDKey ctxKey = "uid"

// UserID returns the authenticated user's id bound by RequireSession.
func UserID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxUserIDKey).(string)
	return v, ok
}

type SessionMiddleware struct {
	users *services.UserService
}

func NewSessionMiddleware(users *services.UserService) *SessionMiddleware {
	return &SessionMiddleware{users: users}
}

// RequireSession resolves the sessionId cookie against the user store and
// rejects the request before any food handler runs when it does not match.
func (m *SessionMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("sessionId")
		if err != nil || c.Value == "" {
			httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		u, err := m.users.Authenticate(r.Context(), c.Value)
		if err != nil {
			if errors.Is(err, services.ErrUnauthenticated) {
				httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			slog.Error("session lookup", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		ctx := context.WithValue(r.Context(), ctxUserIDKey, u.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
