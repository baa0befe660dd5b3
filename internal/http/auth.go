package http

import (
	"context"
	"net/http"
	"strings"

	"fintrack/internal/core"
)

type contextKey string

const userContextKey contextKey = "user"

// requireAuth wraps a handler with bearer token authentication. The resolved
// user lands in the request context; any failure is a 401 with a challenge.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeError(w, core.ErrInvalidToken)
			return
		}

		user, err := s.auth.UserFromToken(r.Context(), token)
		if err != nil {
			writeError(w, core.ErrInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next(w, r.WithContext(ctx))
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// currentUser returns the authenticated user stored by requireAuth.
func currentUser(ctx context.Context) core.User {
	user, _ := ctx.Value(userContextKey).(core.User)
	return user
}
