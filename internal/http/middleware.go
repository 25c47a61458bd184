package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	sessiondomain "github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/session/domain"
)

type contextKey string

const (
	clientIDKey contextKey = "client_id"

	// ClientIDHeader carries the browser context identity. The server mints
	// one when the client arrives without it and echoes it back so the
	// client can adopt it.
	ClientIDHeader = "X-Client-Id"
)

// ClientContextMiddleware resolves the client context every session and
// cart is keyed by.
func ClientContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := r.Header.Get(ClientIDHeader)
		if clientID == "" {
			clientID = uuid.NewString()
		}
		w.Header().Set(ClientIDHeader, clientID)

		ctx := context.WithValue(r.Context(), clientIDKey, clientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func clientIDFromContext(ctx context.Context) string {
	if clientID, ok := ctx.Value(clientIDKey).(string); ok {
		return clientID
	}
	return ""
}

// SessionReader is the slice of the session manager the middleware needs.
type SessionReader interface {
	Current(ctx context.Context, clientID string) (*sessiondomain.User, error)
}

// RequireAdmin gates a route on an established admin session.
func RequireAdmin(sessions SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID := clientIDFromContext(r.Context())
			if clientID == "" {
				respondError(w, http.StatusUnauthorized, "unauthorized", "missing client context")
				return
			}

			user, err := sessions.Current(r.Context(), clientID)
			if err != nil {
				respondError(w, http.StatusInternalServerError, "internal_error", "failed to resolve session")
				return
			}
			if user == nil {
				respondError(w, http.StatusUnauthorized, "unauthenticated", "login required")
				return
			}
			if user.Role != sessiondomain.RoleAdmin {
				respondError(w, http.StatusForbidden, "permission_denied", "admin role required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
