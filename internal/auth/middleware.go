package auth

import (
	"context"
	"log"
	"net/http"
	"strings"

	"contact-scout/internal/storage"
)

type contextKey struct{}

// UserID returns the authenticated user id stored in the request context,
// or "" when the request did not pass through the middleware.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// WithUserID injects a user id into the context. Exposed for handler tests.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// Middleware verifies the bearer token on every request, upserts the user
// record, and scopes the request context to the verified user id.
func Middleware(verifier Verifier, db *storage.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			identity, err := verifier.Verify(r.Context(), token)
			if err != nil {
				log.Printf("[Auth] Token verification failed: %v", err)
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			if db != nil {
				user := &storage.User{
					ID:         identity.UserID,
					Email:      identity.Email,
					Name:       identity.Name,
					PictureURL: identity.PictureURL,
				}
				if err := db.UpsertUser(r.Context(), user); err != nil {
					log.Printf("[Auth] Failed to upsert user %s: %v", identity.UserID, err)
				}
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), identity.UserID)))
		})
	}
}
