package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const UserContextKey contextKey = "user_id"

// Identity copies the caller-supplied identifier from the x-user-id header
// (or the userId query parameter) into the request context. The identifier
// is trusted as-is.
// TODO: verify the identifier against a real identity provider once one is
// wired in; today there is no session-based identity.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("x-user-id")
		if id == "" {
			id = r.URL.Query().Get("userId")
		}
		if id != "" {
			ctx := context.WithValue(r.Context(), UserContextKey, id)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// UserID returns the identifier stored by Identity, if any.
func UserID(r *http.Request) (string, bool) {
	val := r.Context().Value(UserContextKey)
	if val == nil {
		return "", false
	}
	id, ok := val.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
