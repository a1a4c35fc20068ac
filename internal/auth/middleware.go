package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

// CtxEmail carries the authenticated caller's email through the request context.
const CtxEmail ctxKey = "email"

// RequireAuth guards mutating routes with a Bearer token.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ParseAndValidate(raw)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), CtxEmail, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
