package middleware

import (
	"context"
	"net/http"

	"github.com/vchernov/minesweeper-classic/internal/config"
)

type CtxKey int

const (
	CtxPlayerClaims CtxKey = iota
	CtxRequestId
)

// Auth parses the split auth cookies into player claims. Requests with
// missing or invalid cookies pass through anonymously with the cookies
// cleared; handlers that require a player check the context themselves.
func Auth(cookies *config.Cookies) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := cookies.ParsePlayerClaims(r)
			if err != nil {
				cookies.Clear(w)
				h.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), CtxPlayerClaims, claims)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
