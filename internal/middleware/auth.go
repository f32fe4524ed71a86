package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ddrozdov/nparcade/internal/config"
)

type CtxKey int

const (
	CtxPlayerClaims CtxKey = iota
)

// PlayerClaims pulls parsed claims out of a request context. The second
// return is false on anonymous requests.
func PlayerClaims(ctx context.Context) (*config.PlayerClaims, bool) {
	claims, ok := ctx.Value(CtxPlayerClaims).(*config.PlayerClaims)
	return claims, ok
}

// Auth parses the split auth cookies when present. Requests without
// cookies pass through anonymous; stale or tampered cookies get cleared.
func Auth(log *slog.Logger, cookies *config.Cookies, jwt *config.JWT) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := jwt.ParsePlayerClaims(r)
			if errors.Is(err, http.ErrNoCookie) {
				h.ServeHTTP(w, r)
				return
			}
			if err != nil {
				log.Debug("clearing bad auth cookies", slog.Any("error", err))
				cookies.Clear(w)
				h.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), CtxPlayerClaims, claims)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
