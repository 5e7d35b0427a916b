package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hubcoin/miniapp/internal/models"
)

type contextKey string

const IdentityKey contextKey = "identity"

// NewIdentityMiddleware lifts the Telegram web-view identity headers into the
// request context. The init data is an opaque blob forwarded to the backend
// on every call; validating it is the backend's job, not ours.
func NewIdentityMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawID := r.Header.Get("X-Telegram-User-ID")
			if rawID == "" {
				http.Error(w, "identity headers missing", http.StatusUnauthorized)
				return
			}

			userID, err := strconv.ParseInt(rawID, 10, 64)
			if err != nil {
				http.Error(w, "invalid user id", http.StatusUnauthorized)
				return
			}

			identity := models.Identity{
				UserID:   userID,
				Username: r.Header.Get("X-Telegram-Username"),
				InitData: r.Header.Get("X-Telegram-Init-Data"),
			}

			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetIdentity(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(models.Identity)
	return identity, ok
}
