package rest

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wojg58/Thursday/internal/constants"
	"github.com/wojg58/Thursday/internal/contextkeys"
)

// AuthMiddleware берет userID из заголовка, который выставляет шлюз.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(constants.HeaderUserID)
		if userIDStr == "" {
			WriteJSONError(w, http.StatusUnauthorized, "X-User-ID header is missing")
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil || userID == uuid.Nil {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid X-User-ID header format")
			return
		}

		next.ServeHTTP(w, r.WithContext(contextkeys.ContextWithUserID(r.Context(), userID)))
	})
}
