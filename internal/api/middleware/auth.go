package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/HBP-GuestBookingService/internal/api/handlers"
)

type contextKey string

const sessionIDKey contextKey = "sessionID"

// HeaderSessionID заголовок, в котором UI передает идентификатор сессии
const HeaderSessionID = "X-Session-ID"

// Session middleware, требующее X-Session-ID для доступа к операциям сессии
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(HeaderSessionID)
		if sessionID == "" {
			handlers.RespondUnauthorized(w, "missing "+HeaderSessionID+" header")
			return
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID возвращает идентификатор сессии из контекста запроса
func GetSessionID(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(sessionIDKey).(string)
	return sessionID, ok && sessionID != ""
}
