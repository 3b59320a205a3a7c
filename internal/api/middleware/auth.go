package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/PSM-BookingService/internal/api/handlers"
)

type contextKey string

// UserIDKey ключ контекста с ID пользователя из заголовка X-User-ID
const UserIDKey contextKey = "userID"

// Auth проверяет наличие заголовка X-User-ID и кладёт ID пользователя в
// контекст запроса. Аутентификацию выполняет API gateway, сервис
// доверяет заголовку.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get("X-User-ID")
		if rawID == "" {
			handlers.RespondUnauthorized(w, "X-User-ID header is required")
			return
		}

		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "X-User-ID header must be a positive integer")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserIDKey).(int64)
	return id, ok
}
