package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

type contextKey string

// UserIDKey ключ контекста с идентификатором пользователя из X-User-ID
const UserIDKey contextKey = "userID"

// Auth проверяет наличие заголовка X-User-ID и кладет его значение в контекст
// Аутентификацию выполняет API gateway, здесь только доверенный заголовок
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get("X-User-ID")
		if rawID == "" {
			handlers.RespondUnauthorized(w, "заголовок X-User-ID обязателен")
			return
		}

		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext извлекает идентификатор пользователя из контекста
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}
