package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDKey ключ контекста с идентификатором запроса
const RequestIDKey contextKey = "requestID"

// requestIDHeader заголовок для передачи идентификатора запроса
const requestIDHeader = "X-Request-ID"

// RequestID присваивает каждому запросу идентификатор для трассировки в логах
// Если клиент прислал свой X-Request-ID, он сохраняется
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext извлекает идентификатор запроса из контекста
func RequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	return requestID, ok
}
