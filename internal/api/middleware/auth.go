package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/campora/PMS-SchedulerService/internal/api/handlers"
)

// HeaderUserID заголовок аутентификации, проставляется API-gateway
const HeaderUserID = "X-User-ID"

type ctxKey string

const userIDKey ctxKey = "userID"

// Auth проверяет наличие корректного заголовка X-User-ID и кладет
// идентификатор пользователя в контекст запроса. Запросы без
// заголовка получают 401
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает идентификатор пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
