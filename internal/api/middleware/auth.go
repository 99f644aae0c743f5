package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/CarRental-BookingService/internal/api/handlers"
)

// HeaderUserID заголовок с идентификатором аутентифицированного пользователя
// Заголовок проставляет API-гейтвей после проверки токена; сервис доверяет
// ему и использует как явную личность вызывающего во всех проверках прав
const HeaderUserID = "X-User-ID"

type userIDKey struct{}

// Auth проверяет наличие X-User-ID и кладёт его в контекст запроса
// Запросы без заголовка отклоняются с 401
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает идентификатор пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	return userID, ok && userID != ""
}
