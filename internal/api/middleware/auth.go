package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-PitchBookingService/internal/api/handlers"
)

const (
	// HeaderUserID идентификатор пользователя, проставляется API-гейтвеем
	HeaderUserID = "X-User-ID"
	// HeaderUserRole роль пользователя, проставляется API-гейтвеем
	HeaderUserRole = "X-User-Role"

	msgMissingUserID = "отсутствует заголовок X-User-ID"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	userRoleKey
)

// Auth требует заголовок X-User-ID и кладёт идентификатор и роль
// пользователя в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		if role := r.Header.Get(HeaderUserRole); role != "" {
			ctx = context.WithValue(ctx, userRoleKey, role)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает идентификатор пользователя из контекста
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// RoleFromContext возвращает роль пользователя из контекста
func RoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(userRoleKey).(string)
	return role, ok
}
