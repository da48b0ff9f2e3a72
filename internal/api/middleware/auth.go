package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/jellomark/reservation-service/internal/api/handlers"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	userRoleKey
)

// Роли пользователей, передаваемые API-gateway
const (
	RoleMember = "member"
	RoleOwner  = "owner"
)

const (
	msgMissingUserID   = "отсутствует заголовок X-User-ID"
	msgInvalidUserRole = "некорректный заголовок X-User-Role"
)

// Auth извлекает идентификацию пользователя из заголовков.
// Аутентификацию выполняет API-gateway, сюда приходят уже проверенные
// X-User-ID и X-User-Role.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get("X-User-ID"))
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userRole := strings.TrimSpace(r.Header.Get("X-User-Role"))
		if userRole != RoleMember && userRole != RoleOwner {
			handlers.RespondUnauthorized(w, msgInvalidUserRole)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, userRole)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// GetUserRole возвращает роль пользователя из контекста
func GetUserRole(ctx context.Context) (string, bool) {
	userRole, ok := ctx.Value(userRoleKey).(string)
	return userRole, ok
}
