package handlers

import (
	"context"
	"strings"
)

// contextKey тип для ключей контекста
type contextKey string

// UserIDKey ключ для хранения user_id в контексте
const UserIDKey contextKey = "user_id"

// WithUserID возвращает контекст с user_id аутентифицированного пользователя
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// GetUserID извлекает user_id из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// BearerPrefix схема заголовка Authorization, регистр учитывается
const BearerPrefix = "Bearer "

// BearerToken извлекает токен из значения заголовка Authorization.
// ok == false, если заголовок не начинается ровно с "Bearer ".
func BearerToken(header string) (token string, ok bool) {
	return strings.CutPrefix(header, BearerPrefix)
}
