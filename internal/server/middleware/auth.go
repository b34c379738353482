package middleware

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/taskplanner/internal/server/handlers"
	"github.com/iudanet/taskplanner/internal/server/jwt"
)

// TokenParser проверяет токен и возвращает его claims
type TokenParser interface {
	ParseToken(token string) (*jwt.Claims, error)
}

// AuthMiddleware создает middleware для проверки JWT токена
func AuthMiddleware(logger *slog.Logger, tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			// Извлекаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.WarnContext(ctx, "missing Authorization header")
				writeError(w, "missing token", http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			token, ok := handlers.BearerToken(authHeader)
			if !ok || token == "" {
				logger.WarnContext(ctx, "invalid Authorization header format")
				writeError(w, "invalid token format", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.ParseToken(token)
			if err != nil {
				logger.WarnContext(ctx, "invalid access token", slog.Any("error", err))
				writeError(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			logger.DebugContext(ctx, "user authenticated", slog.String("user_id", claims.UserID))

			next.ServeHTTP(w, r.WithContext(handlers.WithUserID(ctx, claims.UserID)))
		})
	}
}
