package api

import "time"

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Name            string `json:"name"`            // отображаемое имя
	Email           string `json:"email"`           // email, используется как логин
	Password        string `json:"password"`        // пароль в открытом виде (только по TLS)
	ConfirmPassword string `json:"confirmPassword"` // подтверждение пароля
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse представляет ответ на успешную регистрацию или вход
type AuthResponse struct {
	ExpiresAt time.Time `json:"expiresAt"` // время истечения токена
	Token     string    `json:"token"`     // JWT токен
	UserID    string    `json:"userId"`    // UUID пользователя
	Name      string    `json:"name"`
	Email     string    `json:"email"`
}

// UserResponse представляет текущего пользователя
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

// MessageResponse представляет ответ с текстовым сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version,omitempty"`
	Database string `json:"database,omitempty"`
}
