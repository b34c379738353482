package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/taskplanner/internal/server/service"
	"github.com/iudanet/taskplanner/pkg/api"
)

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	responder
	auth *service.AuthService
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		responder: responder{logger: logger},
		auth:      auth,
	}
}

// Register обрабатывает POST /api/v1/auth/register
// Регистрация нового пользователя
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.auth.Register(ctx, req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		h.sendServiceError(ctx, w, err)
		return
	}

	h.sendJSON(w, toAuthResponse(result), http.StatusCreated)
}

// Login обрабатывает POST /api/v1/auth/login
// Аутентификация пользователя
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.sendServiceError(ctx, w, err)
		return
	}

	h.sendJSON(w, toAuthResponse(result), http.StatusOK)
}

// Me обрабатывает GET /api/v1/auth/me
// Возвращает пользователя, которому выдан токен
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok || userID == "" {
		h.sendError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	user, err := h.auth.CurrentUser(ctx, userID)
	if err != nil {
		h.sendServiceError(ctx, w, err)
		return
	}

	h.sendJSON(w, api.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, http.StatusOK)
}

// Validate обрабатывает POST /api/v1/auth/validate
// Отвечает true/false; без префикса "Bearer " возвращает 400 и false
func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request) {
	token, ok := BearerToken(r.Header.Get("Authorization"))
	if !ok {
		h.sendJSON(w, false, http.StatusBadRequest)
		return
	}

	h.sendJSON(w, h.auth.ValidateToken(token), http.StatusOK)
}

func toAuthResponse(result *service.AuthResult) api.AuthResponse {
	return api.AuthResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		UserID:    result.UserID,
		Name:      result.Name,
		Email:     result.Email,
	}
}
