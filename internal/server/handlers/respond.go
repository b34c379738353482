package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/taskplanner/internal/server/service"
	"github.com/iudanet/taskplanner/pkg/api"
)

// responder содержит общие для всех handlers методы формирования ответа
type responder struct {
	logger *slog.Logger
}

// sendJSON отправляет JSON ответ
func (h responder) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h responder) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}

// sendServiceError переводит ошибку сервиса в HTTP статус.
// Детали внутренних ошибок остаются только в логе.
func (h responder) sendServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	kind := service.KindOf(err)

	status := statusFor(kind)
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		h.sendError(w, "internal server error", status)
		return
	}

	h.logger.WarnContext(ctx, "request rejected",
		slog.String("kind", kind.String()),
		slog.Any("error", err))
	h.sendError(w, err.Error(), status)
}

func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindValidation:
		return http.StatusBadRequest
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindConflict:
		return http.StatusConflict
	case service.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON читает тело запроса; неизвестные поля допускаются
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
