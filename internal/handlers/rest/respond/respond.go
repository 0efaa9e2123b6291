// Package respond запись JSON-ответов локального API и перевод ошибок
// сервисов в HTTP-статусы.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"partner/internal/dto"
	"partner/internal/entities"
	"partner/internal/gateway/rest/backend"
	"partner/internal/pkg/credentials"
	"partner/internal/pkg/prompt"
	"partner/internal/service/ledger"
	"partner/internal/service/lifecycle"
	"partner/internal/service/order"
	"partner/pkg/logger"
)

const (
	msgLoginRequired = "Please login again"
	msgInternal      = "Something went wrong"
	msgTimeout       = "Request timed out"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// Error пишет ошибку сервиса. Текст ошибки бэкенда отдаётся как есть.
func Error(w http.ResponseWriter, log errorLogger, err error) {
	status, message := Classify(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", logger.NewField("error", err))
	}
	JSON(w, log, status, dto.Error{Error: message})
}

func BadRequest(w http.ResponseWriter, log errorLogger, message string) {
	JSON(w, log, http.StatusBadRequest, dto.Error{Error: message})
}

// Decode читает JSON-тело запроса. Пустое тело оставляет v нетронутым.
func Decode(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Classify статус и текст для партнёра.
func Classify(err error) (int, string) {
	switch {
	case errors.Is(err, credentials.ErrLoginRequired):
		return http.StatusUnauthorized, msgLoginRequired
	case errors.Is(err, entities.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, prompt.ErrDeclined),
		errors.Is(err, ledger.ErrEntryExists):
		return http.StatusConflict, err.Error()
	case errors.Is(err, lifecycle.ErrOrderNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		return http.StatusNotFound, err.Error()
	}

	if remote, ok := backend.AsRemote(err); ok {
		if remote.StatusCode >= http.StatusBadRequest && remote.StatusCode < http.StatusInternalServerError {
			return remote.StatusCode, remote.Message
		}
		return http.StatusBadGateway, remote.Message
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, msgTimeout
	}
	return http.StatusInternalServerError, msgInternal
}
