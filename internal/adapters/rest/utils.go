package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/wojg58/Thursday/internal/core/accumulator"
	"github.com/wojg58/Thursday/internal/core/domain"
)

const maxBodyBytes = 1 << 20

// WriteJSONError отправляет ошибку в формате {"error": "..."}.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// decodeJSONBody читает тело запроса в dst. Пустое тело оставляет dst нулевым,
// лишние поля и второй JSON-документ - ошибка.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: invalid request body: %v", domain.ErrInvalidInput, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: request body must contain a single JSON object", domain.ErrInvalidInput)
	}
	return nil
}

// statusForError переводит ошибку use case в HTTP-статус. fallback - статус для
// прочих ошибок: 502 для upstream-операций, 500 для хранилища.
func statusForError(err error, fallback int) (int, string) {
	var upstream *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrFeedNotFound):
		return http.StatusNotFound, "feed not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, accumulator.ErrLoadInFlight):
		return http.StatusConflict, "load already in flight"
	case errors.As(err, &upstream):
		return http.StatusBadGateway, fmt.Sprintf("tour api error %s, please retry", upstream.ResultCode)
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "upstream timeout, please retry"
	case fallback == http.StatusBadGateway:
		return fallback, "tour api unavailable, please retry"
	default:
		return http.StatusInternalServerError, "internal error, please retry"
	}
}

func writeError(w http.ResponseWriter, err error, fallback int) {
	status, message := statusForError(err, fallback)
	WriteJSONError(w, status, message)
}
