package http

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/eshop/internal/domain"
)

// ErrorResponse — тело ответа при ошибке.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

const (
	errorKindNotFound   = "not_found"
	errorKindValidation = "invalid_argument"
	errorKindInternal   = "internal_error"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.WithError(err).Error("failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, kind, message string) {
	respondJSON(w, status, ErrorResponse{Error: kind, Message: message})
}

// respondServiceError переводит доменные ошибки в HTTP-статусы,
// сохраняя текст сообщения дословно.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsNotFound(err):
		respondError(w, http.StatusNotFound, errorKindNotFound, err.Error())
	case domain.IsValidation(err):
		respondError(w, http.StatusBadRequest, errorKindValidation, err.Error())
	default:
		log.WithError(err).Error("unhandled service error")
		respondError(w, http.StatusInternalServerError, errorKindInternal, "internal server error")
	}
}
