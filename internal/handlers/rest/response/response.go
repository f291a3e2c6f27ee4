package response

import (
	"encoding/json"
	"net/http"

	"tracking-service/internal/handlers/dto"
	"tracking-service/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

// JSON пишет статус и тело. Ошибка кодирования только логируется:
// заголовок уже отправлен.
func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

func Error(w http.ResponseWriter, log errorLogger, status int, message string) {
	JSON(w, log, status, dto.ErrorResponse{Message: message})
}
