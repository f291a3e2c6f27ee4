package upstream

import (
	"errors"
	"fmt"
	"net/http"

	"tracking-service/internal/entities"
)

// StatusError - ответ upstream с кодом вне 2xx.
// 429 и 5xx считаются временными, остальное - ошибкой данных.
type StatusError struct {
	Service   string
	Operation string
	Code      int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Service, e.Operation, e.Code)
}

func (e *StatusError) Unwrap() error {
	if IsRetryableStatus(e.Code) {
		return entities.ErrTransientFailure
	}
	return entities.ErrUpstreamData
}

func IsRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// IsStatus проверяет, что err - ответ upstream с указанным кодом.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code == code
	}
	return false
}
