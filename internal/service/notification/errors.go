package notification

import (
	"errors"
	"fmt"

	"tracking-service/internal/entities"
)

var (
	ErrForbidden = errors.New("broadcast is allowed for admin only")
	// ErrNotConfirmed - запись отмечена локально, сервер отметку не принял
	ErrNotConfirmed = errors.New("mark read not confirmed by server")

	ErrInvalidNotificationID = fmt.Errorf("invalid notification id: %w", entities.ErrValidation)
	ErrInvalidBroadcast      = fmt.Errorf("invalid broadcast: %w", entities.ErrValidation)
)
