package tracker

import (
	"fmt"

	"tracking-service/internal/entities"
)

var (
	ErrInvalidOrderID  = fmt.Errorf("invalid order id: %w", entities.ErrValidation)
	ErrInvalidInterval = fmt.Errorf("invalid poll interval: %w", entities.ErrValidation)
)
