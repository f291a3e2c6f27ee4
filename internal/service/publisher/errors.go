package publisher

import (
	"errors"
	"fmt"

	"tracking-service/internal/entities"
)

var (
	ErrRateLimited    = errors.New("publish rate exceeded")
	ErrInvalidOrderID = fmt.Errorf("invalid order id: %w", entities.ErrValidation)
	ErrInvalidAgentID = fmt.Errorf("invalid delivery partner id: %w", entities.ErrValidation)
)
