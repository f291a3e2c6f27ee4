package position

import (
	"errors"
	"fmt"

	"tracking-service/internal/entities"
)

var (
	ErrInvalidOrderID = fmt.Errorf("invalid order id: %w", entities.ErrValidation)
	ErrInvalidAgentID = fmt.Errorf("invalid delivery partner id: %w", entities.ErrValidation)

	ErrPositionNotFound = errors.New("no location yet")
	ErrStalePosition    = errors.New("position is older than the stored one")
)
