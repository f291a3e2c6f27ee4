//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=position_test
package position

import (
	"context"

	"tracking-service/internal/entities"
)

type Repository interface {
	// Save перезаписывает текущую точку заказа. При onlyNewer точка, снятая раньше
	// уже сохраненной, отбрасывается с ErrStalePosition.
	Save(ctx context.Context, position entities.Position, onlyNewer bool) error
	Get(ctx context.Context, orderID int64) (*entities.Position, error)
}
