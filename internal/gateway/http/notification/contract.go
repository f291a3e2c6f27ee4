//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import "context"

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
