//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=healthcheck_head_test
package healthcheck_head

import "context"

// Pinger хранилище кассового журнала.
type Pinger interface {
	Ping(ctx context.Context) error
}
