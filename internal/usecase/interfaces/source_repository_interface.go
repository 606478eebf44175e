package interfaces

import (
	"context"

	"github.com/zach-gitere/olist-warehouse/internal/domain/entities"
)

// ISourceRepository reads the raw export tables loaded by the upstream
// extraction process. Each fetch returns a complete immutable snapshot of one
// table; attributes stay strings until the staging layer types them.

type ISourceRepository interface {
	FetchRawOrders(ctx context.Context) ([]entities.RawOrderRecord, error)
	FetchRawCustomers(ctx context.Context) ([]entities.RawCustomerRecord, error)
	FetchRawOrderItems(ctx context.Context) ([]entities.RawOrderItemRecord, error)
}
