package interfaces

import (
	"context"

	"github.com/zach-gitere/olist-warehouse/internal/domain/entities"
)

// IWarehouseRepository owns the published fct_orders snapshots.
//
// Fact rows are stored per run; PublishFactOrders must only flip the
// published-run pointer after every row of the snapshot is written, so readers
// always see exactly one complete snapshot. PublishedRunID returns "" when no
// run has ever been published.

type IWarehouseRepository interface {
	PublishFactOrders(ctx context.Context, runID string, facts []entities.FactOrder) error
	PublishedRunID(ctx context.Context) (string, error)
	ListFactOrders(ctx context.Context, runID string, limit int) ([]entities.FactOrder, error)
}
