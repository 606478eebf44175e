package usecase

import (
	"context"
	"sort"

	"github.com/zach-gitere/olist-warehouse/internal/domain/entities"
)

// IAggregationUseCase rolls order lines up to order granularity.
//
// The grouping key is exactly order_id. An order with no lines produces no
// aggregate row at all (not a zero-value row); downstream left joins must not
// assume every order appears here.

type IAggregationUseCase interface {
	AggregateOrderItems(ctx context.Context, items []entities.OrderItem) []entities.OrderItemAggregate
}

type AggregationUseCase struct{}

var _ IAggregationUseCase = (*AggregationUseCase)(nil)

func NewAggregationUseCase() *AggregationUseCase {
	return &AggregationUseCase{}
}

func (u *AggregationUseCase) AggregateOrderItems(ctx context.Context, items []entities.OrderItem) []entities.OrderItemAggregate {
	byOrder := make(map[string]*entities.OrderItemAggregate)
	for _, it := range items {
		agg, ok := byOrder[it.OrderID]
		if !ok {
			agg = &entities.OrderItemAggregate{OrderID: it.OrderID}
			byOrder[it.OrderID] = agg
		}
		// Null measures contribute nothing, standard SUM semantics.
		if it.Price != nil {
			agg.TotalItemRevenue += *it.Price
		}
		if it.ShippingCost != nil {
			agg.TotalShippingRevenue += *it.ShippingCost
		}
	}

	out := make([]entities.OrderItemAggregate, 0, len(byOrder))
	for _, agg := range byOrder {
		out = append(out, *agg)
	}
	// Deterministic output keeps reruns byte-identical.
	sort.Slice(out, func(i, j int) bool { return out[i].OrderID < out[j].OrderID })
	return out
}
