package usecase

import (
	"context"
	"sort"

	"github.com/zach-gitere/olist-warehouse/internal/domain/entities"
)

// IFactAssemblyUseCase builds the published fact table:
// orders LEFT JOIN customers ON customer_id LEFT JOIN aggregates ON order_id.
//
// Every order yields exactly one fact row, so the output row count equals the
// order row count by construction. Unmatched right sides stay nil: referential
// gaps are reproducible data, not errors. TotalOrderValue is the sum of the
// two revenue components under null propagation (nil if either side is nil);
// the itemless-order case is deliberately NOT coalesced to zero.

type IFactAssemblyUseCase interface {
	AssembleFactOrders(ctx context.Context, orders []entities.Order, customers []entities.Customer, aggregates []entities.OrderItemAggregate) []entities.FactOrder
}

type FactAssemblyUseCase struct{}

var _ IFactAssemblyUseCase = (*FactAssemblyUseCase)(nil)

func NewFactAssemblyUseCase() *FactAssemblyUseCase {
	return &FactAssemblyUseCase{}
}

func (u *FactAssemblyUseCase) AssembleFactOrders(ctx context.Context, orders []entities.Order, customers []entities.Customer, aggregates []entities.OrderItemAggregate) []entities.FactOrder {
	customersByID := make(map[string]entities.Customer, len(customers))
	for _, c := range customers {
		customersByID[c.CustomerID] = c
	}
	aggregatesByOrder := make(map[string]entities.OrderItemAggregate, len(aggregates))
	for _, a := range aggregates {
		aggregatesByOrder[a.OrderID] = a
	}

	out := make([]entities.FactOrder, 0, len(orders))
	for _, o := range orders {
		f := entities.FactOrder{
			OrderID:     o.OrderID,
			CustomerID:  o.CustomerID,
			Status:      o.Status,
			PurchasedAt: o.PurchasedAt,
		}

		if c, ok := customersByID[o.CustomerID]; ok {
			city, state := c.City, c.State
			f.City = &city
			f.State = &state
		}

		if a, ok := aggregatesByOrder[o.OrderID]; ok {
			itemRevenue, shippingRevenue := a.TotalItemRevenue, a.TotalShippingRevenue
			total := itemRevenue + shippingRevenue
			f.TotalItemRevenue = &itemRevenue
			f.TotalShippingRevenue = &shippingRevenue
			f.TotalOrderValue = &total
		}

		out = append(out, f)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].OrderID < out[j].OrderID })
	return out
}
