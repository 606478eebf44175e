package usecase

import (
	"context"
	"testing"

	"github.com/zach-gitere/olist-warehouse/internal/domain/entities"
)

func TestAggregationUseCase_AggregateOrderItems(t *testing.T) {
	uc := NewAggregationUseCase()

	t.Run("sums per order", func(t *testing.T) {
		items := []entities.OrderItem{
			{OrderID: "o-1", OrderItemID: 1, Price: floatPtr(10), ShippingCost: floatPtr(2)},
			{OrderID: "o-1", OrderItemID: 2, Price: floatPtr(5), ShippingCost: floatPtr(1)},
			{OrderID: "o-2", OrderItemID: 1, Price: floatPtr(100), ShippingCost: floatPtr(20)},
		}

		aggs := uc.AggregateOrderItems(context.Background(), items)
		if len(aggs) != 2 {
			t.Fatalf("expected 2 aggregates, got %d", len(aggs))
		}
		if aggs[0].OrderID != "o-1" || aggs[0].TotalItemRevenue != 15 || aggs[0].TotalShippingRevenue != 3 {
			t.Fatalf("unexpected o-1 aggregate: %+v", aggs[0])
		}
		if aggs[1].OrderID != "o-2" || aggs[1].TotalItemRevenue != 100 || aggs[1].TotalShippingRevenue != 20 {
			t.Fatalf("unexpected o-2 aggregate: %+v", aggs[1])
		}
	})

	t.Run("no items means no row", func(t *testing.T) {
		aggs := uc.AggregateOrderItems(context.Background(), nil)
		if len(aggs) != 0 {
			t.Fatalf("expected no aggregates, got %d", len(aggs))
		}
	})

	t.Run("nil measures contribute zero", func(t *testing.T) {
		items := []entities.OrderItem{
			{OrderID: "o-1", OrderItemID: 1, Price: floatPtr(10), ShippingCost: nil},
			{OrderID: "o-1", OrderItemID: 2, Price: nil, ShippingCost: floatPtr(4)},
		}

		aggs := uc.AggregateOrderItems(context.Background(), items)
		if len(aggs) != 1 {
			t.Fatalf("expected 1 aggregate, got %d", len(aggs))
		}
		if aggs[0].TotalItemRevenue != 10 || aggs[0].TotalShippingRevenue != 4 {
			t.Fatalf("unexpected aggregate: %+v", aggs[0])
		}
	})

	t.Run("output ordered by order_id", func(t *testing.T) {
		items := []entities.OrderItem{
			{OrderID: "o-9", OrderItemID: 1, Price: floatPtr(1)},
			{OrderID: "o-1", OrderItemID: 1, Price: floatPtr(1)},
			{OrderID: "o-5", OrderItemID: 1, Price: floatPtr(1)},
		}

		aggs := uc.AggregateOrderItems(context.Background(), items)
		for i := 1; i < len(aggs); i++ {
			if aggs[i-1].OrderID >= aggs[i].OrderID {
				t.Fatalf("aggregates not sorted: %+v", aggs)
			}
		}
	})
}
