package usecase

import (
	"context"
	"reflect"
	"testing"

	"github.com/zach-gitere/olist-warehouse/internal/domain/entities"
)

func TestFactAssemblyUseCase_AssembleFactOrders(t *testing.T) {
	uc := NewFactAssemblyUseCase()

	orders := []entities.Order{
		{OrderID: "o-1", CustomerID: "c-1", Status: entities.OrderStatusDelivered},
		{OrderID: "o-2", CustomerID: "c-2", Status: entities.OrderStatusShipped},
		{OrderID: "o-3", CustomerID: "c-missing", Status: entities.OrderStatusCreated},
	}
	customers := []entities.Customer{
		{CustomerID: "c-1", City: "sao paulo", State: "SP"},
		{CustomerID: "c-2", City: "curitiba", State: "PR"},
	}
	aggregates := []entities.OrderItemAggregate{
		{OrderID: "o-1", TotalItemRevenue: 15, TotalShippingRevenue: 3},
	}

	t.Run("row count equals order count", func(t *testing.T) {
		facts := uc.AssembleFactOrders(context.Background(), orders, customers, aggregates)
		if len(facts) != len(orders) {
			t.Fatalf("expected %d fact rows, got %d", len(orders), len(facts))
		}
	})

	t.Run("revenue additivity", func(t *testing.T) {
		facts := uc.AssembleFactOrders(context.Background(), orders, customers, aggregates)
		f := facts[0]
		if f.OrderID != "o-1" {
			t.Fatalf("expected o-1 first, got %s", f.OrderID)
		}
		if f.TotalItemRevenue == nil || f.TotalShippingRevenue == nil || f.TotalOrderValue == nil {
			t.Fatalf("expected revenue columns set: %+v", f)
		}
		if *f.TotalOrderValue != *f.TotalItemRevenue+*f.TotalShippingRevenue {
			t.Fatalf("additivity broken: %+v", f)
		}
		if *f.TotalOrderValue != 18 {
			t.Fatalf("expected 18, got %v", *f.TotalOrderValue)
		}
	})

	t.Run("itemless order propagates null revenue", func(t *testing.T) {
		facts := uc.AssembleFactOrders(context.Background(), orders, customers, aggregates)
		f := facts[1]
		if f.OrderID != "o-2" {
			t.Fatalf("expected o-2, got %s", f.OrderID)
		}
		if f.TotalItemRevenue != nil || f.TotalShippingRevenue != nil || f.TotalOrderValue != nil {
			t.Fatalf("expected nil revenue for itemless order: %+v", f)
		}
		// Geography still joins: the customer exists even though no items do.
		if f.City == nil || *f.City != "curitiba" || f.State == nil || *f.State != "PR" {
			t.Fatalf("expected customer geography: %+v", f)
		}
	})

	t.Run("missing customer yields nil geography", func(t *testing.T) {
		facts := uc.AssembleFactOrders(context.Background(), orders, customers, aggregates)
		f := facts[2]
		if f.OrderID != "o-3" {
			t.Fatalf("expected o-3, got %s", f.OrderID)
		}
		if f.City != nil || f.State != nil {
			t.Fatalf("expected nil geography for missing customer: %+v", f)
		}
		if f.CustomerID != "c-missing" {
			t.Fatalf("order columns must always be populated: %+v", f)
		}
	})

	t.Run("idempotent on unchanged input", func(t *testing.T) {
		first := uc.AssembleFactOrders(context.Background(), orders, customers, aggregates)
		second := uc.AssembleFactOrders(context.Background(), orders, customers, aggregates)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("reruns differ:\n%+v\n%+v", first, second)
		}
	})
}
