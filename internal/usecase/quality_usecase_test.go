package usecase

import (
	"context"
	"testing"

	"github.com/zach-gitere/olist-warehouse/internal/domain/entities"
)

func TestQualityCheckUseCase_CheckFactOrders(t *testing.T) {
	uc := NewQualityCheckUseCase()

	t.Run("clean table yields no violations", func(t *testing.T) {
		facts := []entities.FactOrder{
			{OrderID: "o-1", TotalOrderValue: floatPtr(18)},
			{OrderID: "o-2", TotalOrderValue: floatPtr(0)},
		}
		if v := uc.CheckFactOrders(context.Background(), facts); len(v) != 0 {
			t.Fatalf("expected no violations, got %+v", v)
		}
	})

	t.Run("negative total is exactly one violation", func(t *testing.T) {
		facts := []entities.FactOrder{
			{OrderID: "o-1", TotalOrderValue: floatPtr(18)},
			{OrderID: "o-2", TotalOrderValue: floatPtr(-7.5)},
			{OrderID: "o-3", TotalOrderValue: floatPtr(3)},
		}

		violations := uc.CheckFactOrders(context.Background(), facts)
		if len(violations) != 1 {
			t.Fatalf("expected exactly 1 violation, got %d", len(violations))
		}
		if violations[0].OrderID != "o-2" || violations[0].TotalOrderValue != -7.5 {
			t.Fatalf("unexpected violation: %+v", violations[0])
		}
	})

	t.Run("nil total is not a violation", func(t *testing.T) {
		facts := []entities.FactOrder{
			{OrderID: "o-1", TotalOrderValue: nil},
		}
		if v := uc.CheckFactOrders(context.Background(), facts); len(v) != 0 {
			t.Fatalf("nulls are a separate condition, got %+v", v)
		}
	})
}
