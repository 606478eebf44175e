package response

import (
	"testing"
	"time"

	"github.com/zach-gitere/olist-warehouse/internal/domain/entities"
)

func TestFromPipelineRun(t *testing.T) {
	started := time.Now().UTC()
	finished := started.Add(2 * time.Second)
	run := entities.PipelineRun{
		ID:         "run-1",
		Status:     entities.RunStatusBlocked,
		StartedAt:  started,
		FinishedAt: &finished,
		Transforms: []entities.TransformResult{
			{Name: "stg_orders", RowCount: 3},
			{Name: "fct_orders", Upstreams: []string{"stg_orders", "stg_customers", "agg_order_items"}, RowCount: 3},
		},
		Violations:   []entities.QualityViolation{{OrderID: "o-2", TotalOrderValue: -110}},
		FactRowCount: 3,
	}

	res := FromPipelineRun(run)
	if res.RunID != "run-1" || res.Status != "blocked" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.StartedAt.Equal(started) || res.FinishedAt == nil || !res.FinishedAt.Equal(finished) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if len(res.Transforms) != 2 || res.Transforms[1].Name != "fct_orders" || len(res.Transforms[1].Upstreams) != 3 {
		t.Fatalf("unexpected transforms: %+v", res.Transforms)
	}
	if res.FactRowCount != 3 || res.ViolationCount != 1 {
		t.Fatalf("unexpected counts: %+v", res)
	}
	if len(res.Violations) != 1 || res.Violations[0].OrderID != "o-2" || res.Violations[0].TotalOrderValue != -110 {
		t.Fatalf("unexpected violations: %+v", res.Violations)
	}
}

func TestFromFactOrder(t *testing.T) {
	purchased := time.Now().UTC()
	city := "sao paulo"
	state := "SP"
	item := 15.0
	shipping := 3.0
	total := 18.0
	f := entities.FactOrder{
		OrderID:              "o-1",
		CustomerID:           "c-1",
		Status:               entities.OrderStatusDelivered,
		PurchasedAt:          &purchased,
		City:                 &city,
		State:                &state,
		TotalItemRevenue:     &item,
		TotalShippingRevenue: &shipping,
		TotalOrderValue:      &total,
	}

	res := FromFactOrder(f)
	if res.OrderID != "o-1" || res.CustomerID != "c-1" || res.OrderStatus != "delivered" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.TotalItemRevenue == nil || *res.TotalItemRevenue != 15 || res.TotalOrderValue == nil || *res.TotalOrderValue != 18 {
		t.Fatalf("unexpected revenue fields: %+v", res)
	}
}

func TestFromFactOrder_NullColumnsStayNil(t *testing.T) {
	f := entities.FactOrder{OrderID: "o-3", CustomerID: "c-ghost", Status: entities.OrderStatusCreated}

	res := FromFactOrder(f)
	if res.City != nil || res.State != nil {
		t.Fatalf("expected nil geography: %+v", res)
	}
	if res.TotalItemRevenue != nil || res.TotalShippingRevenue != nil || res.TotalOrderValue != nil {
		t.Fatalf("expected nil revenue columns: %+v", res)
	}
}
