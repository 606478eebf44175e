package response

import (
	"time"

	"github.com/zach-gitere/olist-warehouse/internal/domain/entities"
)

// FactOrderResponse mirrors the published fct_orders columns. Nullable
// columns stay pointers so an absent value serializes as an omitted field,
// never as a fabricated zero.
type FactOrderResponse struct {
	OrderID              string     `json:"order_id"`
	CustomerID           string     `json:"customer_id"`
	OrderStatus          string     `json:"order_status"`
	PurchasedAt          *time.Time `json:"purchased_at,omitempty"`
	City                 *string    `json:"city,omitempty"`
	State                *string    `json:"state,omitempty"`
	TotalItemRevenue     *float64   `json:"total_item_revenue,omitempty"`
	TotalShippingRevenue *float64   `json:"total_shipping_revenue,omitempty"`
	TotalOrderValue      *float64   `json:"total_order_value,omitempty"`
}

func FromFactOrder(f entities.FactOrder) FactOrderResponse {
	return FactOrderResponse{
		OrderID:              f.OrderID,
		CustomerID:           f.CustomerID,
		OrderStatus:          string(f.Status),
		PurchasedAt:          f.PurchasedAt,
		City:                 f.City,
		State:                f.State,
		TotalItemRevenue:     f.TotalItemRevenue,
		TotalShippingRevenue: f.TotalShippingRevenue,
		TotalOrderValue:      f.TotalOrderValue,
	}
}

func FromFactOrders(facts []entities.FactOrder) []FactOrderResponse {
	out := make([]FactOrderResponse, 0, len(facts))
	for _, f := range facts {
		out = append(out, FromFactOrder(f))
	}
	return out
}
