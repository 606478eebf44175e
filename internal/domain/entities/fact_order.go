package entities

import "time"

// FactOrder is the published fact row, one per order_id.
//
// Nullable columns are pointers and stay nil through the left joins:
//   - City/State are nil when no customer row matched customer_id.
//   - The revenue columns are nil when the order has no items. The sum
//     TotalOrderValue follows standard null propagation, so it is nil
//     whenever either component is nil. Nulls are deliberately not coalesced
//     to zero; "no items" and "items worth zero" stay distinguishable.

type FactOrder struct {
	OrderID              string      `json:"order_id"`
	CustomerID           string      `json:"customer_id"`
	Status               OrderStatus `json:"order_status"`
	PurchasedAt          *time.Time  `json:"purchased_at,omitempty"`
	City                 *string     `json:"city,omitempty"`
	State                *string     `json:"state,omitempty"`
	TotalItemRevenue     *float64    `json:"total_item_revenue,omitempty"`
	TotalShippingRevenue *float64    `json:"total_shipping_revenue,omitempty"`
	TotalOrderValue      *float64    `json:"total_order_value,omitempty"`
}

// QualityViolation is one fact row caught by the non-negative order value
// assertion. The row set (not a boolean) is surfaced so operators can inspect
// the offending orders before deciding remediation.

type QualityViolation struct {
	OrderID         string  `json:"order_id"`
	TotalOrderValue float64 `json:"total_order_value"`
}
