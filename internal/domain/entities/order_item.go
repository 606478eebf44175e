package entities

import "time"

// OrderItem is a staged order line, one row per (order_id, order_item_id).
//
// ShippingCost is the export's freight_value renamed at the staging boundary.
// Price and ShippingCost are pointers: a nil measure is a null cell in the
// export and contributes nothing to the aggregation sums.

type OrderItem struct {
	OrderID         string     `json:"order_id"`
	OrderItemID     int        `json:"order_item_id"`
	ProductID       string     `json:"product_id"`
	SellerID        string     `json:"seller_id"`
	ShippingLimitAt *time.Time `json:"shipping_limit_at,omitempty"`
	Price           *float64   `json:"price,omitempty"`
	ShippingCost    *float64   `json:"shipping_cost,omitempty"`
}

// OrderItemAggregate is one row per order_id with item sums.
//
// Orders with zero items have no aggregate row at all; the fact assembly's
// left join is responsible for representing that case as null revenue.

type OrderItemAggregate struct {
	OrderID              string  `json:"order_id"`
	TotalItemRevenue     float64 `json:"total_item_revenue"`
	TotalShippingRevenue float64 `json:"total_shipping_revenue"`
}
