package entities

import "time"

// OrderStatus carries the Olist export status values verbatim.
//
// The pipeline never interprets the status beyond copying it into the fact
// table, so no state machine exists here; the set below documents the values
// seen in the export.

type OrderStatus string

const (
	OrderStatusCreated     OrderStatus = "created"
	OrderStatusApproved    OrderStatus = "approved"
	OrderStatusInvoiced    OrderStatus = "invoiced"
	OrderStatusProcessing  OrderStatus = "processing"
	OrderStatusShipped     OrderStatus = "shipped"
	OrderStatusDelivered   OrderStatus = "delivered"
	OrderStatusCanceled    OrderStatus = "canceled"
	OrderStatusUnavailable OrderStatus = "unavailable"
)

// Order is a staged order row, one per order_id.
//
// Lifecycle timestamps are pointers: a nil value means the stage has not
// occurred yet in the source snapshot, which is valid data and must survive
// into the fact table untouched.

type Order struct {
	OrderID             string      `json:"order_id"`
	CustomerID          string      `json:"customer_id"`
	Status              OrderStatus `json:"order_status"`
	PurchasedAt         *time.Time  `json:"purchased_at,omitempty"`
	ApprovedAt          *time.Time  `json:"approved_at,omitempty"`
	DeliveredCarrierAt  *time.Time  `json:"delivered_carrier_at,omitempty"`
	DeliveredCustomerAt *time.Time  `json:"delivered_customer_at,omitempty"`
	EstimatedDeliveryAt *time.Time  `json:"estimated_delivery_at,omitempty"`
}
