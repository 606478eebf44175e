package entities

// Raw export records as delivered by the upstream load, all attributes kept as
// strings. Typing happens exactly once, at the staging boundary: staging either
// produces a fully typed row or fails the run with a SchemaError. Raw values
// are never propagated past staging.

type RawOrderRecord struct {
	OrderID                    string `json:"order_id"`
	CustomerID                 string `json:"customer_id"`
	OrderStatus                string `json:"order_status"`
	OrderPurchaseTimestamp     string `json:"order_purchase_timestamp"`
	OrderApprovedAt            string `json:"order_approved_at"`
	OrderDeliveredCarrierDate  string `json:"order_delivered_carrier_date"`
	OrderDeliveredCustomerDate string `json:"order_delivered_customer_date"`
	OrderEstimatedDeliveryDate string `json:"order_estimated_delivery_date"`
}

type RawCustomerRecord struct {
	CustomerID            string `json:"customer_id"`
	CustomerUniqueID      string `json:"customer_unique_id"`
	CustomerZipCodePrefix string `json:"customer_zip_code_prefix"`
	CustomerCity          string `json:"customer_city"`
	CustomerState         string `json:"customer_state"`
}

type RawOrderItemRecord struct {
	OrderID           string `json:"order_id"`
	OrderItemID       string `json:"order_item_id"`
	ProductID         string `json:"product_id"`
	SellerID          string `json:"seller_id"`
	ShippingLimitDate string `json:"shipping_limit_date"`
	Price             string `json:"price"`
	FreightValue      string `json:"freight_value"`
}
