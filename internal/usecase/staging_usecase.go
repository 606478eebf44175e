package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/zach-gitere/olist-warehouse/internal/domain/entities"
)

// Olist export timestamp format, e.g. "2017-10-02 10:56:33".
const rawTimeLayout = "2006-01-02 15:04:05"

const (
	rawOrdersTable     = "raw_orders"
	rawCustomersTable  = "raw_customers"
	rawOrderItemsTable = "raw_order_items"
)

// IStagingUseCase is the staging layer: one pure projection/rename per source
// table. Staging never filters, joins or aggregates; row count and order are
// preserved. All type coercion happens here and fails loudly with a
// SchemaError instead of nulling malformed values out.

type IStagingUseCase interface {
	StageCustomers(ctx context.Context, raw []entities.RawCustomerRecord) ([]entities.Customer, error)
	StageOrders(ctx context.Context, raw []entities.RawOrderRecord) ([]entities.Order, error)
	StageOrderItems(ctx context.Context, raw []entities.RawOrderItemRecord) ([]entities.OrderItem, error)
}

type StagingUseCase struct{}

var _ IStagingUseCase = (*StagingUseCase)(nil)

func NewStagingUseCase() *StagingUseCase {
	return &StagingUseCase{}
}

func (u *StagingUseCase) StageCustomers(ctx context.Context, raw []entities.RawCustomerRecord) ([]entities.Customer, error) {
	seen := make(map[string]struct{}, len(raw))
	out := make([]entities.Customer, 0, len(raw))
	for _, r := range raw {
		id := strings.TrimSpace(r.CustomerID)
		if id == "" {
			return nil, entities.NewSchemaError(rawCustomersTable, "customer_id", r.CustomerID, "required column is empty")
		}
		if _, dup := seen[id]; dup {
			return nil, entities.NewSchemaError(rawCustomersTable, "customer_id", id, "duplicate key")
		}
		seen[id] = struct{}{}

		out = append(out, entities.Customer{
			CustomerID:       id,
			CustomerUniqueID: strings.TrimSpace(r.CustomerUniqueID),
			ZipCodePrefix:    strings.TrimSpace(r.CustomerZipCodePrefix),
			City:             strings.TrimSpace(r.CustomerCity),
			State:            strings.TrimSpace(r.CustomerState),
		})
	}
	return out, nil
}

func (u *StagingUseCase) StageOrders(ctx context.Context, raw []entities.RawOrderRecord) ([]entities.Order, error) {
	seen := make(map[string]struct{}, len(raw))
	out := make([]entities.Order, 0, len(raw))
	for _, r := range raw {
		id := strings.TrimSpace(r.OrderID)
		if id == "" {
			return nil, entities.NewSchemaError(rawOrdersTable, "order_id", r.OrderID, "required column is empty")
		}
		if _, dup := seen[id]; dup {
			return nil, entities.NewSchemaError(rawOrdersTable, "order_id", id, "duplicate key")
		}
		seen[id] = struct{}{}

		customerID := strings.TrimSpace(r.CustomerID)
		if customerID == "" {
			return nil, entities.NewSchemaError(rawOrdersTable, "customer_id", r.CustomerID, "required column is empty")
		}
		status := strings.TrimSpace(r.OrderStatus)
		if status == "" {
			return nil, entities.NewSchemaError(rawOrdersTable, "order_status", r.OrderStatus, "required column is empty")
		}

		purchasedAt, err := parseOptionalTime(rawOrdersTable, "order_purchase_timestamp", r.OrderPurchaseTimestamp)
		if err != nil {
			return nil, err
		}
		approvedAt, err := parseOptionalTime(rawOrdersTable, "order_approved_at", r.OrderApprovedAt)
		if err != nil {
			return nil, err
		}
		deliveredCarrierAt, err := parseOptionalTime(rawOrdersTable, "order_delivered_carrier_date", r.OrderDeliveredCarrierDate)
		if err != nil {
			return nil, err
		}
		deliveredCustomerAt, err := parseOptionalTime(rawOrdersTable, "order_delivered_customer_date", r.OrderDeliveredCustomerDate)
		if err != nil {
			return nil, err
		}
		estimatedDeliveryAt, err := parseOptionalTime(rawOrdersTable, "order_estimated_delivery_date", r.OrderEstimatedDeliveryDate)
		if err != nil {
			return nil, err
		}

		out = append(out, entities.Order{
			OrderID:             id,
			CustomerID:          customerID,
			Status:              entities.OrderStatus(status),
			PurchasedAt:         purchasedAt,
			ApprovedAt:          approvedAt,
			DeliveredCarrierAt:  deliveredCarrierAt,
			DeliveredCustomerAt: deliveredCustomerAt,
			EstimatedDeliveryAt: estimatedDeliveryAt,
		})
	}
	return out, nil
}

func (u *StagingUseCase) StageOrderItems(ctx context.Context, raw []entities.RawOrderItemRecord) ([]entities.OrderItem, error) {
	out := make([]entities.OrderItem, 0, len(raw))
	for _, r := range raw {
		orderID := strings.TrimSpace(r.OrderID)
		if orderID == "" {
			return nil, entities.NewSchemaError(rawOrderItemsTable, "order_id", r.OrderID, "required column is empty")
		}

		itemSeq, err := strconv.Atoi(strings.TrimSpace(r.OrderItemID))
		if err != nil {
			return nil, entities.NewSchemaError(rawOrderItemsTable, "order_item_id", r.OrderItemID, "not an integer")
		}

		price, err := parseOptionalFloat(rawOrderItemsTable, "price", r.Price)
		if err != nil {
			return nil, err
		}
		shippingCost, err := parseOptionalFloat(rawOrderItemsTable, "freight_value", r.FreightValue)
		if err != nil {
			return nil, err
		}
		shippingLimitAt, err := parseOptionalTime(rawOrderItemsTable, "shipping_limit_date", r.ShippingLimitDate)
		if err != nil {
			return nil, err
		}

		out = append(out, entities.OrderItem{
			OrderID:         orderID,
			OrderItemID:     itemSeq,
			ProductID:       strings.TrimSpace(r.ProductID),
			SellerID:        strings.TrimSpace(r.SellerID),
			ShippingLimitAt: shippingLimitAt,
			Price:           price,
			ShippingCost:    shippingCost,
		})
	}
	return out, nil
}

// parseOptionalTime maps an empty export cell to nil (the lifecycle stage has
// not occurred); anything non-empty must parse or the run aborts.
func parseOptionalTime(table, column, value string) (*time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(rawTimeLayout, v)
	if err != nil {
		return nil, entities.NewSchemaError(table, column, value, "not a timestamp")
	}
	return &t, nil
}

// parseOptionalFloat maps an empty export cell to nil (null measure, zero
// contribution to downstream sums); anything non-empty must parse.
func parseOptionalFloat(table, column, value string) (*float64, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, entities.NewSchemaError(table, column, value, "not a number")
	}
	return &f, nil
}
