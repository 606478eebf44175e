package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/zach-gitere/olist-warehouse/internal/domain/entities"
	"github.com/zach-gitere/olist-warehouse/internal/usecase/interfaces"
)

const (
	defaultRawOrdersTableName     = "raw_orders"
	defaultRawCustomersTableName  = "raw_customers"
	defaultRawOrderItemsTableName = "raw_order_items"
)

// Raw table items carry every attribute as a string, exactly as the load
// process delivers them. No typing happens here; that is the staging layer's
// job, so malformed values surface as schema errors instead of unmarshal
// failures in the adapter.

type rawOrderTableItem struct {
	OrderID                    string `dynamodbav:"order_id"`
	CustomerID                 string `dynamodbav:"customer_id"`
	OrderStatus                string `dynamodbav:"order_status"`
	OrderPurchaseTimestamp     string `dynamodbav:"order_purchase_timestamp"`
	OrderApprovedAt            string `dynamodbav:"order_approved_at"`
	OrderDeliveredCarrierDate  string `dynamodbav:"order_delivered_carrier_date"`
	OrderDeliveredCustomerDate string `dynamodbav:"order_delivered_customer_date"`
	OrderEstimatedDeliveryDate string `dynamodbav:"order_estimated_delivery_date"`
}

type rawCustomerTableItem struct {
	CustomerID            string `dynamodbav:"customer_id"`
	CustomerUniqueID      string `dynamodbav:"customer_unique_id"`
	CustomerZipCodePrefix string `dynamodbav:"customer_zip_code_prefix"`
	CustomerCity          string `dynamodbav:"customer_city"`
	CustomerState         string `dynamodbav:"customer_state"`
}

type rawOrderItemTableItem struct {
	OrderID           string `dynamodbav:"order_id"`
	OrderItemID       string `dynamodbav:"order_item_id"`
	ProductID         string `dynamodbav:"product_id"`
	SellerID          string `dynamodbav:"seller_id"`
	ShippingLimitDate string `dynamodbav:"shipping_limit_date"`
	Price             string `dynamodbav:"price"`
	FreightValue      string `dynamodbav:"freight_value"`
}

// SourceDynamoRepository reads the raw export tables. Each fetch is a full
// table scan: the pipeline consumes complete immutable snapshots, never
// partial or streamed input.

type SourceDynamoRepository struct {
	ddb                 *dynamodb.Client
	ordersTableName     string
	customersTableName  string
	orderItemsTableName string
}

var _ interfaces.ISourceRepository = (*SourceDynamoRepository)(nil)

func NewSourceDynamoRepository(ddb *dynamodb.Client) *SourceDynamoRepository {
	return &SourceDynamoRepository{
		ddb:                 ddb,
		ordersTableName:     getenvDefault("RAW_ORDERS_TABLE", defaultRawOrdersTableName),
		customersTableName:  getenvDefault("RAW_CUSTOMERS_TABLE", defaultRawCustomersTableName),
		orderItemsTableName: getenvDefault("RAW_ORDER_ITEMS_TABLE", defaultRawOrderItemsTableName),
	}
}

func (r *SourceDynamoRepository) FetchRawOrders(ctx context.Context) ([]entities.RawOrderRecord, error) {
	items, err := r.scanAll(ctx, r.ordersTableName)
	if err != nil {
		return nil, err
	}

	var rows []rawOrderTableItem
	if err := attributevalue.UnmarshalListOfMaps(items, &rows); err != nil {
		return nil, err
	}

	out := make([]entities.RawOrderRecord, 0, len(rows))
	for _, it := range rows {
		out = append(out, entities.RawOrderRecord{
			OrderID:                    it.OrderID,
			CustomerID:                 it.CustomerID,
			OrderStatus:                it.OrderStatus,
			OrderPurchaseTimestamp:     it.OrderPurchaseTimestamp,
			OrderApprovedAt:            it.OrderApprovedAt,
			OrderDeliveredCarrierDate:  it.OrderDeliveredCarrierDate,
			OrderDeliveredCustomerDate: it.OrderDeliveredCustomerDate,
			OrderEstimatedDeliveryDate: it.OrderEstimatedDeliveryDate,
		})
	}
	return out, nil
}

func (r *SourceDynamoRepository) FetchRawCustomers(ctx context.Context) ([]entities.RawCustomerRecord, error) {
	items, err := r.scanAll(ctx, r.customersTableName)
	if err != nil {
		return nil, err
	}

	var rows []rawCustomerTableItem
	if err := attributevalue.UnmarshalListOfMaps(items, &rows); err != nil {
		return nil, err
	}

	out := make([]entities.RawCustomerRecord, 0, len(rows))
	for _, it := range rows {
		out = append(out, entities.RawCustomerRecord{
			CustomerID:            it.CustomerID,
			CustomerUniqueID:      it.CustomerUniqueID,
			CustomerZipCodePrefix: it.CustomerZipCodePrefix,
			CustomerCity:          it.CustomerCity,
			CustomerState:         it.CustomerState,
		})
	}
	return out, nil
}

func (r *SourceDynamoRepository) FetchRawOrderItems(ctx context.Context) ([]entities.RawOrderItemRecord, error) {
	items, err := r.scanAll(ctx, r.orderItemsTableName)
	if err != nil {
		return nil, err
	}

	var rows []rawOrderItemTableItem
	if err := attributevalue.UnmarshalListOfMaps(items, &rows); err != nil {
		return nil, err
	}

	out := make([]entities.RawOrderItemRecord, 0, len(rows))
	for _, it := range rows {
		out = append(out, entities.RawOrderItemRecord{
			OrderID:           it.OrderID,
			OrderItemID:       it.OrderItemID,
			ProductID:         it.ProductID,
			SellerID:          it.SellerID,
			ShippingLimitDate: it.ShippingLimitDate,
			Price:             it.Price,
			FreightValue:      it.FreightValue,
		})
	}
	return out, nil
}

func (r *SourceDynamoRepository) scanAll(ctx context.Context, tableName string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(tableName),
			ExclusiveStartKey: startKey,
			ConsistentRead:    aws.Bool(true),
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}
