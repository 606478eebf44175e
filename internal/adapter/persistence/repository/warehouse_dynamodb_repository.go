package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/zach-gitere/olist-warehouse/internal/domain/entities"
	"github.com/zach-gitere/olist-warehouse/internal/usecase/interfaces"
)

const defaultFactOrdersTableName = "fct_orders"

// Pointer item key. The partition value cannot collide with run ids (uuids).
const (
	publishedPointerPK = "_published"
	publishedPointerSK = "_pointer"
)

const batchWriteChunkSize = 25

type factOrderItem struct {
	RunID                string  `dynamodbav:"run_id"`
	OrderID              string  `dynamodbav:"order_id"`
	CustomerID           string  `dynamodbav:"customer_id"`
	Status               string  `dynamodbav:"order_status"`
	PurchasedAt          *string `dynamodbav:"purchased_at,omitempty"`
	City                 *string `dynamodbav:"city,omitempty"`
	State                *string `dynamodbav:"state,omitempty"`
	TotalItemRevenue     *string `dynamodbav:"total_item_revenue,omitempty"`
	TotalShippingRevenue *string `dynamodbav:"total_shipping_revenue,omitempty"`
	TotalOrderValue      *string `dynamodbav:"total_order_value,omitempty"`
}

type publishedPointerItem struct {
	RunID          string `dynamodbav:"run_id"`
	OrderID        string `dynamodbav:"order_id"`
	PublishedRunID string `dynamodbav:"published_run_id"`
	PublishedAt    string `dynamodbav:"published_at"`
}

// WarehouseDynamoRepository stores fct_orders snapshots.
//
// Table requirements:
//   - PK: run_id (string), SK: order_id (string)
//
// Every run writes its rows under its own run_id partition; the pointer item
// is flipped only after the whole snapshot is written, which is what makes a
// publish atomic from the readers' point of view. Superseded partitions are
// left for the table's TTL/cleanup policy; they are never mutated.

type WarehouseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWarehouseRepository = (*WarehouseDynamoRepository)(nil)

func NewWarehouseDynamoRepository(ddb *dynamodb.Client) *WarehouseDynamoRepository {
	return &WarehouseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FACT_ORDERS_TABLE", defaultFactOrdersTableName),
	}
}

func (r *WarehouseDynamoRepository) PublishFactOrders(ctx context.Context, runID string, facts []entities.FactOrder) error {
	for start := 0; start < len(facts); start += batchWriteChunkSize {
		end := start + batchWriteChunkSize
		if end > len(facts) {
			end = len(facts)
		}

		writes := make([]types.WriteRequest, 0, end-start)
		for _, f := range facts[start:end] {
			av, err := attributevalue.MarshalMap(toFactOrderItem(runID, f))
			if err != nil {
				return err
			}
			writes = append(writes, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}

		requests := map[string][]types.WriteRequest{r.tableName: writes}
		for len(requests[r.tableName]) > 0 {
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: requests})
			if err != nil {
				return err
			}
			requests = out.UnprocessedItems
		}
	}

	// Pointer flip last: readers switch snapshots only once every row exists.
	av, err := attributevalue.MarshalMap(publishedPointerItem{
		RunID:          publishedPointerPK,
		OrderID:        publishedPointerSK,
		PublishedRunID: runID,
		PublishedAt:    time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *WarehouseDynamoRepository) PublishedRunID(ctx context.Context) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"run_id":   &types.AttributeValueMemberS{Value: publishedPointerPK},
			"order_id": &types.AttributeValueMemberS{Value: publishedPointerSK},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	var it publishedPointerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	return it.PublishedRunID, nil
}

func (r *WarehouseDynamoRepository) ListFactOrders(ctx context.Context, runID string, limit int) ([]entities.FactOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#run_id = :run_id"),
		ExpressionAttributeNames: map[string]string{
			"#run_id": "run_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":run_id": &types.AttributeValueMemberS{Value: runID},
		},
		Limit: aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, err
	}

	var rows []factOrderItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &rows); err != nil {
		return nil, err
	}

	facts := make([]entities.FactOrder, 0, len(rows))
	for _, it := range rows {
		facts = append(facts, fromFactOrderItem(it))
	}
	return facts, nil
}

func toFactOrderItem(runID string, f entities.FactOrder) factOrderItem {
	var purchasedAt *string
	if f.PurchasedAt != nil {
		s := f.PurchasedAt.UTC().Format(time.RFC3339Nano)
		purchasedAt = &s
	}
	return factOrderItem{
		RunID:                runID,
		OrderID:              f.OrderID,
		CustomerID:           f.CustomerID,
		Status:               string(f.Status),
		PurchasedAt:          purchasedAt,
		City:                 f.City,
		State:                f.State,
		TotalItemRevenue:     optionalFloatToString(f.TotalItemRevenue),
		TotalShippingRevenue: optionalFloatToString(f.TotalShippingRevenue),
		TotalOrderValue:      optionalFloatToString(f.TotalOrderValue),
	}
}

func fromFactOrderItem(it factOrderItem) entities.FactOrder {
	var purchasedAt *time.Time
	if it.PurchasedAt != nil {
		if t, err := time.Parse(time.RFC3339Nano, *it.PurchasedAt); err == nil {
			purchasedAt = &t
		}
	}
	return entities.FactOrder{
		OrderID:              it.OrderID,
		CustomerID:           it.CustomerID,
		Status:               entities.OrderStatus(it.Status),
		PurchasedAt:          purchasedAt,
		City:                 it.City,
		State:                it.State,
		TotalItemRevenue:     optionalStringToFloat(it.TotalItemRevenue),
		TotalShippingRevenue: optionalStringToFloat(it.TotalShippingRevenue),
		TotalOrderValue:      optionalStringToFloat(it.TotalOrderValue),
	}
}
