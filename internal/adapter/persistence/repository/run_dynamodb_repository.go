package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/zach-gitere/olist-warehouse/internal/domain/entities"
	"github.com/zach-gitere/olist-warehouse/internal/usecase/interfaces"
)

const defaultPipelineRunsTableName = "pipeline_runs"

type pipelineRunItem struct {
	ID            string  `dynamodbav:"id"`
	Status        string  `dynamodbav:"status"`
	DryRun        bool    `dynamodbav:"dry_run"`
	StartedAt     string  `dynamodbav:"started_at"`
	FinishedAt    *string `dynamodbav:"finished_at,omitempty"`
	TransformsRaw string  `dynamodbav:"transforms_raw,omitempty"`
	ViolationsRaw string  `dynamodbav:"violations_raw,omitempty"`
	FactRowCount  int     `dynamodbav:"fact_row_count"`
	Error         string  `dynamodbav:"error,omitempty"`
}

// RunDynamoRepository persists PipelineRun records.
//
// Table requirements:
//   - PK: id (string)
//
// Transform results and violations are stored as JSON blobs; they are read
// back whole for diagnosis, never queried by attribute.

type RunDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRunRepository = (*RunDynamoRepository)(nil)

func NewRunDynamoRepository(ddb *dynamodb.Client) *RunDynamoRepository {
	return &RunDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PIPELINE_RUNS_TABLE", defaultPipelineRunsTableName),
	}
}

func (r *RunDynamoRepository) Create(ctx context.Context, run entities.PipelineRun) (entities.PipelineRun, error) {
	it, err := toPipelineRunItem(run)
	if err != nil {
		return entities.PipelineRun{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PipelineRun{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PipelineRun{}, err
	}
	return run, nil
}

func (r *RunDynamoRepository) Update(ctx context.Context, run entities.PipelineRun) (entities.PipelineRun, error) {
	it, err := toPipelineRunItem(run)
	if err != nil {
		return entities.PipelineRun{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PipelineRun{}, err
	}

	// Full overwrite: a run record is only ever written by its own run.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.PipelineRun{}, err
	}
	return run, nil
}

func (r *RunDynamoRepository) GetByID(ctx context.Context, id string) (entities.PipelineRun, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PipelineRun{}, err
	}
	if len(out.Item) == 0 {
		return entities.PipelineRun{}, nil
	}

	var it pipelineRunItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PipelineRun{}, err
	}
	return fromPipelineRunItem(it)
}

func toPipelineRunItem(run entities.PipelineRun) (pipelineRunItem, error) {
	it := pipelineRunItem{
		ID:           run.ID,
		Status:       string(run.Status),
		DryRun:       run.DryRun,
		StartedAt:    run.StartedAt.UTC().Format(time.RFC3339Nano),
		FactRowCount: run.FactRowCount,
		Error:        run.Error,
	}
	if run.FinishedAt != nil {
		s := run.FinishedAt.UTC().Format(time.RFC3339Nano)
		it.FinishedAt = &s
	}
	if len(run.Transforms) > 0 {
		b, err := json.Marshal(run.Transforms)
		if err != nil {
			return pipelineRunItem{}, err
		}
		it.TransformsRaw = string(b)
	}
	if len(run.Violations) > 0 {
		b, err := json.Marshal(run.Violations)
		if err != nil {
			return pipelineRunItem{}, err
		}
		it.ViolationsRaw = string(b)
	}
	return it, nil
}

func fromPipelineRunItem(it pipelineRunItem) (entities.PipelineRun, error) {
	startedAt, _ := time.Parse(time.RFC3339Nano, it.StartedAt)
	run := entities.PipelineRun{
		ID:           it.ID,
		Status:       entities.RunStatus(it.Status),
		DryRun:       it.DryRun,
		StartedAt:    startedAt,
		FactRowCount: it.FactRowCount,
		Error:        it.Error,
	}
	if it.FinishedAt != nil {
		if t, err := time.Parse(time.RFC3339Nano, *it.FinishedAt); err == nil {
			run.FinishedAt = &t
		}
	}
	if it.TransformsRaw != "" {
		if err := json.Unmarshal([]byte(it.TransformsRaw), &run.Transforms); err != nil {
			return entities.PipelineRun{}, err
		}
	}
	if it.ViolationsRaw != "" {
		if err := json.Unmarshal([]byte(it.ViolationsRaw), &run.Violations); err != nil {
			return entities.PipelineRun{}, err
		}
	}
	return run, nil
}
