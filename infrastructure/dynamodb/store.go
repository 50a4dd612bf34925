package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"customers-backend/infrastructure/config"
	apperrors "customers-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// NewClient builds the DynamoDB client shared by the whole process. When the
// offline flag is set the client is pointed at a local DynamoDB endpoint with
// dummy credentials, matching the serverless-offline development setup.
func NewClient(ctx context.Context, cfg *config.Config) (*dynamodb.Client, error) {
	if cfg.IsOffline {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion("localhost"),
			awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider("local", "local", ""),
			),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load offline AWS config: %w", err)
		}
		return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.OfflineEndpoint)
		}), nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg), nil
}

// Store is a thin pass-through over one configured table. It adds no retry
// policy and no pagination; a scan or query returns a single page and any
// underlying call failure propagates to the caller.
type Store struct {
	client *dynamodb.Client
	table  string
	logger *zap.Logger
}

// NewStore creates a store bound to the given table.
func NewStore(client *dynamodb.Client, table string, logger *zap.Logger) *Store {
	return &Store{
		client: client,
		table:  table,
		logger: logger,
	}
}

// Get performs a point read. An empty projection reads the full item; an
// absent item comes back as a nil map.
func (s *Store) Get(ctx context.Context, key map[string]types.AttributeValue, projection string) (map[string]types.AttributeValue, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       key,
	}
	if projection != "" {
		input.ProjectionExpression = aws.String(projection)
	}

	out, err := s.client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return out.Item, nil
}

// Put writes the item unconditionally, overwriting any existing row.
func (s *Store) Put(ctx context.Context, item map[string]types.AttributeValue) error {
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put item: %w", err)
	}
	return nil
}

// Scan reads a single page of the full table and returns the items together
// with the scanned count.
func (s *Store) Scan(ctx context.Context) ([]map[string]types.AttributeValue, int, error) {
	out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan table: %w", err)
	}
	return out.Items, int(out.Count), nil
}

// Update applies a partial attribute update. When mustExist is set, a
// condition expression requires the row to already be present and a failed
// condition is reported as the distinguished record-absent error so callers
// can tell "not found" apart from other store failures.
func (s *Store) Update(ctx context.Context, key map[string]types.AttributeValue, changes map[string]interface{}, mustExist bool) error {
	var update expression.UpdateBuilder
	for name, value := range changes {
		update = update.Set(expression.Name(name), expression.Value(value))
	}

	builder := expression.NewBuilder().WithUpdate(update)
	if mustExist {
		var cond expression.ConditionBuilder
		first := true
		for name := range key {
			attr := expression.AttributeExists(expression.Name(name))
			if first {
				cond = attr
				first = false
			} else {
				cond = cond.And(attr)
			}
		}
		builder = builder.WithCondition(cond)
	}

	expr, err := builder.Build()
	if err != nil {
		return fmt.Errorf("failed to build update expression: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.table),
		Key:                       key,
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}
	if mustExist {
		input.ConditionExpression = expr.Condition()
	}

	if _, err := s.client.UpdateItem(ctx, input); err != nil {
		var conditionalCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionalCheckFailed) {
			s.logger.Debug("Conditional update failed, record absent",
				zap.String("table", s.table),
			)
			return apperrors.NewNotFoundError("record").WithCause(err)
		}
		return fmt.Errorf("failed to update item: %w", err)
	}
	return nil
}

// Delete removes the row by key. The customer lifecycle never hard-deletes;
// this primitive remains for direct table maintenance.
func (s *Store) Delete(ctx context.Context, key map[string]types.AttributeValue) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       key,
	})
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// Query runs an equality query against a secondary index and returns a
// single page of matches.
func (s *Store) Query(ctx context.Context, index, attribute string, value interface{}) ([]map[string]types.AttributeValue, error) {
	keyCondition := expression.Key(attribute).Equal(expression.Value(value))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCondition).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build key condition: %w", err)
	}

	out, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(s.table),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query index %s: %w", index, err)
	}
	return out.Items, nil
}
