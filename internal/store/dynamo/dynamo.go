// Package dynamo implements store.Store on an Amazon DynamoDB table keyed by
// ownerId (partition) and spiceName (sort).
package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	"bitbucket.org/sotavant/spicerack-skill/internal/logger"
	"bitbucket.org/sotavant/spicerack-skill/internal/store"
)

const (
	attrOwnerID   = "ownerId"
	attrSpiceName = "spiceName"

	defaultWaitTimeout = 2 * time.Minute
)

// API is the subset of *dynamodb.Client used by Store.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

var (
	_ store.Store        = (*Store)(nil)
	_ store.TableManager = (*Store)(nil)
)

type Store struct {
	client      API
	tableName   string
	waitTimeout time.Duration
}

type Option func(*Store)

// WithWaitTimeout bounds how long EnsureTable waits for a new table to become active.
func WithWaitTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.waitTimeout = d
		}
	}
}

func New(client API, tableName string, opts ...Option) *Store {
	s := &Store{
		client:      client,
		tableName:   tableName,
		waitTimeout: defaultWaitTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) GetSpice(ctx context.Context, ownerID, spiceName string) (*store.SpiceRecord, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       recordKey(ownerID, spiceName),
	})
	if err != nil {
		return nil, unavailable("get item", err)
	}
	if out.Item == nil {
		return nil, store.ErrNotFound
	}

	var rec store.SpiceRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, unavailable("unmarshal item", err)
	}
	return &rec, nil
}

func (s *Store) PutSpice(ctx context.Context, rec store.SpiceRecord) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal spice record: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return unavailable("put item", err)
	}

	logger.Log.Debug("spice record saved",
		zap.String("table", s.tableName),
		zap.String("spice", rec.SpiceName),
	)
	return nil
}

// EnsureTable creates the table when it is missing and blocks until it is active.
// Calling it against an existing table only describes it.
func (s *Store) EnsureTable(ctx context.Context) error {
	out, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.tableName),
	})
	if err == nil {
		if out.Table != nil && out.Table.TableStatus == types.TableStatusActive {
			return nil
		}
		return s.waitActive(ctx)
	}

	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return unavailable("describe table", err)
	}

	logger.Log.Info("creating table", zap.String("table", s.tableName))

	_, err = s.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(s.tableName),
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(attrOwnerID), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String(attrSpiceName), KeyType: types.KeyTypeRange},
		},
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(attrOwnerID), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String(attrSpiceName), AttributeType: types.ScalarAttributeTypeS},
		},
		ProvisionedThroughput: &types.ProvisionedThroughput{
			ReadCapacityUnits:  aws.Int64(5),
			WriteCapacityUnits: aws.Int64(5),
		},
	})
	if err != nil {
		// another process won the race to create it
		var inUse *types.ResourceInUseException
		if !errors.As(err, &inUse) {
			return unavailable("create table", err)
		}
	}

	return s.waitActive(ctx)
}

func (s *Store) waitActive(ctx context.Context) error {
	w := dynamodb.NewTableExistsWaiter(s.client)
	err := w.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.tableName)}, s.waitTimeout)
	if err != nil {
		return unavailable("wait for table", err)
	}
	logger.Log.Info("table is active", zap.String("table", s.tableName))
	return nil
}

func recordKey(ownerID, spiceName string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrOwnerID:   &types.AttributeValueMemberS{Value: ownerID},
		attrSpiceName: &types.AttributeValueMemberS{Value: spiceName},
	}
}

func unavailable(op string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		logger.Log.Debug("dynamodb api error",
			zap.String("op", op),
			zap.String("code", apiErr.ErrorCode()),
			zap.String("fault", apiErr.ErrorFault().String()),
		)
	}
	return fmt.Errorf("%w: %s: %w", store.ErrUnavailable, op, err)
}
