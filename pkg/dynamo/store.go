package dynamo

import (
	"context"
	"errors"
	"time"

	"github.com/asecurityteam/items/pkg/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

//go:generate mockgen -destination mock_api_test.go -package dynamo github.com/asecurityteam/items/pkg/dynamo API

const (
	keyAttribute     = "id"
	tableReadyMaxDur = 2 * time.Minute
)

// API is the subset of the DynamoDB client used by the Store. It is
// satisfied by *dynamodb.Client.
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// Store implements domain.ItemStore on a single DynamoDB table.
type Store struct {
	Client    API
	TableName string
}

var _ domain.ItemStore = (*Store)(nil)

func (s *Store) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		keyAttribute: &types.AttributeValueMemberS{Value: id},
	}
}

// Put writes the item, replacing any existing row with the same id.
func (s *Store) Put(ctx context.Context, item domain.Item) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return domain.BackendError{Op: "dynamodb.MarshalMap", Reason: err}
	}
	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.TableName),
		Item:      av,
	})
	if err != nil {
		return domain.BackendError{Op: "dynamodb.PutItem", Reason: err}
	}
	return nil
}

// Get fetches a single item by id.
func (s *Store) Get(ctx context.Context, id string) (domain.Item, error) {
	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.TableName),
		Key:       s.key(id),
	})
	if err != nil {
		return domain.Item{}, domain.BackendError{Op: "dynamodb.GetItem", Reason: err}
	}
	if out.Item == nil {
		return domain.Item{}, domain.NotFoundError{ID: id}
	}
	var item domain.Item
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return domain.Item{}, domain.BackendError{Op: "dynamodb.UnmarshalMap", Reason: err}
	}
	return item, nil
}

// Scan reads the whole table, following every page the backend returns.
// The result is never nil.
func (s *Store) Scan(ctx context.Context) ([]domain.Item, error) {
	items := make([]domain.Item, 0)
	pages := dynamodb.NewScanPaginator(s.Client, &dynamodb.ScanInput{
		TableName: aws.String(s.TableName),
	})
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, domain.BackendError{Op: "dynamodb.Scan", Reason: err}
		}
		var batch []domain.Item
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, domain.BackendError{Op: "dynamodb.UnmarshalListOfMaps", Reason: err}
		}
		items = append(items, batch...)
	}
	return items, nil
}

// Update rewrites nome, descricao and updatedAt without checking that the
// row exists. An empty descricao removes the attribute.
func (s *Store) Update(ctx context.Context, id string, changes domain.ItemChanges) (domain.Item, error) {
	expr := "SET nome = :n, updatedAt = :t"
	values := map[string]types.AttributeValue{
		":n": &types.AttributeValueMemberS{Value: changes.Nome},
		":t": &types.AttributeValueMemberS{Value: changes.UpdatedAt},
	}
	if changes.Descricao != "" {
		expr += ", descricao = :d"
		values[":d"] = &types.AttributeValueMemberS{Value: changes.Descricao}
	} else {
		expr += " REMOVE descricao"
	}
	out, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.TableName),
		Key:                       s.key(id),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return domain.Item{}, domain.BackendError{Op: "dynamodb.UpdateItem", Reason: err}
	}
	var item domain.Item
	if err := attributevalue.UnmarshalMap(out.Attributes, &item); err != nil {
		return domain.Item{}, domain.BackendError{Op: "dynamodb.UnmarshalMap", Reason: err}
	}
	return item, nil
}

// Delete removes the row with the given id, if any.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.TableName),
		Key:       s.key(id),
	})
	if err != nil {
		return domain.BackendError{Op: "dynamodb.DeleteItem", Reason: err}
	}
	return nil
}

// EnsureTable creates the table when DescribeTable reports it missing and
// waits for it to become active. An existing table is left untouched.
func (s *Store) EnsureTable(ctx context.Context) error {
	_, err := s.Client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.TableName)})
	if err == nil {
		return nil
	}
	var rnfe *types.ResourceNotFoundException
	if !errors.As(err, &rnfe) {
		return domain.BackendError{Op: "dynamodb.DescribeTable", Reason: err}
	}
	_, err = s.Client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(s.TableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(keyAttribute), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(keyAttribute), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return nil
		}
		return domain.BackendError{Op: "dynamodb.CreateTable", Reason: err}
	}
	waiter := dynamodb.NewTableExistsWaiter(s.Client)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.TableName)}, tableReadyMaxDur); err != nil {
		return domain.BackendError{Op: "dynamodb.DescribeTable", Reason: err}
	}
	return nil
}
