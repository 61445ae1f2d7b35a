package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rotisserie/eris"
)

const (
	pendingStatusIndex = "status-index"
	batchWriteLimit    = 25
	batchWriteRetries  = 5
)

type pendingProductItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	Brand         string `dynamodbav:"brand"`
	Description   string `dynamodbav:"description"`
	SuggestedUnit string `dynamodbav:"suggested_unit"`
	SpecDetails   string `dynamodbav:"spec_details,omitempty"`
	Category      string `dynamodbav:"category,omitempty"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// PendingProductDynamoRepository persists PendingReviewRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
type PendingProductDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPendingProductRepository = (*PendingProductDynamoRepository)(nil)

func NewPendingProductDynamoRepository(ddb DynamoAPI, tableName string) *PendingProductDynamoRepository {
	return &PendingProductDynamoRepository{ddb: ddb, tableName: tableName}
}

// CreateBatch writes the records in chunks of 25, resubmitting unprocessed
// items a bounded number of times.
func (r *PendingProductDynamoRepository) CreateBatch(ctx context.Context, records []entities.PendingReviewRecord) error {
	for start := 0; start < len(records); start += batchWriteLimit {
		end := min(start+batchWriteLimit, len(records))

		reqs := make([]types.WriteRequest, 0, end-start)
		for _, rec := range records[start:end] {
			av, err := attributevalue.MarshalMap(toPendingProductItem(rec))
			if err != nil {
				return eris.Wrap(err, "marshal pending product")
			}
			reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}

		pending := map[string][]types.WriteRequest{r.tableName: reqs}
		for attempt := 0; len(pending) > 0; attempt++ {
			if attempt == batchWriteRetries {
				return eris.Errorf("pending products: %d items left unprocessed", len(pending[r.tableName]))
			}
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return eris.Wrap(err, "batch write pending products")
			}
			pending = out.UnprocessedItems
			if len(pending) > 0 {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(time.Duration(attempt+1) * 100 * time.Millisecond):
				}
			}
		}
	}
	return nil
}

func (r *PendingProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.PendingReviewRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PendingReviewRecord{}, eris.Wrapf(err, "get pending product %s", id)
	}
	if len(out.Item) == 0 {
		return entities.PendingReviewRecord{}, nil
	}
	var it pendingProductItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PendingReviewRecord{}, eris.Wrap(err, "unmarshal pending product")
	}
	return fromPendingProductItem(it), nil
}

// ListByStatus returns the records in a status, newest first.
func (r *PendingProductDynamoRepository) ListByStatus(ctx context.Context, status entities.PendingStatus) ([]entities.PendingReviewRecord, error) {
	var records []entities.PendingReviewRecord
	p := dynamodb.NewQueryPaginator(r.ddb, r.statusQuery(status, types.SelectAllAttributes))
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, eris.Wrapf(err, "query pending products by status %s", status)
		}
		var items []pendingProductItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, eris.Wrap(err, "unmarshal pending products")
		}
		for _, it := range items {
			records = append(records, fromPendingProductItem(it))
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

func (r *PendingProductDynamoRepository) CountByStatus(ctx context.Context, status entities.PendingStatus) (int, error) {
	total := 0
	p := dynamodb.NewQueryPaginator(r.ddb, r.statusQuery(status, types.SelectCount))
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, eris.Wrapf(err, "count pending products by status %s", status)
		}
		total += int(page.Count)
	}
	return total, nil
}

// UpdateStatus moves a record between statuses. It returns a zero value when
// the record is missing or no longer in the expected status.
func (r *PendingProductDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.PendingStatus) (entities.PendingReviewRecord, error) {
	now := formatTime(time.Now())
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PendingReviewRecord{}, nil
		}
		return entities.PendingReviewRecord{}, eris.Wrapf(err, "update pending product %s", id)
	}
	if len(out.Attributes) == 0 {
		return entities.PendingReviewRecord{}, nil
	}
	var it pendingProductItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PendingReviewRecord{}, eris.Wrap(err, "unmarshal pending product")
	}
	return fromPendingProductItem(it), nil
}

func (r *PendingProductDynamoRepository) statusQuery(status entities.PendingStatus, sel types.Select) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(pendingStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		Select: sel,
	}
}

func toPendingProductItem(p entities.PendingReviewRecord) pendingProductItem {
	return pendingProductItem{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Description:   p.Description,
		SuggestedUnit: string(p.SuggestedUnit),
		SpecDetails:   p.SpecDetails,
		Category:      p.Category,
		Status:        string(p.Status),
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
}

func fromPendingProductItem(it pendingProductItem) entities.PendingReviewRecord {
	return entities.PendingReviewRecord{
		ID:            it.ID,
		Name:          it.Name,
		Brand:         it.Brand,
		Description:   it.Description,
		SuggestedUnit: entities.UnitType(it.SuggestedUnit),
		SpecDetails:   it.SpecDetails,
		Category:      it.Category,
		Status:        entities.PendingStatus(it.Status),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
