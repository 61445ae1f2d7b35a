package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cotizador_inprotar/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingProductDynamoRepository_CreateBatch(t *testing.T) {
	records := make([]entities.PendingReviewRecord, 30)
	for i := range records {
		records[i] = entities.PendingReviewRecord{ID: fmt.Sprintf("p-%d", i), Status: entities.PendingStatusPending}
	}

	var sizes []int
	retried := false
	fake := &fakeDynamo{batchWriteItem: func(in *dynamodb.BatchWriteItemInput) (*dynamodb.BatchWriteItemOutput, error) {
		reqs := in.RequestItems["pending_products"]
		sizes = append(sizes, len(reqs))
		if !retried && len(reqs) == 25 {
			retried = true
			return &dynamodb.BatchWriteItemOutput{UnprocessedItems: map[string][]types.WriteRequest{
				"pending_products": reqs[:2],
			}}, nil
		}
		return &dynamodb.BatchWriteItemOutput{}, nil
	}}
	repo := NewPendingProductDynamoRepository(fake, "pending_products")

	require.NoError(t, repo.CreateBatch(context.Background(), records))
	assert.Equal(t, []int{25, 2, 5}, sizes)
}

func TestPendingProductDynamoRepository_UpdateStatus(t *testing.T) {
	t.Run("status moved", func(t *testing.T) {
		fake := &fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			attrs, _ := attributevalue.MarshalMap(pendingProductItem{ID: "p-1", Status: "approved"})
			return &dynamodb.UpdateItemOutput{Attributes: attrs}, nil
		}}
		repo := NewPendingProductDynamoRepository(fake, "pending_products")

		got, err := repo.UpdateStatus(context.Background(), "p-1", entities.PendingStatusPending, entities.PendingStatusApproved)
		require.NoError(t, err)
		assert.Equal(t, entities.PendingStatusApproved, got.Status)

		in := fake.updates[0]
		assert.Equal(t, "attribute_exists(#id) AND #status = :from", aws.ToString(in.ConditionExpression))
		assert.Equal(t, "pending", in.ExpressionAttributeValues[":from"].(*types.AttributeValueMemberS).Value)
	})

	t.Run("condition failed yields zero value", func(t *testing.T) {
		fake := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		}}
		repo := NewPendingProductDynamoRepository(fake, "pending_products")

		got, err := repo.UpdateStatus(context.Background(), "p-1", entities.PendingStatusPending, entities.PendingStatusRejected)
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})
}

func TestPendingProductDynamoRepository_ListByStatus(t *testing.T) {
	older, _ := attributevalue.MarshalMap(toPendingProductItem(entities.PendingReviewRecord{ID: "old", CreatedAt: time.Unix(100, 0)}))
	newer, _ := attributevalue.MarshalMap(toPendingProductItem(entities.PendingReviewRecord{ID: "new", CreatedAt: time.Unix(200, 0)}))

	fake := &fakeDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		assert.Equal(t, pendingStatusIndex, aws.ToString(in.IndexName))
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{older, newer}}, nil
	}}
	repo := NewPendingProductDynamoRepository(fake, "pending_products")

	got, err := repo.ListByStatus(context.Background(), entities.PendingStatusPending)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)
}
