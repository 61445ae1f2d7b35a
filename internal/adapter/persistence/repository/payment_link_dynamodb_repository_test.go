package repository

import (
	"context"
	"testing"
	"time"

	"cotizador_inprotar/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentLinkDynamoRepository_CreateAndGet(t *testing.T) {
	var stored map[string]types.AttributeValue
	var put *dynamodb.PutItemInput
	fake := &fakeDynamo{
		putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			put = in
			stored = in.Item
			return &dynamodb.PutItemOutput{}, nil
		},
		getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			if in.Key["quote_id"].(*types.AttributeValueMemberS).Value != "q-1" {
				return &dynamodb.GetItemOutput{}, nil
			}
			return &dynamodb.GetItemOutput{Item: stored}, nil
		},
	}
	repo := NewPaymentLinkDynamoRepository(fake, "payment_links")

	link := entities.PaymentLink{
		QuoteID: "q-1", QuoteNumber: "COT-4821", URL: "https://mp/checkout", ProviderID: "pref-1",
		CreatedAt: time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC),
	}
	created, err := repo.Create(context.Background(), link)
	require.NoError(t, err)
	assert.Equal(t, "q-1", created.QuoteID)
	assert.Equal(t, "payment_links", aws.ToString(put.TableName))
	assert.Equal(t, "attribute_not_exists(#quote_id)", aws.ToString(put.ConditionExpression))

	got, err := repo.GetByQuoteID(context.Background(), "q-1")
	require.NoError(t, err)
	assert.Equal(t, "COT-4821", got.QuoteNumber)
	assert.Equal(t, "https://mp/checkout", got.URL)
	assert.Equal(t, "pref-1", got.ProviderID)
	assert.True(t, got.CreatedAt.Equal(link.CreatedAt))

	missing, err := repo.GetByQuoteID(context.Background(), "q-2")
	require.NoError(t, err)
	assert.Empty(t, missing.QuoteID)
}

func TestPaymentLinkDynamoRepository_CreateConflict(t *testing.T) {
	fake := &fakeDynamo{putItem: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
		return nil, &types.ConditionalCheckFailedException{}
	}}
	repo := NewPaymentLinkDynamoRepository(fake, "payment_links")

	got, err := repo.Create(context.Background(), entities.PaymentLink{QuoteID: "q-1", URL: "https://mp/second"})
	require.NoError(t, err)
	assert.Empty(t, got.QuoteID)
}
