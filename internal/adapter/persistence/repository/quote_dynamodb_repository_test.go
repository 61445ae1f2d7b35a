package repository

import (
	"context"
	"testing"
	"time"

	"cotizador_inprotar/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteDynamoRepository_CreateAndGet(t *testing.T) {
	var stored map[string]types.AttributeValue
	fake := &fakeDynamo{
		putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			stored = in.Item
			return &dynamodb.PutItemOutput{}, nil
		},
		getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: stored}, nil
		},
	}
	repo := NewQuoteDynamoRepository(fake, "quotes")

	q := entities.SavedQuote{
		ID:          "q-1",
		QuoteNumber: "COT-4821",
		Products: []entities.LineItem{{
			ID: "a", Name: "Cable", Quantity: 100, Unit: entities.UnitMeter,
			NetPrice: decimal.RequireFromString("450.25"), DeliveryType: entities.DeliveryImport, DeliveryDays: 15, SKU: "INP-SIN-0001",
		}},
		Info:      entities.QuoteInfo{CustomerRut: "76.354.321-9", TaxRate: entities.DefaultTaxRate},
		Total:     decimal.RequireFromString("53579.75"),
		CreatedAt: time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC),
	}
	_, err := repo.Create(context.Background(), q)
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), "q-1")
	require.NoError(t, err)
	assert.Equal(t, "COT-4821", got.QuoteNumber)
	require.Len(t, got.Products, 1)
	assert.True(t, got.Products[0].NetPrice.Equal(decimal.RequireFromString("450.25")))
	assert.Equal(t, "INP-SIN-0001", got.Products[0].SKU)
	assert.True(t, got.Total.Equal(q.Total))
	assert.True(t, got.Info.TaxRate.Equal(entities.DefaultTaxRate))
	assert.True(t, got.CreatedAt.Equal(q.CreatedAt))
}

func TestQuoteDynamoRepository_Delete(t *testing.T) {
	fake := &fakeDynamo{deleteItem: func(in *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
		if in.Key["id"].(*types.AttributeValueMemberS).Value == "q-1" {
			return &dynamodb.DeleteItemOutput{Attributes: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "q-1"}}}, nil
		}
		return &dynamodb.DeleteItemOutput{}, nil
	}}
	repo := NewQuoteDynamoRepository(fake, "quotes")

	ok, err := repo.Delete(context.Background(), "q-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(context.Background(), "q-2")
	require.NoError(t, err)
	assert.False(t, ok)
}
