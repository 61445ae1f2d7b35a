package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry() entities.CatalogEntry {
	now := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)
	return entities.CatalogEntry{
		ID:           "p-1",
		Name:         "Interruptor Termomagnético 2x16A",
		Brand:        "Schneider",
		Unit:         entities.UnitPiece,
		NetPrice:     decimal.RequireFromString("12990.5"),
		DeliveryType: entities.DeliveryImmediate,
		Category:     "Protecciones",
		SKU:          "SCH-PRO-0001",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func cancelled(codes ...string) error {
	reasons := make([]types.CancellationReason, 0, len(codes))
	for _, c := range codes {
		reasons = append(reasons, types.CancellationReason{Code: aws.String(c)})
	}
	return &types.TransactionCanceledException{CancellationReasons: reasons}
}

func TestCatalogDynamoRepository_Create(t *testing.T) {
	t.Run("writes entry and name guard together", func(t *testing.T) {
		fake := &fakeDynamo{transactWriteItems: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			return &dynamodb.TransactWriteItemsOutput{}, nil
		}}
		repo := NewCatalogDynamoRepository(fake, "products", "product_names")

		_, err := repo.Create(context.Background(), sampleEntry())
		require.NoError(t, err)
		require.Len(t, fake.transactions, 1)

		items := fake.transactions[0].TransactItems
		require.Len(t, items, 2)
		assert.Equal(t, "products", aws.ToString(items[0].Put.TableName))
		assert.Equal(t, "product_names", aws.ToString(items[1].Put.TableName))

		var guard productNameItem
		require.NoError(t, attributevalue.UnmarshalMap(items[1].Put.Item, &guard))
		assert.Equal(t, productNameItem{Name: "Interruptor Termomagnético 2x16A", ProductID: "p-1"}, guard)

		var stored catalogItem
		require.NoError(t, attributevalue.UnmarshalMap(items[0].Put.Item, &stored))
		assert.Equal(t, "interruptor termomagnetico 2x16a schneider protecciones", stored.SearchKey)
		assert.Equal(t, "12990.5", stored.NetPrice)
	})

	t.Run("name guard conflict", func(t *testing.T) {
		fake := &fakeDynamo{transactWriteItems: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			return nil, cancelled("None", "ConditionalCheckFailed")
		}}
		repo := NewCatalogDynamoRepository(fake, "products", "product_names")

		_, err := repo.Create(context.Background(), sampleEntry())
		assert.ErrorIs(t, err, interfaces.ErrCatalogNameTaken)
	})

	t.Run("other failures are wrapped", func(t *testing.T) {
		cause := errors.New("throttled")
		fake := &fakeDynamo{transactWriteItems: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			return nil, cause
		}}
		repo := NewCatalogDynamoRepository(fake, "products", "product_names")

		_, err := repo.Create(context.Background(), sampleEntry())
		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, interfaces.ErrCatalogNameTaken)
	})
}

func TestCatalogDynamoRepository_FindByName(t *testing.T) {
	entry := sampleEntry()
	stored, err := attributevalue.MarshalMap(toCatalogItem(entry))
	require.NoError(t, err)

	fake := &fakeDynamo{getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		switch aws.ToString(in.TableName) {
		case "product_names":
			name := in.Key["name"].(*types.AttributeValueMemberS).Value
			if name != entry.Name {
				return &dynamodb.GetItemOutput{}, nil
			}
			guard, _ := attributevalue.MarshalMap(productNameItem{Name: name, ProductID: entry.ID})
			return &dynamodb.GetItemOutput{Item: guard}, nil
		case "products":
			return &dynamodb.GetItemOutput{Item: stored}, nil
		}
		return nil, errNotStubbed
	}}
	repo := NewCatalogDynamoRepository(fake, "products", "product_names")

	got, err := repo.FindByName(context.Background(), entry.Name)
	require.NoError(t, err)
	assert.Equal(t, entry.SKU, got.SKU)
	assert.True(t, entry.NetPrice.Equal(got.NetPrice))

	missing, err := repo.FindByName(context.Background(), "no existe")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestCatalogDynamoRepository_Search(t *testing.T) {
	a, _ := attributevalue.MarshalMap(toCatalogItem(entities.CatalogEntry{ID: "2", Name: "Zócalo"}))
	b, _ := attributevalue.MarshalMap(toCatalogItem(entities.CatalogEntry{ID: "1", Name: "Argolla"}))

	var filterValue string
	fake := &fakeDynamo{scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
		filterValue = in.ExpressionAttributeValues[":q"].(*types.AttributeValueMemberS).Value
		return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{a, b}}, nil
	}}
	repo := NewCatalogDynamoRepository(fake, "products", "product_names")

	got, err := repo.Search(context.Background(), "  ILUMINACIÓN ", 1)
	require.NoError(t, err)
	assert.Equal(t, "iluminacion", filterValue)
	require.Len(t, got, 1)
	assert.Equal(t, "Argolla", got[0].Name)
}

func TestCatalogDynamoRepository_Update(t *testing.T) {
	entry := sampleEntry()
	stored, err := attributevalue.MarshalMap(toCatalogItem(entry))
	require.NoError(t, err)
	getStored := func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		return &dynamodb.GetItemOutput{Item: stored}, nil
	}

	t.Run("rename moves the guard and keeps the sku", func(t *testing.T) {
		fake := &fakeDynamo{
			getItem: getStored,
			transactWriteItems: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return &dynamodb.TransactWriteItemsOutput{}, nil
			},
		}
		repo := NewCatalogDynamoRepository(fake, "products", "product_names")

		name := "Interruptor 2x16A"
		got, err := repo.Update(context.Background(), "p-1", entities.CatalogEntryPatch{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, name, got.Name)
		assert.Equal(t, "SCH-PRO-0001", got.SKU)

		items := fake.transactions[0].TransactItems
		require.Len(t, items, 3)
		assert.Equal(t, entry.Name, items[2].Delete.Key["name"].(*types.AttributeValueMemberS).Value)
	})

	t.Run("rename onto a taken name", func(t *testing.T) {
		fake := &fakeDynamo{
			getItem: getStored,
			transactWriteItems: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, cancelled("None", "ConditionalCheckFailed", "None")
			},
		}
		repo := NewCatalogDynamoRepository(fake, "products", "product_names")

		name := "Otro"
		_, err := repo.Update(context.Background(), "p-1", entities.CatalogEntryPatch{Name: &name})
		assert.ErrorIs(t, err, interfaces.ErrCatalogNameTaken)
	})

	t.Run("missing entry", func(t *testing.T) {
		fake := &fakeDynamo{getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		}}
		repo := NewCatalogDynamoRepository(fake, "products", "product_names")

		got, err := repo.Update(context.Background(), "p-1", entities.CatalogEntryPatch{})
		require.NoError(t, err)
		assert.Empty(t, got.ID)
		assert.Empty(t, fake.transactions)
	})
}
