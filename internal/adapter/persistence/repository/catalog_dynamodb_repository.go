package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rotisserie/eris"
)

type catalogItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Brand        string `dynamodbav:"brand"`
	Description  string `dynamodbav:"description"`
	Unit         string `dynamodbav:"unit"`
	NetPrice     string `dynamodbav:"net_price"`
	DeliveryType string `dynamodbav:"delivery_type"`
	DeliveryDays int    `dynamodbav:"delivery_days"`
	Category     string `dynamodbav:"category"`
	SKU          string `dynamodbav:"sku"`
	SearchKey    string `dynamodbav:"search_key"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

type productNameItem struct {
	Name      string `dynamodbav:"name"`
	ProductID string `dynamodbav:"product_id"`
}

// CatalogDynamoRepository persists CatalogEntry records in DynamoDB.
//
// Table requirements:
//   - products: PK id (string)
//   - product_names: PK name (string) -> product_id
//
// Every write that creates or renames an entry also claims its name in
// product_names inside the same transaction, so a name can only be owned by one
// entry. search_key holds the folded name, brand and category for Search.
type CatalogDynamoRepository struct {
	ddb        DynamoAPI
	tableName  string
	namesTable string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb DynamoAPI, tableName, namesTable string) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{ddb: ddb, tableName: tableName, namesTable: namesTable}
}

func (r *CatalogDynamoRepository) Create(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
	av, err := attributevalue.MarshalMap(toCatalogItem(e))
	if err != nil {
		return entities.CatalogEntry{}, eris.Wrap(err, "marshal catalog entry")
	}
	guard, err := attributevalue.MarshalMap(productNameItem{Name: e.Name, ProductID: e.ID})
	if err != nil {
		return entities.CatalogEntry{}, eris.Wrap(err, "marshal name guard")
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.namesTable),
				Item:                     guard,
				ConditionExpression:      aws.String("attribute_not_exists(#name)"),
				ExpressionAttributeNames: map[string]string{"#name": "name"},
			}},
		},
	})
	if err != nil {
		if nameGuardFailed(err, 1) {
			return entities.CatalogEntry{}, interfaces.ErrCatalogNameTaken
		}
		return entities.CatalogEntry{}, eris.Wrapf(err, "insert catalog entry %q", e.Name)
	}
	return e, nil
}

func (r *CatalogDynamoRepository) GetByID(ctx context.Context, id string) (entities.CatalogEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CatalogEntry{}, eris.Wrapf(err, "get catalog entry %s", id)
	}
	if len(out.Item) == 0 {
		return entities.CatalogEntry{}, nil
	}
	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogEntry{}, eris.Wrap(err, "unmarshal catalog entry")
	}
	return fromCatalogItem(it), nil
}

// FindByName resolves an exact name through the name guard table.
func (r *CatalogDynamoRepository) FindByName(ctx context.Context, name string) (entities.CatalogEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.namesTable),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CatalogEntry{}, eris.Wrapf(err, "lookup catalog name %q", name)
	}
	if len(out.Item) == 0 {
		return entities.CatalogEntry{}, nil
	}
	var guard productNameItem
	if err := attributevalue.UnmarshalMap(out.Item, &guard); err != nil {
		return entities.CatalogEntry{}, eris.Wrap(err, "unmarshal name guard")
	}
	return r.GetByID(ctx, guard.ProductID)
}

// Search scans for entries whose folded name, brand or category contains the
// folded query. Results are ordered by name and capped at limit.
func (r *CatalogDynamoRepository) Search(ctx context.Context, query string, limit int) ([]entities.CatalogEntry, error) {
	q := foldText(query)
	if q == "" {
		return []entities.CatalogEntry{}, nil
	}
	var found []entities.CatalogEntry
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("contains(#search_key, :q)"),
		ExpressionAttributeNames: map[string]string{"#search_key": "search_key"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":q": &types.AttributeValueMemberS{Value: q},
		},
	})
	for p.HasMorePages() && (limit <= 0 || len(found) < limit) {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, eris.Wrap(err, "search catalog")
		}
		var items []catalogItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, eris.Wrap(err, "unmarshal catalog entries")
		}
		for _, it := range items {
			found = append(found, fromCatalogItem(it))
		}
	}
	sortEntries(found)
	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}
	return found, nil
}

func (r *CatalogDynamoRepository) List(ctx context.Context) ([]entities.CatalogEntry, error) {
	var entries []entities.CatalogEntry
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, eris.Wrap(err, "scan catalog")
		}
		var items []catalogItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, eris.Wrap(err, "unmarshal catalog entries")
		}
		for _, it := range items {
			entries = append(entries, fromCatalogItem(it))
		}
	}
	sortEntries(entries)
	return entries, nil
}

// Update applies patch to the stored entry. The SKU is never touched. A rename
// moves the name guard in the same transaction.
func (r *CatalogDynamoRepository) Update(ctx context.Context, id string, patch entities.CatalogEntryPatch) (entities.CatalogEntry, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	if current.ID == "" {
		return entities.CatalogEntry{}, nil
	}

	next := applyCatalogPatch(current, patch, time.Now().UTC())
	av, err := attributevalue.MarshalMap(toCatalogItem(next))
	if err != nil {
		return entities.CatalogEntry{}, eris.Wrap(err, "marshal catalog entry")
	}
	put := types.TransactWriteItem{Put: &types.Put{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       aws.String("attribute_exists(#id) AND #sku = :sku"),
		ExpressionAttributeNames:  map[string]string{"#id": "id", "#sku": "sku"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":sku": &types.AttributeValueMemberS{Value: current.SKU}},
	}}

	if next.Name == current.Name {
		_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: []types.TransactWriteItem{put}})
		if err != nil {
			if nameGuardFailed(err, 0) {
				return entities.CatalogEntry{}, nil
			}
			return entities.CatalogEntry{}, eris.Wrapf(err, "update catalog entry %s", id)
		}
		return next, nil
	}

	guard, err := attributevalue.MarshalMap(productNameItem{Name: next.Name, ProductID: id})
	if err != nil {
		return entities.CatalogEntry{}, eris.Wrap(err, "marshal name guard")
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			put,
			{Put: &types.Put{
				TableName:                aws.String(r.namesTable),
				Item:                     guard,
				ConditionExpression:      aws.String("attribute_not_exists(#name)"),
				ExpressionAttributeNames: map[string]string{"#name": "name"},
			}},
			{Delete: &types.Delete{
				TableName: aws.String(r.namesTable),
				Key: map[string]types.AttributeValue{
					"name": &types.AttributeValueMemberS{Value: current.Name},
				},
			}},
		},
	})
	if err != nil {
		if nameGuardFailed(err, 1) {
			return entities.CatalogEntry{}, interfaces.ErrCatalogNameTaken
		}
		if nameGuardFailed(err, 0) {
			return entities.CatalogEntry{}, nil
		}
		return entities.CatalogEntry{}, eris.Wrapf(err, "rename catalog entry %s", id)
	}
	return next, nil
}

func (r *CatalogDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if current.ID == "" {
		return false, nil
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Delete: &types.Delete{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: id},
				},
				ConditionExpression:      aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Delete: &types.Delete{
				TableName: aws.String(r.namesTable),
				Key: map[string]types.AttributeValue{
					"name": &types.AttributeValueMemberS{Value: current.Name},
				},
			}},
		},
	})
	if err != nil {
		if nameGuardFailed(err, 0) {
			return false, nil
		}
		return false, eris.Wrapf(err, "delete catalog entry %s", id)
	}
	return true, nil
}

// nameGuardFailed reports whether the transaction was cancelled because the
// condition on item idx failed.
func nameGuardFailed(err error, idx int) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	if idx >= len(tce.CancellationReasons) {
		return false
	}
	return aws.ToString(tce.CancellationReasons[idx].Code) == "ConditionalCheckFailed"
}

func applyCatalogPatch(e entities.CatalogEntry, p entities.CatalogEntryPatch, now time.Time) entities.CatalogEntry {
	if p.Name != nil {
		e.Name = strings.TrimSpace(*p.Name)
	}
	if p.Brand != nil {
		e.Brand = *p.Brand
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Unit != nil {
		e.Unit = *p.Unit
	}
	if p.NetPrice != nil {
		e.NetPrice = *p.NetPrice
	}
	if p.DeliveryType != nil {
		e.DeliveryType = *p.DeliveryType
	}
	if p.DeliveryDays != nil {
		e.DeliveryDays = *p.DeliveryDays
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if e.DeliveryType != entities.DeliveryImport {
		e.DeliveryDays = 0
	}
	e.UpdatedAt = now
	return e
}

func sortEntries(entries []entities.CatalogEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return foldText(entries[i].Name) < foldText(entries[j].Name)
	})
}

func toCatalogItem(e entities.CatalogEntry) catalogItem {
	return catalogItem{
		ID:           e.ID,
		Name:         e.Name,
		Brand:        e.Brand,
		Description:  e.Description,
		Unit:         string(e.Unit),
		NetPrice:     e.NetPrice.String(),
		DeliveryType: string(e.DeliveryType),
		DeliveryDays: e.DeliveryDays,
		Category:     e.Category,
		SKU:          e.SKU,
		SearchKey:    foldText(e.Name + " " + e.Brand + " " + e.Category),
		CreatedAt:    formatTime(e.CreatedAt),
		UpdatedAt:    formatTime(e.UpdatedAt),
	}
}

func fromCatalogItem(it catalogItem) entities.CatalogEntry {
	return entities.CatalogEntry{
		ID:           it.ID,
		Name:         it.Name,
		Brand:        it.Brand,
		Description:  it.Description,
		Unit:         entities.UnitType(it.Unit),
		NetPrice:     parseDecimal(it.NetPrice),
		DeliveryType: entities.DeliveryType(it.DeliveryType),
		DeliveryDays: it.DeliveryDays,
		Category:     it.Category,
		SKU:          it.SKU,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
