package repository

import (
	"context"
	"time"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rotisserie/eris"
)

type lineItemAttr struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Brand        string `dynamodbav:"brand"`
	Description  string `dynamodbav:"description"`
	Quantity     int    `dynamodbav:"quantity"`
	Unit         string `dynamodbav:"unit"`
	NetPrice     string `dynamodbav:"net_price"`
	DeliveryType string `dynamodbav:"delivery_type"`
	DeliveryDays int    `dynamodbav:"delivery_days"`
	Category     string `dynamodbav:"category,omitempty"`
	SKU          string `dynamodbav:"sku,omitempty"`
}

type quoteInfoAttr struct {
	CustomerName    string `dynamodbav:"customer_name"`
	CustomerCompany string `dynamodbav:"customer_company"`
	CustomerRut     string `dynamodbav:"customer_rut"`
	CustomerGiro    string `dynamodbav:"customer_giro"`
	CustomerEmail   string `dynamodbav:"customer_email"`
	CustomerPhone   string `dynamodbav:"customer_phone"`
	QuoteNumber     string `dynamodbav:"quote_number"`
	Date            string `dynamodbav:"date"`
	TaxRate         string `dynamodbav:"tax_rate"`
}

type quoteItem struct {
	ID              string         `dynamodbav:"id"`
	QuoteNumber     string         `dynamodbav:"quote_number"`
	CustomerName    string         `dynamodbav:"customer_name"`
	CustomerCompany string         `dynamodbav:"customer_company"`
	Date            string         `dynamodbav:"date"`
	Products        []lineItemAttr `dynamodbav:"products"`
	Info            quoteInfoAttr  `dynamodbav:"info"`
	TotalNet        string         `dynamodbav:"total_net"`
	TotalTax        string         `dynamodbav:"total_tax"`
	Total           string         `dynamodbav:"total"`
	CreatedAt       string         `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists SavedQuote snapshots in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Quotes are keyed by a generated id rather than the quote number, because
// quote numbers are short and may repeat.
type QuoteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.SavedQuote) (entities.SavedQuote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.SavedQuote{}, eris.Wrap(err, "marshal quote")
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
		return entities.SavedQuote{}, eris.Wrapf(err, "put quote %s", q.QuoteNumber)
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.SavedQuote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SavedQuote{}, eris.Wrapf(err, "get quote %s", id)
	}
	if len(out.Item) == 0 {
		return entities.SavedQuote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SavedQuote{}, eris.Wrap(err, "unmarshal quote")
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.SavedQuote, error) {
	var quotes []entities.SavedQuote
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, eris.Wrap(err, "scan quotes")
		}
		var items []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, eris.Wrap(err, "unmarshal quotes")
		}
		for _, it := range items {
			quotes = append(quotes, fromQuoteItem(it))
		}
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, eris.Wrapf(err, "delete quote %s", id)
	}
	return len(out.Attributes) > 0, nil
}

func toLineItemAttrs(items []entities.LineItem) []lineItemAttr {
	out := make([]lineItemAttr, 0, len(items))
	for _, it := range items {
		out = append(out, lineItemAttr{
			ID:           it.ID,
			Name:         it.Name,
			Brand:        it.Brand,
			Description:  it.Description,
			Quantity:     it.Quantity,
			Unit:         string(it.Unit),
			NetPrice:     it.NetPrice.String(),
			DeliveryType: string(it.DeliveryType),
			DeliveryDays: it.DeliveryDays,
			Category:     it.Category,
			SKU:          it.SKU,
		})
	}
	return out
}

func fromLineItemAttrs(attrs []lineItemAttr) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, entities.LineItem{
			ID:           a.ID,
			Name:         a.Name,
			Brand:        a.Brand,
			Description:  a.Description,
			Quantity:     a.Quantity,
			Unit:         entities.UnitType(a.Unit),
			NetPrice:     parseDecimal(a.NetPrice),
			DeliveryType: entities.DeliveryType(a.DeliveryType),
			DeliveryDays: a.DeliveryDays,
			Category:     a.Category,
			SKU:          a.SKU,
		})
	}
	return out
}

func toQuoteItem(q entities.SavedQuote) quoteItem {
	return quoteItem{
		ID:              q.ID,
		QuoteNumber:     q.QuoteNumber,
		CustomerName:    q.CustomerName,
		CustomerCompany: q.CustomerCompany,
		Date:            q.Date,
		Products:        toLineItemAttrs(q.Products),
		Info: quoteInfoAttr{
			CustomerName:    q.Info.CustomerName,
			CustomerCompany: q.Info.CustomerCompany,
			CustomerRut:     q.Info.CustomerRut,
			CustomerGiro:    q.Info.CustomerGiro,
			CustomerEmail:   q.Info.CustomerEmail,
			CustomerPhone:   q.Info.CustomerPhone,
			QuoteNumber:     q.Info.QuoteNumber,
			Date:            q.Info.Date,
			TaxRate:         q.Info.TaxRate.String(),
		},
		TotalNet:  q.TotalNet.String(),
		TotalTax:  q.TotalTax.String(),
		Total:     q.Total.String(),
		CreatedAt: formatTime(q.CreatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.SavedQuote {
	taxRate := parseDecimal(it.Info.TaxRate)
	if taxRate.IsZero() {
		taxRate = entities.DefaultTaxRate
	}
	var createdAt time.Time
	if it.CreatedAt != "" {
		createdAt = parseTime(it.CreatedAt)
	}
	return entities.SavedQuote{
		ID:              it.ID,
		QuoteNumber:     it.QuoteNumber,
		CustomerName:    it.CustomerName,
		CustomerCompany: it.CustomerCompany,
		Date:            it.Date,
		Products:        fromLineItemAttrs(it.Products),
		Info: entities.QuoteInfo{
			CustomerName:    it.Info.CustomerName,
			CustomerCompany: it.Info.CustomerCompany,
			CustomerRut:     it.Info.CustomerRut,
			CustomerGiro:    it.Info.CustomerGiro,
			CustomerEmail:   it.Info.CustomerEmail,
			CustomerPhone:   it.Info.CustomerPhone,
			QuoteNumber:     it.Info.QuoteNumber,
			Date:            it.Info.Date,
			TaxRate:         taxRate,
		},
		TotalNet:  parseDecimal(it.TotalNet),
		TotalTax:  parseDecimal(it.TotalTax),
		Total:     parseDecimal(it.Total),
		CreatedAt: createdAt,
	}
}
