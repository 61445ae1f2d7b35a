package repository

import (
	"context"
	"errors"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rotisserie/eris"
)

type paymentLinkItem struct {
	QuoteID     string `dynamodbav:"quote_id"`
	QuoteNumber string `dynamodbav:"quote_number"`
	URL         string `dynamodbav:"url"`
	ProviderID  string `dynamodbav:"provider_id"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// PaymentLinkDynamoRepository keeps checkout links apart from the saved quotes.
//
// Table requirements:
//   - PK: quote_id (string)
type PaymentLinkDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentLinkRepository = (*PaymentLinkDynamoRepository)(nil)

func NewPaymentLinkDynamoRepository(ddb DynamoAPI, tableName string) *PaymentLinkDynamoRepository {
	return &PaymentLinkDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentLinkDynamoRepository) Create(ctx context.Context, link entities.PaymentLink) (entities.PaymentLink, error) {
	av, err := attributevalue.MarshalMap(paymentLinkItem{
		QuoteID:     link.QuoteID,
		QuoteNumber: link.QuoteNumber,
		URL:         link.URL,
		ProviderID:  link.ProviderID,
		CreatedAt:   formatTime(link.CreatedAt),
	})
	if err != nil {
		return entities.PaymentLink{}, eris.Wrap(err, "marshal payment link")
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#quote_id)"),
		ExpressionAttributeNames: map[string]string{
			"#quote_id": "quote_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentLink{}, nil
		}
		return entities.PaymentLink{}, eris.Wrapf(err, "put payment link for quote %s", link.QuoteID)
	}
	return link, nil
}

func (r *PaymentLinkDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.PaymentLink, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quote_id": &types.AttributeValueMemberS{Value: quoteID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentLink{}, eris.Wrapf(err, "get payment link for quote %s", quoteID)
	}
	if len(out.Item) == 0 {
		return entities.PaymentLink{}, nil
	}

	var it paymentLinkItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentLink{}, eris.Wrap(err, "unmarshal payment link")
	}
	return entities.PaymentLink{
		QuoteID:     it.QuoteID,
		QuoteNumber: it.QuoteNumber,
		URL:         it.URL,
		ProviderID:  it.ProviderID,
		CreatedAt:   parseTime(it.CreatedAt),
	}, nil
}
