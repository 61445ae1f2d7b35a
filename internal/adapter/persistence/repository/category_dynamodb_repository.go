package repository

import (
	"context"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rotisserie/eris"
)

type categoryItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	CreatedAt string `dynamodbav:"created_at"`
}

// CategoryDynamoRepository persists product categories. PK: id (string).
type CategoryDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICategoryRepository = (*CategoryDynamoRepository)(nil)

func NewCategoryDynamoRepository(ddb DynamoAPI, tableName string) *CategoryDynamoRepository {
	return &CategoryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CategoryDynamoRepository) Create(ctx context.Context, c entities.Category) (entities.Category, error) {
	av, err := attributevalue.MarshalMap(categoryItem{ID: c.ID, Name: c.Name, CreatedAt: formatTime(c.CreatedAt)})
	if err != nil {
		return entities.Category{}, eris.Wrap(err, "marshal category")
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
		return entities.Category{}, eris.Wrapf(err, "put category %q", c.Name)
	}
	return c, nil
}

func (r *CategoryDynamoRepository) List(ctx context.Context) ([]entities.Category, error) {
	var cats []entities.Category
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, eris.Wrap(err, "scan categories")
		}
		var items []categoryItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, eris.Wrap(err, "unmarshal categories")
		}
		for _, it := range items {
			cats = append(cats, entities.Category{ID: it.ID, Name: it.Name, CreatedAt: parseTime(it.CreatedAt)})
		}
	}
	return cats, nil
}

func (r *CategoryDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, eris.Wrapf(err, "delete category %s", id)
	}
	return len(out.Attributes) > 0, nil
}
