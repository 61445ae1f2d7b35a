package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rotisserie/eris"
)

// SkuDynamoSequencer hands out SKUs of the form BBB-CCC-NNNN, where BBB and CCC
// come from brand and category and NNNN is an atomic counter per pair.
//
// Table requirements:
//   - PK: prefix (string), e.g. "SCH-PRO"
//   - seq (number), incremented with ADD
type SkuDynamoSequencer struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISkuSequencer = (*SkuDynamoSequencer)(nil)

func NewSkuDynamoSequencer(ddb DynamoAPI, tableName string) *SkuDynamoSequencer {
	return &SkuDynamoSequencer{ddb: ddb, tableName: tableName}
}

// NextSku increments the counter with a single UpdateItem, so concurrent callers
// for the same pair never observe the same value.
func (s *SkuDynamoSequencer) NextSku(ctx context.Context, brand, category string) (string, error) {
	prefix := SkuPrefix(brand, category)
	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"prefix": &types.AttributeValueMemberS{Value: prefix},
		},
		UpdateExpression:         aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{"#seq": "seq"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return "", eris.Wrapf(err, "next sku for %s", prefix)
	}
	raw, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return "", eris.Errorf("sku counter %s returned no value", prefix)
	}
	n, err := strconv.ParseInt(raw.Value, 10, 64)
	if err != nil {
		return "", eris.Wrapf(err, "parse sku counter %s", prefix)
	}
	return fmt.Sprintf("%s-%04d", prefix, n), nil
}

// SkuPrefix builds the BBB-CCC part of a SKU. Empty values fall back to the
// catalog defaults; short values are padded with X.
func SkuPrefix(brand, category string) string {
	if strings.TrimSpace(brand) == "" {
		brand = entities.DefaultBrand
	}
	if strings.TrimSpace(category) == "" {
		category = entities.DefaultCategory
	}
	return skuSegment(brand) + "-" + skuSegment(category)
}

func skuSegment(s string) string {
	out := make([]rune, 0, 3)
	for _, r := range strings.ToUpper(foldText(s)) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			out = append(out, r)
			if len(out) == 3 {
				break
			}
		}
	}
	for len(out) < 3 {
		out = append(out, 'X')
	}
	return string(out)
}
