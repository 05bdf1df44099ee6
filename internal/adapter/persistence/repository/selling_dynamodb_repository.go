package repository

import (
	"context"
	"errors"

	"github.com/rahulchavan424/real-estate-hyperledger/internal/domain/entities"
	"github.com/rahulchavan424/real-estate-hyperledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSellingsTableName = "sellings"

type sellingItem struct {
	SellingID    string `dynamodbav:"selling_id"`
	ObjectOfSale string `dynamodbav:"object_of_sale"`
	Seller       string `dynamodbav:"seller"`
	Buyer        string `dynamodbav:"buyer"`
	Price        string `dynamodbav:"price"`
	SalePeriod   int    `dynamodbav:"sale_period"`
	Status       string `dynamodbav:"status"`
	CreateTime   string `dynamodbav:"create_time"`
	UpdateTime   string `dynamodbav:"update_time"`
}

// SellingDynamoRepository persists Selling entities in DynamoDB.
//
// Table requirements:
//   - PK: selling_id (string)
//
// Status transitions go through Update, whose condition expression pins the
// previously read status; a lost race surfaces as a zero-value result.

type SellingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISellingRepository = (*SellingDynamoRepository)(nil)

func NewSellingDynamoRepository(ddb *dynamodb.Client) *SellingDynamoRepository {
	return &SellingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SELLINGS_TABLE", defaultSellingsTableName),
	}
}

func (r *SellingDynamoRepository) Create(ctx context.Context, s entities.Selling) (entities.Selling, error) {
	av, err := attributevalue.MarshalMap(toSellingItem(s))
	if err != nil {
		return entities.Selling{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "selling_id",
		},
	})
	if err != nil {
		return entities.Selling{}, err
	}
	return s, nil
}

func (r *SellingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Selling, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"selling_id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Selling{}, err
	}
	if len(out.Item) == 0 {
		return entities.Selling{}, nil
	}

	var it sellingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Selling{}, err
	}
	return fromSellingItem(it), nil
}

func (r *SellingDynamoRepository) List(ctx context.Context) ([]entities.Selling, error) {
	return r.scan(ctx, nil, nil, nil)
}

func (r *SellingDynamoRepository) ListBySeller(ctx context.Context, seller string) ([]entities.Selling, error) {
	return r.scan(ctx,
		aws.String("#seller = :seller"),
		map[string]string{"#seller": "seller"},
		map[string]types.AttributeValue{
			":seller": &types.AttributeValueMemberS{Value: seller},
		},
	)
}

func (r *SellingDynamoRepository) ListByBuyer(ctx context.Context, buyer string) ([]entities.Selling, error) {
	return r.scan(ctx,
		aws.String("#buyer = :buyer"),
		map[string]string{"#buyer": "buyer"},
		map[string]types.AttributeValue{
			":buyer": &types.AttributeValueMemberS{Value: buyer},
		},
	)
}

func (r *SellingDynamoRepository) Update(ctx context.Context, s entities.Selling, expected entities.SellingStatus) (entities.Selling, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"selling_id": &types.AttributeValueMemberS{Value: s.SellingID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:    aws.String("SET #status = :status, #buyer = :buyer, #update_time = :update_time"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "selling_id",
			"#status":      "status",
			"#buyer":       "buyer",
			"#update_time": "update_time",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":    &types.AttributeValueMemberS{Value: string(expected)},
			":status":      &types.AttributeValueMemberS{Value: string(s.Status)},
			":buyer":       &types.AttributeValueMemberS{Value: s.Buyer},
			":update_time": &types.AttributeValueMemberS{Value: timeToString(s.UpdateTime)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Selling{}, nil
		}
		return entities.Selling{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Selling{}, nil
	}

	var it sellingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Selling{}, err
	}
	return fromSellingItem(it), nil
}

func (r *SellingDynamoRepository) scan(
	ctx context.Context,
	filter *string,
	names map[string]string,
	values map[string]types.AttributeValue,
) ([]entities.Selling, error) {
	var list []entities.Selling
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          filter,
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it sellingItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			list = append(list, fromSellingItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return list, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toSellingItem(s entities.Selling) sellingItem {
	return sellingItem{
		SellingID:    s.SellingID,
		ObjectOfSale: s.ObjectOfSale,
		Seller:       s.Seller,
		Buyer:        s.Buyer,
		Price:        floatToString(s.Price),
		SalePeriod:   s.SalePeriod,
		Status:       string(s.Status),
		CreateTime:   timeToString(s.CreateTime),
		UpdateTime:   timeToString(s.UpdateTime),
	}
}

func fromSellingItem(it sellingItem) entities.Selling {
	return entities.Selling{
		SellingID:    it.SellingID,
		ObjectOfSale: it.ObjectOfSale,
		Seller:       it.Seller,
		Buyer:        it.Buyer,
		Price:        parseFloat(it.Price),
		SalePeriod:   it.SalePeriod,
		Status:       entities.SellingStatus(it.Status),
		CreateTime:   parseTime(it.CreateTime),
		UpdateTime:   parseTime(it.UpdateTime),
	}
}
