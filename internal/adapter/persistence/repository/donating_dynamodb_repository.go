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

const defaultDonatingsTableName = "donatings"

type donatingItem struct {
	DonatingID       string `dynamodbav:"donating_id"`
	ObjectOfDonating string `dynamodbav:"object_of_donating"`
	Donor            string `dynamodbav:"donor"`
	Grantee          string `dynamodbav:"grantee"`
	Status           string `dynamodbav:"status"`
	CreateTime       string `dynamodbav:"create_time"`
	UpdateTime       string `dynamodbav:"update_time"`
}

// DonatingDynamoRepository persists Donating entities in DynamoDB.
//
// Table requirements:
//   - PK: donating_id (string)
type DonatingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDonatingRepository = (*DonatingDynamoRepository)(nil)

func NewDonatingDynamoRepository(ddb *dynamodb.Client) *DonatingDynamoRepository {
	return &DonatingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DONATINGS_TABLE", defaultDonatingsTableName),
	}
}

func (r *DonatingDynamoRepository) Create(ctx context.Context, d entities.Donating) (entities.Donating, error) {
	av, err := attributevalue.MarshalMap(toDonatingItem(d))
	if err != nil {
		return entities.Donating{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "donating_id",
		},
	})
	if err != nil {
		return entities.Donating{}, err
	}
	return d, nil
}

func (r *DonatingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Donating, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"donating_id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Donating{}, err
	}
	if len(out.Item) == 0 {
		return entities.Donating{}, nil
	}

	var it donatingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Donating{}, err
	}
	return fromDonatingItem(it), nil
}

func (r *DonatingDynamoRepository) List(ctx context.Context) ([]entities.Donating, error) {
	return r.scan(ctx, nil, nil, nil)
}

func (r *DonatingDynamoRepository) ListByDonor(ctx context.Context, donor string) ([]entities.Donating, error) {
	return r.scan(ctx,
		aws.String("#donor = :donor"),
		map[string]string{"#donor": "donor"},
		map[string]types.AttributeValue{
			":donor": &types.AttributeValueMemberS{Value: donor},
		},
	)
}

func (r *DonatingDynamoRepository) ListByGrantee(ctx context.Context, grantee string) ([]entities.Donating, error) {
	return r.scan(ctx,
		aws.String("#grantee = :grantee"),
		map[string]string{"#grantee": "grantee"},
		map[string]types.AttributeValue{
			":grantee": &types.AttributeValueMemberS{Value: grantee},
		},
	)
}

func (r *DonatingDynamoRepository) Update(ctx context.Context, d entities.Donating, expected entities.DonatingStatus) (entities.Donating, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"donating_id": &types.AttributeValueMemberS{Value: d.DonatingID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:    aws.String("SET #status = :status, #update_time = :update_time"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "donating_id",
			"#status":      "status",
			"#update_time": "update_time",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":    &types.AttributeValueMemberS{Value: string(expected)},
			":status":      &types.AttributeValueMemberS{Value: string(d.Status)},
			":update_time": &types.AttributeValueMemberS{Value: timeToString(d.UpdateTime)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Donating{}, nil
		}
		return entities.Donating{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Donating{}, nil
	}

	var it donatingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Donating{}, err
	}
	return fromDonatingItem(it), nil
}

func (r *DonatingDynamoRepository) scan(
	ctx context.Context,
	filter *string,
	names map[string]string,
	values map[string]types.AttributeValue,
) ([]entities.Donating, error) {
	var list []entities.Donating
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
			var it donatingItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			list = append(list, fromDonatingItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return list, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toDonatingItem(d entities.Donating) donatingItem {
	return donatingItem{
		DonatingID:       d.DonatingID,
		ObjectOfDonating: d.ObjectOfDonating,
		Donor:            d.Donor,
		Grantee:          d.Grantee,
		Status:           string(d.Status),
		CreateTime:       timeToString(d.CreateTime),
		UpdateTime:       timeToString(d.UpdateTime),
	}
}

func fromDonatingItem(it donatingItem) entities.Donating {
	return entities.Donating{
		DonatingID:       it.DonatingID,
		ObjectOfDonating: it.ObjectOfDonating,
		Donor:            it.Donor,
		Grantee:          it.Grantee,
		Status:           entities.DonatingStatus(it.Status),
		CreateTime:       parseTime(it.CreateTime),
		UpdateTime:       parseTime(it.UpdateTime),
	}
}
