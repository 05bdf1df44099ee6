package repository

import (
	"context"

	"github.com/rahulchavan424/real-estate-hyperledger/internal/domain/entities"
	"github.com/rahulchavan424/real-estate-hyperledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRealEstatesTableName = "real_estates"

type realEstateItem struct {
	RealEstateID string `dynamodbav:"real_estate_id"`
	Proprietor   string `dynamodbav:"proprietor"`
	TotalArea    string `dynamodbav:"total_area"`
	LivingSpace  string `dynamodbav:"living_space"`
	Encumbrance  bool   `dynamodbav:"encumbrance"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// RealEstateDynamoRepository persists RealEstate entities in DynamoDB.
//
// Table requirements:
//   - PK: real_estate_id (string)
type RealEstateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRealEstateRepository = (*RealEstateDynamoRepository)(nil)

func NewRealEstateDynamoRepository(ddb *dynamodb.Client) *RealEstateDynamoRepository {
	return &RealEstateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REAL_ESTATES_TABLE", defaultRealEstatesTableName),
	}
}

func (r *RealEstateDynamoRepository) Create(ctx context.Context, re entities.RealEstate) (entities.RealEstate, error) {
	av, err := attributevalue.MarshalMap(toRealEstateItem(re))
	if err != nil {
		return entities.RealEstate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "real_estate_id",
		},
	})
	if err != nil {
		return entities.RealEstate{}, err
	}
	return re, nil
}

func (r *RealEstateDynamoRepository) GetByID(ctx context.Context, id string) (entities.RealEstate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"real_estate_id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RealEstate{}, err
	}
	if len(out.Item) == 0 {
		return entities.RealEstate{}, nil
	}

	var it realEstateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RealEstate{}, err
	}
	return fromRealEstateItem(it), nil
}

func (r *RealEstateDynamoRepository) List(ctx context.Context) ([]entities.RealEstate, error) {
	return r.scan(ctx, nil, nil, nil)
}

func (r *RealEstateDynamoRepository) ListByProprietor(ctx context.Context, proprietor string) ([]entities.RealEstate, error) {
	return r.scan(ctx,
		aws.String("#proprietor = :proprietor"),
		map[string]string{"#proprietor": "proprietor"},
		map[string]types.AttributeValue{
			":proprietor": &types.AttributeValueMemberS{Value: proprietor},
		},
	)
}

// Save overwrites the full record; the engine already holds the parcel lock,
// so last-writer-wins is safe here.
func (r *RealEstateDynamoRepository) Save(ctx context.Context, re entities.RealEstate) (entities.RealEstate, error) {
	av, err := attributevalue.MarshalMap(toRealEstateItem(re))
	if err != nil {
		return entities.RealEstate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.RealEstate{}, err
	}
	return re, nil
}

func (r *RealEstateDynamoRepository) scan(
	ctx context.Context,
	filter *string,
	names map[string]string,
	values map[string]types.AttributeValue,
) ([]entities.RealEstate, error) {
	var list []entities.RealEstate
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
			var it realEstateItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			list = append(list, fromRealEstateItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return list, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toRealEstateItem(re entities.RealEstate) realEstateItem {
	return realEstateItem{
		RealEstateID: re.RealEstateID,
		Proprietor:   re.Proprietor,
		TotalArea:    floatToString(re.TotalArea),
		LivingSpace:  floatToString(re.LivingSpace),
		Encumbrance:  re.Encumbrance,
		CreatedAt:    timeToString(re.CreatedAt),
	}
}

func fromRealEstateItem(it realEstateItem) entities.RealEstate {
	return entities.RealEstate{
		RealEstateID: it.RealEstateID,
		Proprietor:   it.Proprietor,
		TotalArea:    parseFloat(it.TotalArea),
		LivingSpace:  parseFloat(it.LivingSpace),
		Encumbrance:  it.Encumbrance,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
