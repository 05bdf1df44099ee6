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

const defaultAccountsTableName = "accounts"

type accountItem struct {
	AccountID string `dynamodbav:"account_id"`
	UserName  string `dynamodbav:"user_name"`
	Role      string `dynamodbav:"role"`
	Balance   string `dynamodbav:"balance"`
}

// AccountDynamoRepository persists Account entities in DynamoDB.
//
// Table requirements:
//   - PK: account_id (string)
type AccountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccountRepository = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb *dynamodb.Client) *AccountDynamoRepository {
	return &AccountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCOUNTS_TABLE", defaultAccountsTableName),
	}
}

func (r *AccountDynamoRepository) Create(ctx context.Context, a entities.Account) (entities.Account, error) {
	av, err := attributevalue.MarshalMap(toAccountItem(a))
	if err != nil {
		return entities.Account{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "account_id",
		},
	})
	if err != nil {
		return entities.Account{}, err
	}
	return a, nil
}

func (r *AccountDynamoRepository) GetByID(ctx context.Context, id string) (entities.Account, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"account_id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Account{}, err
	}
	if len(out.Item) == 0 {
		return entities.Account{}, nil
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Account{}, err
	}
	return fromAccountItem(it), nil
}

func (r *AccountDynamoRepository) List(ctx context.Context) ([]entities.Account, error) {
	var accounts []entities.Account
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it accountItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			accounts = append(accounts, fromAccountItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return accounts, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// UpdateBalance applies delta through a write pinned on the previously read
// balance. A concurrent writer fails the condition and the call reports a
// zero-value account, letting the caller re-issue the delta against the
// fresh balance.
func (r *AccountDynamoRepository) UpdateBalance(ctx context.Context, id string, delta float64) (entities.Account, error) {
	// Balance is stored as a string for round-trip stability, so the delta
	// is applied read-modify-write under an equality condition on the old
	// value instead of an ADD expression.
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Account{}, err
	}
	if current.AccountID == "" {
		return entities.Account{}, nil
	}

	newBalance := current.Balance + delta
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"account_id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #balance = :old_balance"),
		UpdateExpression:    aws.String("SET #balance = :new_balance"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "account_id",
			"#balance": "balance",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":old_balance": &types.AttributeValueMemberS{Value: floatToString(current.Balance)},
			":new_balance": &types.AttributeValueMemberS{Value: floatToString(newBalance)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Account{}, nil
		}
		return entities.Account{}, err
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Account{}, err
	}
	return fromAccountItem(it), nil
}

func toAccountItem(a entities.Account) accountItem {
	return accountItem{
		AccountID: a.AccountID,
		UserName:  a.UserName,
		Role:      string(a.Role),
		Balance:   floatToString(a.Balance),
	}
}

func fromAccountItem(it accountItem) entities.Account {
	return entities.Account{
		AccountID: it.AccountID,
		UserName:  it.UserName,
		Role:      entities.AccountRole(it.Role),
		Balance:   parseFloat(it.Balance),
	}
}
