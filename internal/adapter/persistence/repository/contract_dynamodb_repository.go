package repository

import (
	"context"
	"time"

	"kensetsu_match/internal/domain/entities"
	"kensetsu_match/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultContractsTableName = "contracts"

type contractItem struct {
	ID                      string  `dynamodbav:"id"`
	ProjectID               string  `dynamodbav:"project_id"`
	ContractorID            string  `dynamodbav:"contractor_id"`
	OrganizationID          string  `dynamodbav:"organization_id"`
	BidAmount               int64   `dynamodbav:"bid_amount"`
	SupportEnabled          bool    `dynamodbav:"support_enabled"`
	SupportFeePercent       float64 `dynamodbav:"support_fee_percent"`
	Status                  string  `dynamodbav:"status"`
	OrderAcceptanceSignedAt string  `dynamodbav:"order_acceptance_signed_at,omitempty"`
	CompletedAt             string  `dynamodbav:"completed_at,omitempty"`
	CreatedAt               string  `dynamodbav:"created_at"`
	UpdatedAt               string  `dynamodbav:"updated_at"`
}

// ContractDynamoRepository persists Contract entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
	}
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

// SetOrderAcceptanceSignedAt writes the signature timestamp exactly once.
// A second call reports applied=false instead of overwriting; the signature
// flow is the single writer of this attribute.
func (r *ContractDynamoRepository) SetOrderAcceptanceSignedAt(ctx context.Context, id string, signedAt time.Time) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET order_acceptance_signed_at = :sa, updated_at = :ua"),
		ConditionExpression: aws.String("attribute_exists(id) AND attribute_not_exists(order_acceptance_signed_at)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sa": &types.AttributeValueMemberS{Value: formatTime(signedAt)},
			":ua": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *ContractDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ContractStatus) (entities.Contract, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #st = :st, updated_at = :ua"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeNames: map[string]string{
			"#st": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":st": &types.AttributeValueMemberS{Value: string(status)},
			":ua": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Contract{}, nil
		}
		return entities.Contract{}, err
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func fromContractItem(it contractItem) entities.Contract {
	return entities.Contract{
		ID:                      it.ID,
		ProjectID:               it.ProjectID,
		ContractorID:            it.ContractorID,
		OrganizationID:          it.OrganizationID,
		BidAmount:               it.BidAmount,
		SupportEnabled:          it.SupportEnabled,
		SupportFeePercent:       it.SupportFeePercent,
		Status:                  entities.ContractStatus(it.Status),
		OrderAcceptanceSignedAt: parseTimePtr(it.OrderAcceptanceSignedAt),
		CompletedAt:             parseTimePtr(it.CompletedAt),
		CreatedAt:               parseTime(it.CreatedAt),
		UpdatedAt:               parseTime(it.UpdatedAt),
	}
}
