package repository

import (
	"context"

	"kensetsu_match/internal/domain/entities"
	"kensetsu_match/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStatementsTableName = "monthly_statements"

type statementItem struct {
	OrganizationID   string `dynamodbav:"organization_id"`
	PeriodKey        string `dynamodbav:"period_key"`
	ID               string `dynamodbav:"id"`
	PeriodStart      string `dynamodbav:"period_start"`
	PeriodEnd        string `dynamodbav:"period_end"`
	DueDate          string `dynamodbav:"due_date"`
	ContractorsTotal int64  `dynamodbav:"contractors_total"`
	OperatorFee      int64  `dynamodbav:"operator_fee"`
	TotalAmount      int64  `dynamodbav:"total_amount"`
	InvoiceCount     int    `dynamodbav:"invoice_count"`
	Status           string `dynamodbav:"status"`
	PaidAt           string `dynamodbav:"paid_at,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// StatementDynamoRepository persists MonthlyStatement entities in DynamoDB.
//
// Table requirements:
//   - PK: organization_id (string), SK: period_key (string)

type StatementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStatementRepository = (*StatementDynamoRepository)(nil)

func NewStatementDynamoRepository(ddb *dynamodb.Client) *StatementDynamoRepository {
	return &StatementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STATEMENTS_TABLE", defaultStatementsTableName),
	}
}

func (r *StatementDynamoRepository) Create(ctx context.Context, s entities.MonthlyStatement) (entities.MonthlyStatement, error) {
	it := toStatementItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.MonthlyStatement{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(organization_id)"),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.MonthlyStatement{}, interfaces.ErrAlreadyExists
		}
		return entities.MonthlyStatement{}, err
	}
	return s, nil
}

func (r *StatementDynamoRepository) GetByOrganizationAndPeriod(ctx context.Context, organizationID, periodKey string) (entities.MonthlyStatement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"organization_id": &types.AttributeValueMemberS{Value: organizationID},
			"period_key":      &types.AttributeValueMemberS{Value: periodKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MonthlyStatement{}, err
	}
	if len(out.Item) == 0 {
		return entities.MonthlyStatement{}, nil
	}

	var it statementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MonthlyStatement{}, err
	}
	return fromStatementItem(it), nil
}

func toStatementItem(s entities.MonthlyStatement) statementItem {
	return statementItem{
		OrganizationID:   s.OrganizationID,
		PeriodKey:        periodKey(s.PeriodStart, s.PeriodEnd),
		ID:               s.ID,
		PeriodStart:      formatDate(s.PeriodStart),
		PeriodEnd:        formatDate(s.PeriodEnd),
		DueDate:          formatDate(s.DueDate),
		ContractorsTotal: s.ContractorsTotal,
		OperatorFee:      s.OperatorFee,
		TotalAmount:      s.TotalAmount,
		InvoiceCount:     s.InvoiceCount,
		Status:           string(s.Status),
		PaidAt:           formatTimePtr(s.PaidAt),
		CreatedAt:        formatTime(s.CreatedAt),
		UpdatedAt:        formatTime(s.UpdatedAt),
	}
}

func fromStatementItem(it statementItem) entities.MonthlyStatement {
	return entities.MonthlyStatement{
		ID:               it.ID,
		OrganizationID:   it.OrganizationID,
		PeriodStart:      parseDate(it.PeriodStart),
		PeriodEnd:        parseDate(it.PeriodEnd),
		DueDate:          parseDate(it.DueDate),
		ContractorsTotal: it.ContractorsTotal,
		OperatorFee:      it.OperatorFee,
		TotalAmount:      it.TotalAmount,
		InvoiceCount:     it.InvoiceCount,
		Status:           entities.StatementStatus(it.Status),
		PaidAt:           parseTimePtr(it.PaidAt),
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
