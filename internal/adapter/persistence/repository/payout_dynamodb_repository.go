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

const defaultPayoutsTableName = "payouts"

type payoutItem struct {
	ContractorID     string `dynamodbav:"contractor_id"`
	PeriodKey        string `dynamodbav:"period_key"`
	ID               string `dynamodbav:"id"`
	PeriodStart      string `dynamodbav:"period_start"`
	PeriodEnd        string `dynamodbav:"period_end"`
	ScheduledPayDate string `dynamodbav:"scheduled_pay_date"`
	GrossAmount      int64  `dynamodbav:"gross_amount"`
	TaxWithholding   int64  `dynamodbav:"tax_withholding"`
	TransferFee      int64  `dynamodbav:"transfer_fee"`
	NetAmount        int64  `dynamodbav:"net_amount"`
	InvoiceCount     int    `dynamodbav:"invoice_count"`
	Status           string `dynamodbav:"status"`
	PaidAt           string `dynamodbav:"paid_at,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// PayoutDynamoRepository persists Payout entities in DynamoDB.
//
// Table requirements:
//   - PK: contractor_id (string), SK: period_key (string)
//
// The key doubles as the uniqueness constraint: one payout per (contractor,
// period), no matter how many times the close job runs.

type PayoutDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPayoutRepository = (*PayoutDynamoRepository)(nil)

func NewPayoutDynamoRepository(ddb *dynamodb.Client) *PayoutDynamoRepository {
	return &PayoutDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYOUTS_TABLE", defaultPayoutsTableName),
	}
}

func (r *PayoutDynamoRepository) Create(ctx context.Context, p entities.Payout) (entities.Payout, error) {
	it := toPayoutItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payout{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(contractor_id)"),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Payout{}, interfaces.ErrAlreadyExists
		}
		return entities.Payout{}, err
	}
	return p, nil
}

func (r *PayoutDynamoRepository) GetByContractorAndPeriod(ctx context.Context, contractorID, periodKey string) (entities.Payout, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"contractor_id": &types.AttributeValueMemberS{Value: contractorID},
			"period_key":    &types.AttributeValueMemberS{Value: periodKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payout{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payout{}, nil
	}

	var it payoutItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payout{}, err
	}
	return fromPayoutItem(it), nil
}

func (r *PayoutDynamoRepository) ListByContractor(ctx context.Context, contractorID string) ([]entities.Payout, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("contractor_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: contractorID},
		},
	})
	if err != nil {
		return nil, err
	}

	payouts := make([]entities.Payout, 0, len(out.Items))
	for _, raw := range out.Items {
		var it payoutItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payouts = append(payouts, fromPayoutItem(it))
	}
	return payouts, nil
}

func toPayoutItem(p entities.Payout) payoutItem {
	return payoutItem{
		ContractorID:     p.ContractorID,
		PeriodKey:        periodKey(p.PeriodStart, p.PeriodEnd),
		ID:               p.ID,
		PeriodStart:      formatDate(p.PeriodStart),
		PeriodEnd:        formatDate(p.PeriodEnd),
		ScheduledPayDate: formatDate(p.ScheduledPayDate),
		GrossAmount:      p.GrossAmount,
		TaxWithholding:   p.TaxWithholding,
		TransferFee:      p.TransferFee,
		NetAmount:        p.NetAmount,
		InvoiceCount:     p.InvoiceCount,
		Status:           string(p.Status),
		PaidAt:           formatTimePtr(p.PaidAt),
		CreatedAt:        formatTime(p.CreatedAt),
		UpdatedAt:        formatTime(p.UpdatedAt),
	}
}

func fromPayoutItem(it payoutItem) entities.Payout {
	return entities.Payout{
		ID:               it.ID,
		ContractorID:     it.ContractorID,
		PeriodStart:      parseDate(it.PeriodStart),
		PeriodEnd:        parseDate(it.PeriodEnd),
		ScheduledPayDate: parseDate(it.ScheduledPayDate),
		GrossAmount:      it.GrossAmount,
		TaxWithholding:   it.TaxWithholding,
		TransferFee:      it.TransferFee,
		NetAmount:        it.NetAmount,
		InvoiceCount:     it.InvoiceCount,
		Status:           entities.PayoutStatus(it.Status),
		PaidAt:           parseTimePtr(it.PaidAt),
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
