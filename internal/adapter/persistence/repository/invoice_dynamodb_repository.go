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

const (
	defaultInvoicesTableName  = "invoices"
	invoicesIDIndex           = "id-index"
	invoicesOrganizationIndex = "organization_id-index"
)

type invoiceItem struct {
	ID             string `dynamodbav:"id"`
	ContractID     string `dynamodbav:"contract_id"`
	ContractorID   string `dynamodbav:"contractor_id"`
	OrganizationID string `dynamodbav:"organization_id"`
	BusinessType   string `dynamodbav:"contractor_business_type"`
	Direction      string `dynamodbav:"direction"`
	BaseAmount     int64  `dynamodbav:"base_amount"`
	FeeAmount      int64  `dynamodbav:"fee_amount"`
	TotalAmount    int64  `dynamodbav:"total_amount"`
	SystemFee      int64  `dynamodbav:"system_fee"`
	FinalAmount    int64  `dynamodbav:"final_amount"`
	Status         string `dynamodbav:"status"`
	IssueDate      string `dynamodbav:"issue_date"`
	DueDate        string `dynamodbav:"due_date"`
	DocumentRef    string `dynamodbav:"document_ref,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: contract_id (string), SK: direction (string)
//   - GSI: id-index (PK: id)
//   - GSI: organization_id-index (PK: organization_id)
//
// The composite primary key is the one-invoice-per-(contract, direction)
// invariant: the conditional put cannot insert a second row for the pair.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	it := toInvoiceItem(inv)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(contract_id)"),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Invoice{}, interfaces.ErrAlreadyExists
		}
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Items) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) GetByContractAndDirection(ctx context.Context, contractID string, direction entities.InvoiceDirection) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"contract_id": &types.AttributeValueMemberS{Value: contractID},
			"direction":   &types.AttributeValueMemberS{Value: string(direction)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListByContractID(ctx context.Context, contractID string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("contract_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: contractID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInvoices(out.Items)
}

// ListIssuedInPeriod is the aggregator's read set: every issued invoice of a
// direction whose issue_date falls inside the cutoff window. A paginated
// scan is acceptable here: the close runs once per period, not per request.
func (r *InvoiceDynamoRepository) ListIssuedInPeriod(ctx context.Context, direction entities.InvoiceDirection, periodStart, periodEnd time.Time) ([]entities.Invoice, error) {
	var invoices []entities.Invoice
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("direction = :dir AND #st = :st AND issue_date BETWEEN :ps AND :pe"),
			ExpressionAttributeNames: map[string]string{
				"#st": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":dir": &types.AttributeValueMemberS{Value: string(direction)},
				":st":  &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusIssued)},
				":ps":  &types.AttributeValueMemberS{Value: formatDate(periodStart)},
				":pe":  &types.AttributeValueMemberS{Value: formatDate(periodEnd)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		page, err := unmarshalInvoices(out.Items)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return invoices, nil
}

func (r *InvoiceDynamoRepository) ListIssuedByOrganizationInPeriod(ctx context.Context, organizationID string, direction entities.InvoiceDirection, periodStart, periodEnd time.Time) ([]entities.Invoice, error) {
	var invoices []entities.Invoice
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(invoicesOrganizationIndex),
			KeyConditionExpression: aws.String("organization_id = :oid"),
			FilterExpression:       aws.String("direction = :dir AND #st = :st AND issue_date BETWEEN :ps AND :pe"),
			ExpressionAttributeNames: map[string]string{
				"#st": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":oid": &types.AttributeValueMemberS{Value: organizationID},
				":dir": &types.AttributeValueMemberS{Value: string(direction)},
				":st":  &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusIssued)},
				":ps":  &types.AttributeValueMemberS{Value: formatDate(periodStart)},
				":pe":  &types.AttributeValueMemberS{Value: formatDate(periodEnd)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		page, err := unmarshalInvoices(out.Items)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return invoices, nil
}

func (r *InvoiceDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	// The table key is (contract_id, direction); resolve it via the id GSI
	// first. Amounts are never touched here, only the status moves.
	inv, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, nil
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"contract_id": &types.AttributeValueMemberS{Value: inv.ContractID},
			"direction":   &types.AttributeValueMemberS{Value: string(inv.Direction)},
		},
		UpdateExpression:    aws.String("SET #st = :st, updated_at = :ua"),
		ConditionExpression: aws.String("attribute_exists(contract_id)"),
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
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func unmarshalInvoices(items []map[string]types.AttributeValue) ([]entities.Invoice, error) {
	invoices := make([]entities.Invoice, 0, len(items))
	for _, raw := range items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		invoices = append(invoices, fromInvoiceItem(it))
	}
	return invoices, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:             inv.ID,
		ContractID:     inv.ContractID,
		ContractorID:   inv.ContractorID,
		OrganizationID: inv.OrganizationID,
		BusinessType:   string(inv.BusinessType),
		Direction:      string(inv.Direction),
		BaseAmount:     inv.BaseAmount,
		FeeAmount:      inv.FeeAmount,
		TotalAmount:    inv.TotalAmount,
		SystemFee:      inv.SystemFee,
		FinalAmount:    inv.FinalAmount,
		Status:         string(inv.Status),
		IssueDate:      formatDate(inv.IssueDate),
		DueDate:        formatDate(inv.DueDate),
		DocumentRef:    inv.DocumentRef,
		CreatedAt:      formatTime(inv.CreatedAt),
		UpdatedAt:      formatTime(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	return entities.Invoice{
		ID:             it.ID,
		ContractID:     it.ContractID,
		ContractorID:   it.ContractorID,
		OrganizationID: it.OrganizationID,
		BusinessType:   entities.BusinessType(it.BusinessType),
		Direction:      entities.InvoiceDirection(it.Direction),
		BaseAmount:     it.BaseAmount,
		FeeAmount:      it.FeeAmount,
		TotalAmount:    it.TotalAmount,
		SystemFee:      it.SystemFee,
		FinalAmount:    it.FinalAmount,
		Status:         entities.InvoiceStatus(it.Status),
		IssueDate:      parseDate(it.IssueDate),
		DueDate:        parseDate(it.DueDate),
		DocumentRef:    it.DocumentRef,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
