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
	defaultSignatureRequestsTableName = "signature_requests"

	signatureExternalIndex = "external_request_id-index"
	signatureContractIndex = "contract_id-index"
)

type signerItem struct {
	Email     string `dynamodbav:"email"`
	HasSigned bool   `dynamodbav:"has_signed"`
	SignedAt  string `dynamodbav:"signed_at,omitempty"`
}

type signatureRequestItem struct {
	ID                string       `dynamodbav:"id"`
	ExternalRequestID string       `dynamodbav:"external_request_id"`
	ContractID        string       `dynamodbav:"contract_id"`
	DocumentType      string       `dynamodbav:"document_type"`
	Status            string       `dynamodbav:"status"`
	Signers           []signerItem `dynamodbav:"signers"`
	SourceDocumentRef string       `dynamodbav:"source_document_ref,omitempty"`
	TargetDocumentRef string       `dynamodbav:"target_document_ref,omitempty"`
	CreatedAt         string       `dynamodbav:"created_at"`
	SentAt            string       `dynamodbav:"sent_at,omitempty"`
	CompletedAt       string       `dynamodbav:"completed_at,omitempty"`
	ExpiresAt         string       `dynamodbav:"expires_at,omitempty"`
}

// SignatureRequestDynamoRepository persists SignatureRequest entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI external_request_id-index: PK external_request_id (string)
//   - GSI contract_id-index: PK contract_id (string)

type SignatureRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISignatureRequestRepository = (*SignatureRequestDynamoRepository)(nil)

func NewSignatureRequestDynamoRepository(ddb *dynamodb.Client) *SignatureRequestDynamoRepository {
	return &SignatureRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SIGNATURE_REQUESTS_TABLE", defaultSignatureRequestsTableName),
	}
}

func (r *SignatureRequestDynamoRepository) Create(ctx context.Context, req entities.SignatureRequest) (entities.SignatureRequest, error) {
	it := toSignatureRequestItem(req)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.SignatureRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.SignatureRequest{}, interfaces.ErrAlreadyExists
		}
		return entities.SignatureRequest{}, err
	}
	return req, nil
}

func (r *SignatureRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.SignatureRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SignatureRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.SignatureRequest{}, nil
	}

	var it signatureRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SignatureRequest{}, err
	}
	return fromSignatureRequestItem(it), nil
}

func (r *SignatureRequestDynamoRepository) GetByExternalRequestID(ctx context.Context, externalRequestID string) (entities.SignatureRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(signatureExternalIndex),
		KeyConditionExpression: aws.String("external_request_id = :ext"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ext": &types.AttributeValueMemberS{Value: externalRequestID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.SignatureRequest{}, err
	}
	if len(out.Items) == 0 {
		return entities.SignatureRequest{}, nil
	}

	var it signatureRequestItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.SignatureRequest{}, err
	}
	return fromSignatureRequestItem(it), nil
}

func (r *SignatureRequestDynamoRepository) FindActiveByContractAndType(ctx context.Context, contractID string, documentType entities.DocumentType) (entities.SignatureRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(signatureContractIndex),
		KeyConditionExpression: aws.String("contract_id = :cid"),
		FilterExpression:       aws.String("document_type = :dt AND #st IN (:created, :sent)"),
		ExpressionAttributeNames: map[string]string{
			"#st": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":     &types.AttributeValueMemberS{Value: contractID},
			":dt":      &types.AttributeValueMemberS{Value: string(documentType)},
			":created": &types.AttributeValueMemberS{Value: string(entities.SignatureStatusCreated)},
			":sent":    &types.AttributeValueMemberS{Value: string(entities.SignatureStatusSent)},
		},
	})
	if err != nil {
		return entities.SignatureRequest{}, err
	}
	if len(out.Items) == 0 {
		return entities.SignatureRequest{}, nil
	}

	var it signatureRequestItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.SignatureRequest{}, err
	}
	return fromSignatureRequestItem(it), nil
}

// ApplyTerminal moves a request into a terminal state. The condition rejects
// the write when CompletedAt is already set or the current status is itself
// terminal, so concurrent or replayed deliveries resolve to applied=false.
func (r *SignatureRequestDynamoRepository) ApplyTerminal(ctx context.Context, id string, status entities.SignatureRequestStatus, completedAt time.Time, signers []entities.Signer) (bool, error) {
	items := make([]signerItem, 0, len(signers))
	for _, s := range signers {
		items = append(items, toSignerItem(s))
	}
	signersAV, err := attributevalue.Marshal(items)
	if err != nil {
		return false, err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #st = :st, completed_at = :ca, signers = :sg"),
		ConditionExpression: aws.String("attribute_exists(id) AND attribute_not_exists(completed_at) AND #st IN (:created, :sent)"),
		ExpressionAttributeNames: map[string]string{
			"#st": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":st":      &types.AttributeValueMemberS{Value: string(status)},
			":ca":      &types.AttributeValueMemberS{Value: formatTime(completedAt)},
			":sg":      signersAV,
			":created": &types.AttributeValueMemberS{Value: string(entities.SignatureStatusCreated)},
			":sent":    &types.AttributeValueMemberS{Value: string(entities.SignatureStatusSent)},
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

func toSignerItem(s entities.Signer) signerItem {
	return signerItem{
		Email:     s.Email,
		HasSigned: s.HasSigned,
		SignedAt:  formatTimePtr(s.SignedAt),
	}
}

func fromSignerItem(it signerItem) entities.Signer {
	return entities.Signer{
		Email:     it.Email,
		HasSigned: it.HasSigned,
		SignedAt:  parseTimePtr(it.SignedAt),
	}
}

func toSignatureRequestItem(req entities.SignatureRequest) signatureRequestItem {
	signers := make([]signerItem, 0, len(req.Signers))
	for _, s := range req.Signers {
		signers = append(signers, toSignerItem(s))
	}
	return signatureRequestItem{
		ID:                req.ID,
		ExternalRequestID: req.ExternalRequestID,
		ContractID:        req.ContractID,
		DocumentType:      string(req.DocumentType),
		Status:            string(req.Status),
		Signers:           signers,
		SourceDocumentRef: req.SourceDocumentRef,
		TargetDocumentRef: req.TargetDocumentRef,
		CreatedAt:         formatTime(req.CreatedAt),
		SentAt:            formatTimePtr(req.SentAt),
		CompletedAt:       formatTimePtr(req.CompletedAt),
		ExpiresAt:         formatTimePtr(req.ExpiresAt),
	}
}

func fromSignatureRequestItem(it signatureRequestItem) entities.SignatureRequest {
	signers := make([]entities.Signer, 0, len(it.Signers))
	for _, s := range it.Signers {
		signers = append(signers, fromSignerItem(s))
	}
	return entities.SignatureRequest{
		ID:                it.ID,
		ExternalRequestID: it.ExternalRequestID,
		ContractID:        it.ContractID,
		DocumentType:      entities.DocumentType(it.DocumentType),
		Status:            entities.SignatureRequestStatus(it.Status),
		Signers:           signers,
		SourceDocumentRef: it.SourceDocumentRef,
		TargetDocumentRef: it.TargetDocumentRef,
		CreatedAt:         parseTime(it.CreatedAt),
		SentAt:            parseTimePtr(it.SentAt),
		CompletedAt:       parseTimePtr(it.CompletedAt),
		ExpiresAt:         parseTimePtr(it.ExpiresAt),
	}
}
