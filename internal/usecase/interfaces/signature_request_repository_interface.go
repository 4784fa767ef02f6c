package interfaces

import (
	"context"
	"time"

	"kensetsu_match/internal/domain/entities"
)

// ISignatureRequestRepository abstracts DynamoDB persistence for
// SignatureRequest.
//
// ApplyTerminal is the idempotency primitive: a single conditional update
// that moves the request into a terminal state only if it is not terminal
// yet, reporting applied=false for replays. Check-then-write would leave a
// race window between two concurrent webhook deliveries; the condition does
// not.

type ISignatureRequestRepository interface {
	Create(ctx context.Context, r entities.SignatureRequest) (entities.SignatureRequest, error)
	GetByID(ctx context.Context, id string) (entities.SignatureRequest, error)
	GetByExternalRequestID(ctx context.Context, externalRequestID string) (entities.SignatureRequest, error)
	FindActiveByContractAndType(ctx context.Context, contractID string, documentType entities.DocumentType) (entities.SignatureRequest, error)
	ApplyTerminal(ctx context.Context, id string, status entities.SignatureRequestStatus, completedAt time.Time, signers []entities.Signer) (applied bool, err error)
}
