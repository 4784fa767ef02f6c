package interfaces

import (
	"context"
	"time"

	"kensetsu_match/internal/domain/entities"
)

// ESignCreateRequest is the outbound payload for a new provider-side
// signature transaction.
type ESignCreateRequest struct {
	DocumentRef  string
	DocumentType entities.DocumentType
	Title        string
	SignerEmails []string
}

// ESignRequestState is the provider's view of a transaction, shared by the
// push (webhook) and pull (poll) paths so both converge through the same
// transition logic.
type ESignRequestState struct {
	Status      entities.SignatureRequestStatus
	Signers     []entities.Signer
	CompletedAt *time.Time
}

// IESignProvider abstracts the external e-signature service (e.g. CloudSign).
//
// Every call is a bounded-timeout HTTP round trip; the provider additionally
// pushes webhook events which the reconciler verifies and applies.
type IESignProvider interface {
	CreateRequest(ctx context.Context, req ESignCreateRequest) (externalRequestID string, expiresAt *time.Time, err error)
	GetStatus(ctx context.Context, externalRequestID string) (ESignRequestState, error)
}
