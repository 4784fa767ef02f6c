package entities

import "time"

// SignatureRequestStatus tracks one external e-signature transaction.
//
// Transitions: created -> sent -> signed | declined | expired.
// signed/declined/expired are terminal; only the webhook reconciler or an
// explicit status poll moves a request into a terminal state.

type SignatureRequestStatus string

const (
	SignatureStatusCreated  SignatureRequestStatus = "created"
	SignatureStatusSent     SignatureRequestStatus = "sent"
	SignatureStatusSigned   SignatureRequestStatus = "signed"
	SignatureStatusDeclined SignatureRequestStatus = "declined"
	SignatureStatusExpired  SignatureRequestStatus = "expired"
)

func (s SignatureRequestStatus) IsTerminal() bool {
	switch s {
	case SignatureStatusSigned, SignatureStatusDeclined, SignatureStatusExpired:
		return true
	}
	return false
}

// DocumentType identifies which contract document a signature request covers.

type DocumentType string

const (
	DocumentTypeOrderAcceptance  DocumentType = "order_acceptance"
	DocumentTypeCompletionReport DocumentType = "completion_report"
)

// Signer is one participant of a signature request, in signing order.
type Signer struct {
	Email     string     `json:"email"`
	HasSigned bool       `json:"has_signed"`
	SignedAt  *time.Time `json:"signed_at,omitempty"`
}

// SignatureRequest is the local mirror of a provider-side signature
// transaction attached to a contract document.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI external_request_id-index (PK: external_request_id)
//   - GSI contract_id-index (PK: contract_id)
//
// Invariants:
//   - at most one non-terminal request per (contract, document_type)
//   - CompletedAt is set exactly once; the repository's terminal update is
//     conditional on it being absent, which is what makes webhook replays
//     harmless.
type SignatureRequest struct {
	ID                string                 `json:"id"`
	ExternalRequestID string                 `json:"external_request_id"`
	ContractID        string                 `json:"contract_id"`
	DocumentType      DocumentType           `json:"document_type"`
	Status            SignatureRequestStatus `json:"status"`
	Signers           []Signer               `json:"signers"`
	SourceDocumentRef string                 `json:"source_document_ref,omitempty"`
	TargetDocumentRef string                 `json:"target_document_ref,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
	SentAt            *time.Time             `json:"sent_at,omitempty"`
	CompletedAt       *time.Time             `json:"completed_at,omitempty"`
	ExpiresAt         *time.Time             `json:"expires_at,omitempty"`
}
