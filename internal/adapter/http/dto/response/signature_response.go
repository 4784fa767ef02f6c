package response

import (
	"time"

	"kensetsu_match/internal/domain/entities"
)

type SignerResponse struct {
	Email     string     `json:"email"`
	HasSigned bool       `json:"has_signed"`
	SignedAt  *time.Time `json:"signed_at,omitempty"`
}

type SignatureRequestResponse struct {
	ID                string           `json:"id"`
	ExternalRequestID string           `json:"external_request_id"`
	ContractID        string           `json:"contract_id"`
	DocumentType      string           `json:"document_type"`
	Status            string           `json:"status"`
	Signers           []SignerResponse `json:"signers"`
	SourceDocumentRef string           `json:"source_document_ref,omitempty"`
	TargetDocumentRef string           `json:"target_document_ref,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	SentAt            *time.Time       `json:"sent_at,omitempty"`
	CompletedAt       *time.Time       `json:"completed_at,omitempty"`
	ExpiresAt         *time.Time       `json:"expires_at,omitempty"`
}

func FromSignatureRequest(req entities.SignatureRequest) SignatureRequestResponse {
	signers := make([]SignerResponse, 0, len(req.Signers))
	for _, s := range req.Signers {
		signers = append(signers, SignerResponse{
			Email:     s.Email,
			HasSigned: s.HasSigned,
			SignedAt:  s.SignedAt,
		})
	}
	return SignatureRequestResponse{
		ID:                req.ID,
		ExternalRequestID: req.ExternalRequestID,
		ContractID:        req.ContractID,
		DocumentType:      string(req.DocumentType),
		Status:            string(req.Status),
		Signers:           signers,
		SourceDocumentRef: req.SourceDocumentRef,
		TargetDocumentRef: req.TargetDocumentRef,
		CreatedAt:         req.CreatedAt,
		SentAt:            req.SentAt,
		CompletedAt:       req.CompletedAt,
		ExpiresAt:         req.ExpiresAt,
	}
}
