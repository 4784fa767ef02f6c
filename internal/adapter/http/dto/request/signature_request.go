package request

import (
	"strings"

	"kensetsu_match/internal/domain/entities"
)

// SignatureCreateRequest is the payload for opening a provider-side signature
// transaction for a contract document.
type SignatureCreateRequest struct {
	ContractID   string   `json:"contract_id" binding:"required"`
	DocumentType string   `json:"document_type" binding:"required"`
	SignerEmails []string `json:"signer_emails" binding:"required"`
	DocumentRef  string   `json:"document_ref"`
}

func (r SignatureCreateRequest) ResolveContractID() string {
	return strings.TrimSpace(r.ContractID)
}

func (r SignatureCreateRequest) ResolveDocumentType() (entities.DocumentType, bool) {
	switch entities.DocumentType(strings.ToLower(strings.TrimSpace(r.DocumentType))) {
	case entities.DocumentTypeOrderAcceptance:
		return entities.DocumentTypeOrderAcceptance, true
	case entities.DocumentTypeCompletionReport:
		return entities.DocumentTypeCompletionReport, true
	}
	return "", false
}

func (r SignatureCreateRequest) ResolveSignerEmails() []string {
	emails := make([]string, 0, len(r.SignerEmails))
	for _, e := range r.SignerEmails {
		if v := strings.TrimSpace(e); v != "" {
			emails = append(emails, v)
		}
	}
	return emails
}
