package request

import (
	"strings"

	"kensetsu_match/internal/domain/entities"
)

// InvoiceGenerateRequest is the payload for assembling a contractor invoice
// from a completed contract.
type InvoiceGenerateRequest struct {
	ContractID   string `json:"contract_id" binding:"required"`
	BusinessType string `json:"business_type" binding:"required"`
}

func (r InvoiceGenerateRequest) ResolveContractID() string {
	return strings.TrimSpace(r.ContractID)
}

func (r InvoiceGenerateRequest) ResolveBusinessType() (entities.BusinessType, bool) {
	switch entities.BusinessType(strings.ToLower(strings.TrimSpace(r.BusinessType))) {
	case entities.BusinessTypeIndividual:
		return entities.BusinessTypeIndividual, true
	case entities.BusinessTypeCorporation:
		return entities.BusinessTypeCorporation, true
	}
	return "", false
}
