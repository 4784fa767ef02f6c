package response

import (
	"time"

	"kensetsu_match/internal/domain/entities"
	"kensetsu_match/internal/domain/settlement"
)

// dateOnly renders a calendar date in Japan time, which is the timezone all
// cutoff arithmetic is done in.
func dateOnly(t time.Time) string {
	return t.In(settlement.JST).Format("2006-01-02")
}

type InvoiceResponse struct {
	ID             string    `json:"id"`
	ContractID     string    `json:"contract_id"`
	ContractorID   string    `json:"contractor_id"`
	OrganizationID string    `json:"organization_id"`
	Direction      string    `json:"direction"`
	BaseAmount     int64     `json:"base_amount"`
	FeeAmount      int64     `json:"fee_amount"`
	TotalAmount    int64     `json:"total_amount"`
	SystemFee      int64     `json:"system_fee"`
	FinalAmount    int64     `json:"final_amount"`
	Status         string    `json:"status"`
	IssueDate      string    `json:"issue_date"`
	DueDate        string    `json:"due_date"`
	DocumentRef    string    `json:"document_ref,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:             inv.ID,
		ContractID:     inv.ContractID,
		ContractorID:   inv.ContractorID,
		OrganizationID: inv.OrganizationID,
		Direction:      string(inv.Direction),
		BaseAmount:     inv.BaseAmount,
		FeeAmount:      inv.FeeAmount,
		TotalAmount:    inv.TotalAmount,
		SystemFee:      inv.SystemFee,
		FinalAmount:    inv.FinalAmount,
		Status:         string(inv.Status),
		IssueDate:      dateOnly(inv.IssueDate),
		DueDate:        dateOnly(inv.DueDate),
		DocumentRef:    inv.DocumentRef,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}
