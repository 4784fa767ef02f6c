package entities

import "time"

type StatementStatus string

const (
	StatementStatusIssued StatementStatus = "issued"
	StatementStatusPaid   StatementStatus = "paid"
)

// MonthlyStatement is the organization-facing aggregate for one closed
// cutoff period: the sum of the period's contractor invoices plus the
// operator's service fee on top.
//
// Storage model (DynamoDB):
//   - PK: organization_id, SK: period_key (period_start_period_end)
//
// Monetary representation (integer yen):
//   - TotalAmount = ContractorsTotal + OperatorFee
type MonthlyStatement struct {
	ID               string          `json:"id"`
	OrganizationID   string          `json:"organization_id"`
	PeriodStart      time.Time       `json:"period_start"`
	PeriodEnd        time.Time       `json:"period_end"`
	DueDate          time.Time       `json:"due_date"`
	ContractorsTotal int64           `json:"contractors_total"`
	OperatorFee      int64           `json:"operator_fee"`
	TotalAmount      int64           `json:"total_amount"`
	InvoiceCount     int             `json:"invoice_count"`
	Status           StatementStatus `json:"status"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
