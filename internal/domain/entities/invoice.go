package entities

import "time"

// InvoiceDirection indicates who bills whom.
//
//   - to_operator: the contractor bills the platform operator.
//   - from_operator: the operator bills the ordering organization.

type InvoiceDirection string

const (
	InvoiceDirectionToOperator   InvoiceDirection = "to_operator"
	InvoiceDirectionFromOperator InvoiceDirection = "from_operator"
)

// InvoiceStatus represents the invoice lifecycle.
// An invoice is immutable once issued, except for status transitions.

type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusIssued    InvoiceStatus = "issued"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// Invoice is one billing record per (contract, direction), persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: contract_id, SK: direction (enforces one invoice per pair)
//   - GSI id-index (PK: id)
//   - GSI contractor_id-index (PK: contractor_id)
//   - GSI organization_id-index (PK: organization_id)
//
// Monetary representation (all integer yen):
//   - TotalAmount = BaseAmount - FeeAmount
//   - SystemFee is the statutory withholding computed on TotalAmount
//   - FinalAmount = TotalAmount - SystemFee
type Invoice struct {
	ID             string `json:"id"`
	ContractID     string `json:"contract_id"`
	ContractorID   string `json:"contractor_id"`
	OrganizationID string `json:"organization_id"`
	// BusinessType is denormalized from the contractor at assembly time so
	// the payout close can apply withholding without a contractor lookup.
	BusinessType BusinessType     `json:"contractor_business_type"`
	Direction    InvoiceDirection `json:"direction"`
	BaseAmount   int64            `json:"base_amount"`
	FeeAmount    int64            `json:"fee_amount"`
	TotalAmount  int64            `json:"total_amount"`
	SystemFee    int64            `json:"system_fee"`
	FinalAmount  int64            `json:"final_amount"`
	Status       InvoiceStatus    `json:"status"`
	IssueDate    time.Time        `json:"issue_date"`
	DueDate      time.Time        `json:"due_date"`
	DocumentRef  string           `json:"document_ref,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
