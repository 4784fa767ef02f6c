package entities

import "time"

type PayoutStatus string

const (
	PayoutStatusScheduled PayoutStatus = "scheduled"
	PayoutStatusPaid      PayoutStatus = "paid"
)

// Payout is the contractor-facing settlement for one closed cutoff period.
//
// Storage model (DynamoDB):
//   - PK: contractor_id, SK: period_key (period_start_period_end)
//
// The composite key enforces one payout per (contractor, period): a re-run of
// the closing job cannot insert a second row.
//
// Monetary representation (integer yen):
//   - NetAmount = GrossAmount - TaxWithholding - TransferFee
type Payout struct {
	ID               string       `json:"id"`
	ContractorID     string       `json:"contractor_id"`
	PeriodStart      time.Time    `json:"period_start"`
	PeriodEnd        time.Time    `json:"period_end"`
	ScheduledPayDate time.Time    `json:"scheduled_pay_date"`
	GrossAmount      int64        `json:"gross_amount"`
	TaxWithholding   int64        `json:"tax_withholding"`
	TransferFee      int64        `json:"transfer_fee"`
	NetAmount        int64        `json:"net_amount"`
	InvoiceCount     int          `json:"invoice_count"`
	Status           PayoutStatus `json:"status"`
	PaidAt           *time.Time   `json:"paid_at,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}
