package entities

import "time"

// ContractStatus represents the lifecycle of an accepted bid.
//
// Domain notes:
//   - A Contract is created when an organization accepts a contractor's bid.
//   - `signed` is driven exclusively by the signature reconciliation flow;
//     `completed` by completion-report approval.
//   - completed/cancelled are terminal.

type ContractStatus string

const (
	ContractStatusDraft     ContractStatus = "draft"
	ContractStatusSigned    ContractStatus = "signed"
	ContractStatusCompleted ContractStatus = "completed"
	ContractStatusCancelled ContractStatus = "cancelled"
)

// BusinessType distinguishes individual contractors from corporations.
// Only individuals are subject to withholding at payout close.

type BusinessType string

const (
	BusinessTypeIndividual  BusinessType = "individual"
	BusinessTypeCorporation BusinessType = "corporation"
)

// Contract is the accepted-bid record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - BidAmount is integer yen. It is immutable once the contract is signed.
type Contract struct {
	ID                      string         `json:"id"`
	ProjectID               string         `json:"project_id"`
	ContractorID            string         `json:"contractor_id"`
	OrganizationID          string         `json:"organization_id"`
	BidAmount               int64          `json:"bid_amount"`
	SupportEnabled          bool           `json:"support_enabled"`
	SupportFeePercent       float64        `json:"support_fee_percent"`
	Status                  ContractStatus `json:"status"`
	OrderAcceptanceSignedAt *time.Time     `json:"order_acceptance_signed_at,omitempty"`
	CompletedAt             *time.Time     `json:"completed_at,omitempty"`
	CreatedAt               time.Time      `json:"created_at"`
	UpdatedAt               time.Time      `json:"updated_at"`
}

// IsTerminal reports whether no further automatic transition applies.
func (s ContractStatus) IsTerminal() bool {
	return s == ContractStatusCompleted || s == ContractStatusCancelled
}
