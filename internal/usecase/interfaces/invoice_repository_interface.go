package interfaces

import (
	"context"
	"time"

	"kensetsu_match/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// Create is conditional on the (contract_id, direction) key being free and
// returns ErrAlreadyExists otherwise; that is the write-time half of the
// one-invoice-per-contract-per-direction guarantee.
//
// The period listing reads are the aggregator's immutable read set: they never
// mutate the invoices they return.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByContractAndDirection(ctx context.Context, contractID string, direction entities.InvoiceDirection) (entities.Invoice, error)
	ListByContractID(ctx context.Context, contractID string) ([]entities.Invoice, error)
	ListIssuedInPeriod(ctx context.Context, direction entities.InvoiceDirection, periodStart, periodEnd time.Time) ([]entities.Invoice, error)
	ListIssuedByOrganizationInPeriod(ctx context.Context, organizationID string, direction entities.InvoiceDirection, periodStart, periodEnd time.Time) ([]entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error)
}
