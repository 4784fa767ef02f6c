package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"kensetsu_match/internal/domain/entities"
	"kensetsu_match/internal/domain/settlement"
	"kensetsu_match/internal/usecase/interfaces"
	"kensetsu_match/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidContractID        = errors.New("invalid contract_id")
	ErrInvalidInvoiceID         = errors.New("invalid invoice id")
	ErrInvalidBusinessType      = errors.New("invalid business type")
	ErrContractNotFound         = errors.New("contract not found")
	ErrContractNotCompleted     = errors.New("contract not completed")
	ErrDuplicateInvoice         = errors.New("invoice already exists for this contract and direction")
	ErrInvoiceNotFound          = errors.New("invoice not found")
	ErrInvalidInvoiceTransition = errors.New("invalid invoice status transition")
	// ErrAmountMismatch marks an arithmetic/invariant violation detected by
	// the write-time audit. It indicates a logic bug or tampered data, never
	// a transient fault, and always blocks the write.
	ErrAmountMismatch = errors.New("invoice amounts failed validation")
)

// IInvoiceUseCase assembles and reads contractor invoices.
//
//   - GenerateFromCompletion builds the single to_operator invoice for a
//     completed contract. Exactly one invoice exists per (contract,
//     direction): re-invocation fails with ErrDuplicateInvoice, never a
//     second row.

type IInvoiceUseCase interface {
	GenerateFromCompletion(ctx context.Context, contractID string, businessType entities.BusinessType) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByContractID(ctx context.Context, contractID string) ([]entities.Invoice, error)
	MarkPaid(ctx context.Context, id string) (entities.Invoice, error)
	Cancel(ctx context.Context, id string) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo         interfaces.IInvoiceRepository
	contractRepo interfaces.IContractRepository
	renderer     interfaces.IDocumentRenderer
	now          func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, contractRepo interfaces.IContractRepository, renderer interfaces.IDocumentRenderer) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, contractRepo: contractRepo, renderer: renderer, now: time.Now}
}

func (u *InvoiceUseCase) GenerateFromCompletion(ctx context.Context, contractID string, businessType entities.BusinessType) (entities.Invoice, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return entities.Invoice{}, ErrInvalidContractID
	}
	if businessType != entities.BusinessTypeIndividual && businessType != entities.BusinessTypeCorporation {
		return entities.Invoice{}, ErrInvalidBusinessType
	}

	contract, err := u.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if contract.ID == "" {
		return entities.Invoice{}, ErrContractNotFound
	}
	if contract.Status != entities.ContractStatusCompleted {
		logger.L().Infow("invoice generation rejected", "contract_id", contractID, "status", contract.Status)
		return entities.Invoice{}, ErrContractNotCompleted
	}

	amounts := settlement.CalculateInvoiceAmounts(contract.BidAmount, contract.SupportFeePercent, contract.SupportEnabled)

	now := u.now().In(settlement.JST)
	period := settlement.PeriodContaining(now)
	inv := entities.Invoice{
		ID:             uuid.NewString(),
		ContractID:     contract.ID,
		ContractorID:   contract.ContractorID,
		OrganizationID: contract.OrganizationID,
		BusinessType:   businessType,
		Direction:      entities.InvoiceDirectionToOperator,
		BaseAmount:     amounts.BaseAmount,
		FeeAmount:      amounts.FeeAmount,
		TotalAmount:    amounts.TotalAmount,
		SystemFee:      amounts.SystemFee,
		FinalAmount:    amounts.FinalAmount,
		Status:         entities.InvoiceStatusIssued,
		IssueDate:      now,
		DueDate:        period.DueDate(),
		CreatedAt:      now.UTC(),
		UpdatedAt:      now.UTC(),
	}

	// Audit gate: recompute the breakdown against the record about to be
	// written. Any mismatch is a hard failure, never a silent correction.
	if errs := settlement.ValidateInvoiceAmounts(inv, contract.SupportFeePercent, contract.SupportEnabled); len(errs) > 0 {
		logger.L().Errorw("invoice amount validation failed", "contract_id", contractID, "violations", errs)
		return entities.Invoice{}, ErrAmountMismatch
	}

	// Rendering is presentation only; the invoice is valid without an
	// artifact, so a renderer failure downgrades to a log line.
	if u.renderer != nil {
		ref, rerr := u.renderer.Render(ctx, "invoice", map[string]any{
			"invoice_id":   inv.ID,
			"contract_id":  inv.ContractID,
			"base_amount":  inv.BaseAmount,
			"fee_amount":   inv.FeeAmount,
			"total_amount": inv.TotalAmount,
			"system_fee":   inv.SystemFee,
			"final_amount": inv.FinalAmount,
			"issue_date":   inv.IssueDate.Format("2006-01-02"),
			"due_date":     inv.DueDate.Format("2006-01-02"),
		})
		if rerr != nil {
			logger.L().Warnw("invoice document render failed", "invoice_id", inv.ID, "err", rerr)
		} else {
			inv.DocumentRef = ref
		}
	}

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.Invoice{}, ErrDuplicateInvoice
		}
		return entities.Invoice{}, err
	}
	logger.L().Infow("invoice generated", "invoice_id", created.ID, "contract_id", contractID, "final_amount", created.FinalAmount)
	return created, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) ListByContractID(ctx context.Context, contractID string) ([]entities.Invoice, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return nil, ErrInvalidContractID
	}
	return u.repo.ListByContractID(ctx, contractID)
}

func (u *InvoiceUseCase) MarkPaid(ctx context.Context, id string) (entities.Invoice, error) {
	return u.transition(ctx, id, entities.InvoiceStatusPaid)
}

func (u *InvoiceUseCase) Cancel(ctx context.Context, id string) (entities.Invoice, error) {
	return u.transition(ctx, id, entities.InvoiceStatusCancelled)
}

// transition enforces the invoice lifecycle: issued -> paid | cancelled.
// Amounts are immutable once issued; only the status may move.
func (u *InvoiceUseCase) transition(ctx context.Context, id string, to entities.InvoiceStatus) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.Status != entities.InvoiceStatusIssued {
		return entities.Invoice{}, ErrInvalidInvoiceTransition
	}
	return u.repo.UpdateStatus(ctx, inv.ID, to)
}
