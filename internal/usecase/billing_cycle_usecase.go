package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"kensetsu_match/internal/domain/entities"
	"kensetsu_match/internal/domain/settlement"
	"kensetsu_match/internal/usecase/interfaces"
	"kensetsu_match/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrganizationID  = errors.New("invalid org_id")
	ErrInvalidContractorID    = errors.New("invalid contractor_id")
	ErrStatementAlreadyExists = errors.New("statement already exists for this organization and period")
	ErrNoInvoicesInPeriod     = errors.New("no invoices in period")
	ErrPayoutNotFound         = errors.New("payout not found")
)

// PeriodResolution echoes the cutoff actually used so callers can display or
// archive it.
type PeriodResolution struct {
	PeriodStart      time.Time `json:"period_start"`
	PeriodEnd        time.Time `json:"period_end"`
	ScheduledPayDate time.Time `json:"scheduled_pay_date"`
	DueDate          time.Time `json:"due_date"`
}

// ClosePeriodResult reports one close-contractors run: the payouts created in
// this run and the contractors skipped because their (contractor, period)
// row already existed from an earlier run.
type ClosePeriodResult struct {
	Period  PeriodResolution
	Created []entities.Payout
	Skipped int
}

// IBillingCycleUseCase runs the two periodic settlement jobs. Both are pure
// aggregation over the period's issued invoices: they only insert new
// aggregate rows and never mutate the invoices they read, so a mis-run can be
// deleted and re-run without corrupting source data.

type IBillingCycleUseCase interface {
	CloseContractors(ctx context.Context, year, month int) (ClosePeriodResult, error)
	InvoiceOrganization(ctx context.Context, organizationID string, year, month int) (entities.MonthlyStatement, PeriodResolution, error)
	GetPayout(ctx context.Context, contractorID string, year, month int) (entities.Payout, PeriodResolution, error)
}

type BillingCycleUseCase struct {
	invoiceRepo   interfaces.IInvoiceRepository
	payoutRepo    interfaces.IPayoutRepository
	statementRepo interfaces.IStatementRepository

	transferFee        int64
	operatorFeePercent float64
	now                func() time.Time
}

var _ IBillingCycleUseCase = (*BillingCycleUseCase)(nil)

func NewBillingCycleUseCase(invoiceRepo interfaces.IInvoiceRepository, payoutRepo interfaces.IPayoutRepository, statementRepo interfaces.IStatementRepository, transferFee int64, operatorFeePercent float64) *BillingCycleUseCase {
	return &BillingCycleUseCase{
		invoiceRepo:        invoiceRepo,
		payoutRepo:         payoutRepo,
		statementRepo:      statementRepo,
		transferFee:        transferFee,
		operatorFeePercent: operatorFeePercent,
		now:                time.Now,
	}
}

func resolvePeriod(year, month int) (settlement.BillingPeriod, PeriodResolution, error) {
	p, err := settlement.NewBillingPeriod(year, month)
	if err != nil {
		return settlement.BillingPeriod{}, PeriodResolution{}, err
	}
	return p, PeriodResolution{
		PeriodStart:      p.Start(),
		PeriodEnd:        p.End(),
		ScheduledPayDate: p.PayDate(),
		DueDate:          p.DueDate(),
	}, nil
}

// CloseContractors sums every to_operator invoice subtotal issued within the
// period, grouped by contractor, and inserts one scheduled payout per
// contractor. Contractors already closed for this exact period are skipped;
// the (contractor, period) uniqueness itself is enforced by the conditional
// write, so two concurrent runs cannot both insert.
func (u *BillingCycleUseCase) CloseContractors(ctx context.Context, year, month int) (ClosePeriodResult, error) {
	period, resolution, err := resolvePeriod(year, month)
	if err != nil {
		return ClosePeriodResult{}, err
	}

	invoices, err := u.invoiceRepo.ListIssuedInPeriod(ctx, entities.InvoiceDirectionToOperator, period.Start(), period.End())
	if err != nil {
		return ClosePeriodResult{}, err
	}

	type bucket struct {
		total        int64
		count        int
		businessType entities.BusinessType
	}
	byContractor := map[string]*bucket{}
	for _, inv := range invoices {
		b, ok := byContractor[inv.ContractorID]
		if !ok {
			b = &bucket{businessType: inv.BusinessType}
			byContractor[inv.ContractorID] = b
		}
		b.total += inv.TotalAmount
		b.count++
	}

	contractorIDs := make([]string, 0, len(byContractor))
	for id := range byContractor {
		contractorIDs = append(contractorIDs, id)
	}
	sort.Strings(contractorIDs)

	result := ClosePeriodResult{Period: resolution}
	now := u.now().UTC()
	for _, contractorID := range contractorIDs {
		b := byContractor[contractorID]
		breakdown := settlement.CalculateContractorPayout(b.businessType, b.total, u.transferFee)

		payout := entities.Payout{
			ID:               uuid.NewString(),
			ContractorID:     contractorID,
			PeriodStart:      period.Start(),
			PeriodEnd:        period.End(),
			ScheduledPayDate: period.PayDate(),
			GrossAmount:      breakdown.GrossAmount,
			TaxWithholding:   breakdown.TaxWithholding,
			TransferFee:      breakdown.TransferFee,
			NetAmount:        breakdown.NetAmount,
			InvoiceCount:     b.count,
			Status:           entities.PayoutStatusScheduled,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		created, err := u.payoutRepo.Create(ctx, payout)
		if err != nil {
			if errors.Is(err, interfaces.ErrAlreadyExists) {
				result.Skipped++
				continue
			}
			return ClosePeriodResult{}, err
		}
		result.Created = append(result.Created, created)
	}

	logger.L().Infow("contractor period closed",
		"period", period.Key(), "created", len(result.Created), "skipped", result.Skipped, "invoices", len(invoices))
	return result, nil
}

// InvoiceOrganization sums the period's to_operator invoices belonging to one
// organization's contracts, adds the operator service fee on top, and inserts
// one MonthlyStatement for the (organization, period).
func (u *BillingCycleUseCase) InvoiceOrganization(ctx context.Context, organizationID string, year, month int) (entities.MonthlyStatement, PeriodResolution, error) {
	organizationID = strings.TrimSpace(organizationID)
	if organizationID == "" {
		return entities.MonthlyStatement{}, PeriodResolution{}, ErrInvalidOrganizationID
	}
	period, resolution, err := resolvePeriod(year, month)
	if err != nil {
		return entities.MonthlyStatement{}, PeriodResolution{}, err
	}

	invoices, err := u.invoiceRepo.ListIssuedByOrganizationInPeriod(ctx, organizationID, entities.InvoiceDirectionToOperator, period.Start(), period.End())
	if err != nil {
		return entities.MonthlyStatement{}, PeriodResolution{}, err
	}
	if len(invoices) == 0 {
		return entities.MonthlyStatement{}, resolution, ErrNoInvoicesInPeriod
	}

	var contractorsTotal int64
	for _, inv := range invoices {
		contractorsTotal += inv.TotalAmount
	}
	breakdown := settlement.CalculateOrgInvoice(contractorsTotal, u.operatorFeePercent)

	now := u.now().UTC()
	statement := entities.MonthlyStatement{
		ID:               uuid.NewString(),
		OrganizationID:   organizationID,
		PeriodStart:      period.Start(),
		PeriodEnd:        period.End(),
		DueDate:          period.DueDate(),
		ContractorsTotal: breakdown.ContractorsTotal,
		OperatorFee:      breakdown.OperatorFee,
		TotalAmount:      breakdown.TotalAmount,
		InvoiceCount:     len(invoices),
		Status:           entities.StatementStatusIssued,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.statementRepo.Create(ctx, statement)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.MonthlyStatement{}, resolution, ErrStatementAlreadyExists
		}
		return entities.MonthlyStatement{}, PeriodResolution{}, err
	}
	logger.L().Infow("organization statement issued",
		"org_id", organizationID, "period", period.Key(), "total_amount", created.TotalAmount, "invoices", len(invoices))
	return created, resolution, nil
}

func (u *BillingCycleUseCase) GetPayout(ctx context.Context, contractorID string, year, month int) (entities.Payout, PeriodResolution, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return entities.Payout{}, PeriodResolution{}, ErrInvalidContractorID
	}
	period, resolution, err := resolvePeriod(year, month)
	if err != nil {
		return entities.Payout{}, PeriodResolution{}, err
	}

	payout, err := u.payoutRepo.GetByContractorAndPeriod(ctx, contractorID, period.Key())
	if err != nil {
		return entities.Payout{}, PeriodResolution{}, err
	}
	if payout.ID == "" {
		return entities.Payout{}, resolution, ErrPayoutNotFound
	}
	return payout, resolution, nil
}
