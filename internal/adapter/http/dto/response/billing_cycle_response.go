package response

import (
	"time"

	"kensetsu_match/internal/domain/entities"
	"kensetsu_match/internal/usecase"
)

type PeriodResponse struct {
	PeriodStart      string `json:"period_start"`
	PeriodEnd        string `json:"period_end"`
	ScheduledPayDate string `json:"scheduled_pay_date"`
	DueDate          string `json:"due_date"`
}

func FromPeriodResolution(p usecase.PeriodResolution) PeriodResponse {
	return PeriodResponse{
		PeriodStart:      dateOnly(p.PeriodStart),
		PeriodEnd:        dateOnly(p.PeriodEnd),
		ScheduledPayDate: dateOnly(p.ScheduledPayDate),
		DueDate:          dateOnly(p.DueDate),
	}
}

type PayoutResponse struct {
	ID               string     `json:"id"`
	ContractorID     string     `json:"contractor_id"`
	PeriodStart      string     `json:"period_start"`
	PeriodEnd        string     `json:"period_end"`
	ScheduledPayDate string     `json:"scheduled_pay_date"`
	GrossAmount      int64      `json:"gross_amount"`
	TaxWithholding   int64      `json:"tax_withholding"`
	TransferFee      int64      `json:"transfer_fee"`
	NetAmount        int64      `json:"net_amount"`
	InvoiceCount     int        `json:"invoice_count"`
	Status           string     `json:"status"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func FromPayout(p entities.Payout) PayoutResponse {
	return PayoutResponse{
		ID:               p.ID,
		ContractorID:     p.ContractorID,
		PeriodStart:      dateOnly(p.PeriodStart),
		PeriodEnd:        dateOnly(p.PeriodEnd),
		ScheduledPayDate: dateOnly(p.ScheduledPayDate),
		GrossAmount:      p.GrossAmount,
		TaxWithholding:   p.TaxWithholding,
		TransferFee:      p.TransferFee,
		NetAmount:        p.NetAmount,
		InvoiceCount:     p.InvoiceCount,
		Status:           string(p.Status),
		PaidAt:           p.PaidAt,
		CreatedAt:        p.CreatedAt,
	}
}

type ClosePeriodResponse struct {
	Period  PeriodResponse   `json:"period"`
	Created []PayoutResponse `json:"created"`
	Skipped int              `json:"skipped"`
}

func FromClosePeriodResult(r usecase.ClosePeriodResult) ClosePeriodResponse {
	created := make([]PayoutResponse, 0, len(r.Created))
	for _, p := range r.Created {
		created = append(created, FromPayout(p))
	}
	return ClosePeriodResponse{
		Period:  FromPeriodResolution(r.Period),
		Created: created,
		Skipped: r.Skipped,
	}
}

type StatementResponse struct {
	ID               string     `json:"id"`
	OrganizationID   string     `json:"organization_id"`
	PeriodStart      string     `json:"period_start"`
	PeriodEnd        string     `json:"period_end"`
	DueDate          string     `json:"due_date"`
	ContractorsTotal int64      `json:"contractors_total"`
	OperatorFee      int64      `json:"operator_fee"`
	TotalAmount      int64      `json:"total_amount"`
	InvoiceCount     int        `json:"invoice_count"`
	Status           string     `json:"status"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func FromStatement(s entities.MonthlyStatement) StatementResponse {
	return StatementResponse{
		ID:               s.ID,
		OrganizationID:   s.OrganizationID,
		PeriodStart:      dateOnly(s.PeriodStart),
		PeriodEnd:        dateOnly(s.PeriodEnd),
		DueDate:          dateOnly(s.DueDate),
		ContractorsTotal: s.ContractorsTotal,
		OperatorFee:      s.OperatorFee,
		TotalAmount:      s.TotalAmount,
		InvoiceCount:     s.InvoiceCount,
		Status:           string(s.Status),
		PaidAt:           s.PaidAt,
		CreatedAt:        s.CreatedAt,
	}
}
