package settlement

import (
	"fmt"
	"math"

	"kensetsu_match/internal/domain/entities"
)

// Statutory withholding brackets (国税庁 No.2792). Integer yen, floored at
// the bracket formula, never rounded. Rates are kept as basis-point
// numerators so the floor is exact integer division, not a float floor.
const (
	withholdingBracketThreshold = 1_000_000
	withholdingRateLowBps       = 1021 // 10.21%
	withholdingRateHighBps      = 2042 // 20.42%
	withholdingRateDenominator  = 10000
	withholdingHighFixedPart    = 102_100
)

// CalculateWithholding returns the withholding tax for a post-fee subtotal.
//
//	subtotal <= 1,000,000: floor(subtotal * 0.1021)
//	subtotal >  1,000,000: floor((subtotal - 1,000,000) * 0.2042) + 102,100
func CalculateWithholding(subtotal int64) int64 {
	if subtotal <= 0 {
		return 0
	}
	if subtotal <= withholdingBracketThreshold {
		return subtotal * withholdingRateLowBps / withholdingRateDenominator
	}
	excess := subtotal - withholdingBracketThreshold
	return excess*withholdingRateHighBps/withholdingRateDenominator + withholdingHighFixedPart
}

// InvoiceAmounts is the full monetary breakdown of one invoice.
type InvoiceAmounts struct {
	BaseAmount  int64 `json:"base_amount"`
	FeeAmount   int64 `json:"fee_amount"`
	TotalAmount int64 `json:"total_amount"`
	SystemFee   int64 `json:"system_fee"`
	FinalAmount int64 `json:"final_amount"`
}

// roundHalfUp rounds a non-negative value to the nearest yen, .5 away from zero.
func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// CalculateInvoiceAmounts computes the breakdown for a single contract.
//
// The support fee uses round-half-up; the withholding inside uses the
// statutory floor. The two rounding modes are intentional and must not be
// unified.
func CalculateInvoiceAmounts(contractAmount int64, supportFeePercent float64, supportEnabled bool) InvoiceAmounts {
	base := contractAmount
	var fee int64
	if supportEnabled {
		fee = roundHalfUp(float64(base) * supportFeePercent / 100)
	}
	total := base - fee
	systemFee := CalculateWithholding(total)
	return InvoiceAmounts{
		BaseAmount:  base,
		FeeAmount:   fee,
		TotalAmount: total,
		SystemFee:   systemFee,
		FinalAmount: total - systemFee,
	}
}

// ValidateInvoiceAmounts recomputes the expected breakdown for an invoice
// record and reports every mismatch plus the sanity bounds. It never mutates
// the record, so it can audit historical rows as-is.
func ValidateInvoiceAmounts(inv entities.Invoice, supportFeePercent float64, supportEnabled bool) []error {
	var errs []error
	want := CalculateInvoiceAmounts(inv.BaseAmount, supportFeePercent, supportEnabled)

	if inv.FeeAmount != want.FeeAmount {
		errs = append(errs, fmt.Errorf("fee_amount: got %d, want %d", inv.FeeAmount, want.FeeAmount))
	}
	if inv.TotalAmount != want.TotalAmount {
		errs = append(errs, fmt.Errorf("total_amount: got %d, want %d", inv.TotalAmount, want.TotalAmount))
	}
	if inv.SystemFee != want.SystemFee {
		errs = append(errs, fmt.Errorf("system_fee: got %d, want %d", inv.SystemFee, want.SystemFee))
	}
	if inv.FinalAmount != want.FinalAmount {
		errs = append(errs, fmt.Errorf("final_amount: got %d, want %d", inv.FinalAmount, want.FinalAmount))
	}

	if inv.FeeAmount < 0 || inv.FeeAmount > inv.BaseAmount {
		errs = append(errs, fmt.Errorf("fee_amount %d out of bounds [0, %d]", inv.FeeAmount, inv.BaseAmount))
	}
	if inv.TotalAmount != inv.BaseAmount-inv.FeeAmount {
		errs = append(errs, fmt.Errorf("total_amount %d != base_amount - fee_amount (%d)", inv.TotalAmount, inv.BaseAmount-inv.FeeAmount))
	}
	if inv.TotalAmount > 0 && (inv.SystemFee < 0 || inv.SystemFee >= inv.TotalAmount) {
		errs = append(errs, fmt.Errorf("system_fee %d out of bounds [0, %d)", inv.SystemFee, inv.TotalAmount))
	}
	if inv.FinalAmount != inv.TotalAmount-inv.SystemFee {
		errs = append(errs, fmt.Errorf("final_amount %d != total_amount - system_fee (%d)", inv.FinalAmount, inv.TotalAmount-inv.SystemFee))
	}
	return errs
}

// ContractLine is the calculator-facing slice of a contract.
type ContractLine struct {
	BidAmount      int64
	SupportEnabled bool
}

// AggregateAmounts is the breakdown of a multi-contract settlement.
type AggregateAmounts struct {
	BaseAmount  int64 `json:"base_amount"`
	FeeAmount   int64 `json:"fee_amount"`
	TotalAmount int64 `json:"total_amount"`
	SystemFee   int64 `json:"system_fee"`
	FinalAmount int64 `json:"final_amount"`
}

// CalculateInvoiceAmountsFromContracts sums per-contract base/fee amounts and
// then computes ONE withholding on the summed subtotal.
//
// The ordering is load-bearing: the brackets are non-linear, so withholding
// each contract and summing generally yields a different total than summing
// subtotals and withholding once. Period aggregation uses this variant;
// single-invoice generation uses CalculateInvoiceAmounts.
func CalculateInvoiceAmountsFromContracts(contracts []ContractLine, supportFeePercent float64) AggregateAmounts {
	var agg AggregateAmounts
	for _, c := range contracts {
		a := CalculateInvoiceAmounts(c.BidAmount, supportFeePercent, c.SupportEnabled)
		agg.BaseAmount += a.BaseAmount
		agg.FeeAmount += a.FeeAmount
		agg.TotalAmount += a.TotalAmount
	}
	agg.SystemFee = CalculateWithholding(agg.TotalAmount)
	agg.FinalAmount = agg.TotalAmount - agg.SystemFee
	return agg
}

// ContractorPayout is the deduction breakdown of one period payout.
type ContractorPayout struct {
	GrossAmount    int64 `json:"gross_amount"`
	TaxWithholding int64 `json:"tax_withholding"`
	TransferFee    int64 `json:"transfer_fee"`
	NetAmount      int64 `json:"net_amount"`
}

// CalculateContractorPayout computes the net period payout for a contractor.
// Withholding is applied once on the period total, individuals only;
// the flat bank transfer fee is deducted for everyone.
func CalculateContractorPayout(businessType entities.BusinessType, totalBilled int64, transferFee int64) ContractorPayout {
	var withholding int64
	if businessType == entities.BusinessTypeIndividual {
		withholding = CalculateWithholding(totalBilled)
	}
	return ContractorPayout{
		GrossAmount:    totalBilled,
		TaxWithholding: withholding,
		TransferFee:    transferFee,
		NetAmount:      totalBilled - withholding - transferFee,
	}
}

// OrgInvoice is the organization-side statement breakdown.
type OrgInvoice struct {
	ContractorsTotal int64 `json:"contractors_total"`
	OperatorFee      int64 `json:"operator_fee"`
	TotalAmount      int64 `json:"total_amount"`
}

// CalculateOrgInvoice adds the operator's service fee on top of the period's
// contractor invoice total.
func CalculateOrgInvoice(contractorsTotal int64, operatorFeePercent float64) OrgInvoice {
	fee := roundHalfUp(float64(contractorsTotal) * operatorFeePercent / 100)
	return OrgInvoice{
		ContractorsTotal: contractorsTotal,
		OperatorFee:      fee,
		TotalAmount:      contractorsTotal + fee,
	}
}
