package request

// BillingPeriodRequest selects one cutoff period by its closing month. The
// period runs from the 21st of the previous month through the 20th of the
// given month, Japan time.
type BillingPeriodRequest struct {
	Year  int `json:"year" binding:"required"`
	Month int `json:"month" binding:"required"`
}
