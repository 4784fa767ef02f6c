package settlement

import (
	"errors"
	"time"
)

// The cutoff calendar runs on the platform's local calendar. JST has no DST,
// so a fixed offset is exact and avoids a tzdata dependency at runtime.
var JST = time.FixedZone("JST", 9*60*60)

var ErrInvalidPeriod = errors.New("invalid billing period")

// BillingPeriod is the fixed 21st-to-20th monthly cutoff window for a
// (year, month) pair. The period for month M covers the 21st of M-1 through
// the 20th of M, inclusive, and is not configurable per organization.
type BillingPeriod struct {
	Year  int
	Month time.Month
}

// NewBillingPeriod validates year/month query parameters into a period.
func NewBillingPeriod(year, month int) (BillingPeriod, error) {
	if year < 2000 || year > 2999 || month < 1 || month > 12 {
		return BillingPeriod{}, ErrInvalidPeriod
	}
	return BillingPeriod{Year: year, Month: time.Month(month)}, nil
}

// PeriodContaining returns the cutoff period an issue date falls into:
// the 21st or later belongs to the following month's period.
func PeriodContaining(t time.Time) BillingPeriod {
	d := t.In(JST)
	y, m := d.Year(), d.Month()
	if d.Day() >= 21 {
		m++
		if m > time.December {
			m = time.January
			y++
		}
	}
	return BillingPeriod{Year: y, Month: m}
}

// Start is the 21st of the preceding month, 00:00 JST.
func (p BillingPeriod) Start() time.Time {
	// time.Date normalizes month 0 to December of the previous year.
	return time.Date(p.Year, p.Month-1, 21, 0, 0, 0, 0, JST)
}

// End is the 20th of the period month, 00:00 JST. The period is inclusive of
// the whole of the 20th; Contains handles the day boundary.
func (p BillingPeriod) End() time.Time {
	return time.Date(p.Year, p.Month, 20, 0, 0, 0, 0, JST)
}

// Contains reports whether an issue date falls inside the period.
func (p BillingPeriod) Contains(t time.Time) bool {
	d := t.In(JST)
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, JST)
	return !day.Before(p.Start()) && !day.After(p.End())
}

// PayDate is the contractor payout date: the last calendar day of the period
// month.
func (p BillingPeriod) PayDate() time.Time {
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, JST)
}

// DueDate is the organization statement due date: the 5th of the following
// month.
func (p BillingPeriod) DueDate() time.Time {
	return time.Date(p.Year, p.Month+1, 5, 0, 0, 0, 0, JST)
}

// Key is the storage-facing period identifier used as a DynamoDB sort key.
func (p BillingPeriod) Key() string {
	return p.Start().Format("2006-01-02") + "_" + p.End().Format("2006-01-02")
}
