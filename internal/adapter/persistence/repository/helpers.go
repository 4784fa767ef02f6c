package repository

import (
	"errors"
	"os"
	"time"

	"kensetsu_match/internal/domain/settlement"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const dateLayout = "2006-01-02"

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

// Calendar dates (issue/due/period/pay dates) are stored as plain JST dates:
// day granularity is what the cutoff rules are defined on, and the format
// compares correctly as a string in filter expressions.
func formatDate(t time.Time) string {
	return t.In(settlement.JST).Format(dateLayout)
}

func parseDate(s string) time.Time {
	t, _ := time.ParseInLocation(dateLayout, s, settlement.JST)
	return t
}

// periodKey is the payout/statement sort key: "<start>_<end>" in JST dates,
// matching settlement.BillingPeriod.Key().
func periodKey(start, end time.Time) string {
	return formatDate(start) + "_" + formatDate(end)
}
