package valueobject

import (
	"fmt"
	"time"

	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

// Period is a reporting window: a whole year, or one month of a year.
type Period struct {
	Year  int
	Month int // 0 means the whole year
}

// NewPeriod validates year and month (0-12).
func NewPeriod(year, month int) (Period, error) {
	if year < 1900 || year > 9999 {
		return Period{}, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidPeriod,
			fmt.Sprintf("year %d is out of range", year),
			domainerror.ErrInvalidPeriod,
		)
	}
	if month < 0 || month > 12 {
		return Period{}, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidPeriod,
			fmt.Sprintf("month %d is out of range", month),
			domainerror.ErrInvalidPeriod,
		)
	}
	return Period{Year: year, Month: month}, nil
}

// IsMonth reports whether the period covers a single month.
func (p Period) IsMonth() bool {
	return p.Month != 0
}

// Bounds returns the inclusive start and exclusive end of the period in UTC.
func (p Period) Bounds() (time.Time, time.Time) {
	if p.IsMonth() {
		start := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0)
	}
	start := time.Date(p.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}

// Contains reports whether the calendar date of t falls within the period.
func (p Period) Contains(t time.Time) bool {
	if t.Year() != p.Year {
		return false
	}
	return !p.IsMonth() || int(t.Month()) == p.Month
}

// String renders "2023" or "2023-01".
func (p Period) String() string {
	if p.IsMonth() {
		return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
	}
	return fmt.Sprintf("%04d", p.Year)
}
