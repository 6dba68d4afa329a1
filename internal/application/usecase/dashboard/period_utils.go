// Package dashboard contains the aggregation engine and the dashboard use cases built on it.
package dashboard

import (
	"fmt"
	"time"

	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// Period is the bucket size of the expense trend series.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// DefaultPeriod is used when no period is requested.
const DefaultPeriod = PeriodMonthly

// monthLayout is the layout of Month values on the wire.
const monthLayout = "2006-01"

// ParsePeriod validates a period name. An empty value selects DefaultPeriod.
func ParsePeriod(value string) (Period, error) {
	switch p := Period(value); p {
	case "":
		return DefaultPeriod, nil
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return p, nil
	default:
		return "", domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidPeriod,
			"period must be: daily, weekly, or monthly",
			domainerror.ErrInvalidPeriod,
		)
	}
}

// PeriodStart returns the first day of the bucket containing date.
// Weekly buckets follow ISO weeks and start on Monday.
func PeriodStart(date time.Time, period Period) time.Time {
	day := entity.NormalizeDate(date)
	switch period {
	case PeriodWeekly:
		return getWeekStartDate(day)
	case PeriodMonthly:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

// PeriodLabel generates a human-readable label for a bucket.
// Formats:
// - Daily: "Jan 2"
// - Weekly: "W{iso_week} {iso_year}" (e.g., "W12 2025")
// - Monthly: "{month_abbr} {year}" (e.g., "Mar 2025")
func PeriodLabel(start time.Time, period Period) string {
	switch period {
	case PeriodWeekly:
		year, week := start.ISOWeek()
		return fmt.Sprintf("W%02d %d", week, year)
	case PeriodMonthly:
		return start.Format("Jan 2006")
	default:
		return start.Format("Jan 2")
	}
}

// getWeekStartDate returns the Monday of the week containing the given date.
func getWeekStartDate(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	daysFromMonday := weekday - 1
	return time.Date(date.Year(), date.Month(), date.Day()-daysFromMonday, 0, 0, 0, 0, time.UTC)
}

// Month identifies a calendar month.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// MonthOf returns the UTC calendar month containing t.
func MonthOf(t time.Time) Month {
	u := t.UTC()
	return Month{Year: u.Year(), Month: u.Month()}
}

// ParseMonth parses a YYYY-MM value.
func ParseMonth(value string) (Month, error) {
	t, err := time.Parse(monthLayout, value)
	if err != nil {
		return Month{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidMonth,
			"month must use the YYYY-MM format",
			domainerror.ErrInvalidMonth,
		)
	}
	return MonthOf(t), nil
}

// Contains reports whether the calendar date of t falls in the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// String formats the month as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// DateRange is an inclusive, optionally open-ended range of calendar dates.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether date falls inside the range.
func (r DateRange) Contains(date time.Time) bool {
	day := entity.NormalizeDate(date)
	if r.Start != nil && day.Before(entity.NormalizeDate(*r.Start)) {
		return false
	}
	if r.End != nil && day.After(entity.NormalizeDate(*r.End)) {
		return false
	}
	return true
}

// Validate rejects ranges whose end precedes their start.
func (r DateRange) Validate() error {
	if r.Start != nil && r.End != nil && r.End.Before(*r.Start) {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}

func (r DateRange) key() string {
	format := func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.Format(entity.DateLayout)
	}
	return format(r.Start) + ":" + format(r.End)
}
