package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits kept for currency amounts.
const MoneyScale = 2

// DateLayout is the wire and storage layout for calendar dates.
const DateLayout = "2006-01-02"

// HasMoneyScale reports whether amount is representable with MoneyScale fractional digits.
func HasMoneyScale(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(MoneyScale))
}

// RoundMoney rounds amount to MoneyScale digits. Only presentation code should need it.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyScale)
}

// NormalizeDate drops the clock part of t, keeping its calendar date at UTC midnight.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts YYYY-MM-DD or RFC 3339 input and returns the calendar date it names.
// For RFC 3339 input the date is taken in the offset the caller supplied.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return NormalizeDate(t), nil
}
