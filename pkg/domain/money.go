package domain

import (
	"strings"

	"github.com/shopspring/decimal"

	dErrors "people/pkg/domain-errors"
)

// MoneyScale is the maximum number of fractional digits a monetary value may carry.
const MoneyScale = 2

// ParseMoney parses a decimal string without rounding, so "1.005" keeps its
// three fractional digits and is later rejected by validation.
func ParseMoney(s, label string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, dErrors.Newf(dErrors.CodeInvalidInput, "invalid amount for %s: %s", label, s)
	}
	return d, nil
}

// FractionalDigits reports how many fractional digits d was written with.
func FractionalDigits(d decimal.Decimal) int {
	if exp := d.Exponent(); exp < 0 {
		return int(-exp)
	}
	return 0
}

// FormatMoney renders d with exactly two fractional digits.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(MoneyScale)
}
