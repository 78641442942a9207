package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatError reports a currency or numeric string that could not be parsed.
type FormatError struct {
	Kind  string // "currency" or "number"
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Kind, e.Input, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ParseCurrency converts a dollar string such as "$12,345.00" to a number.
// Callers exclude "Not Available" cells before parsing.
func ParseCurrency(raw string) (float64, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.ReplaceAll(clean, "$", "")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return 0, &FormatError{Kind: "currency", Input: raw, Err: fmt.Errorf("empty amount")}
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, &FormatError{Kind: "currency", Input: raw, Err: err}
	}
	return d.InexactFloat64(), nil
}

// ParseNumber converts a measure cell to a number, tolerating thousands
// separators and a trailing percent sign.
func ParseNumber(raw string) (float64, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimSuffix(clean, "%")
	clean = strings.ReplaceAll(clean, ",", "")
	v, err := strconv.ParseFloat(strings.TrimSpace(clean), 64)
	if err != nil {
		return 0, &FormatError{Kind: "number", Input: raw, Err: err}
	}
	return v, nil
}

// FormatDollars renders an amount the way the payment tables show it: "$ 12,345.67".
func FormatDollars(amount float64) string {
	return "$ " + humanize.FormatFloat("#,###.##", amount)
}
