// Package money normalizes the heterogeneous price representations coming
// from the upstream commerce backend (plain numbers, or strings like
// "₹1,299.00") into canonical float amounts, and formats amounts for display.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrNotNumeric = errors.New("amount is not numeric")

const (
	// PrimarySymbol is used for amounts at or above the grouping threshold.
	PrimarySymbol = "₹"
	// SecondarySymbol is used for amounts below the grouping threshold.
	SecondarySymbol = "$"

	groupingThreshold = 1000
)

var symbolReplacer = strings.NewReplacer(
	PrimarySymbol, "",
	SecondarySymbol, "",
	"Rs.", "",
	"Rs", "",
	",", "",
	" ", "",
	" ", "",
)

// ParseString strips currency symbols and thousands separators from s and
// parses the residue as a float. Non-numeric residue is an error; callers
// must guard before doing arithmetic on the result.
func ParseString(s string) (float64, error) {
	cleaned := strings.TrimSpace(symbolReplacer.Replace(s))
	if cleaned == "" {
		return 0, ErrNotNumeric
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	return v, nil
}

// Parse accepts the raw price value as decoded from JSON (float64 or string)
// and returns the canonical numeric amount. This is the single adapter where
// duck-typed prices enter the core; business rules never re-parse.
func Parse(v any) (float64, error) {
	switch amt := v.(type) {
	case float64:
		return amt, nil
	case int:
		return float64(amt), nil
	case string:
		return ParseString(amt)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrNotNumeric, v)
	}
}

// Format renders an amount for display. Amounts >= 1000 use the primary
// currency symbol with thousands grouping; amounts below 1000 use the
// secondary symbol with two decimals. The display currency is chosen by
// magnitude, not by a stored currency field — the boundary sits exactly
// at 1000 and is relied upon by the cart screens.
func Format(v float64) string {
	if v >= groupingThreshold {
		return PrimarySymbol + groupDigits(v)
	}
	return fmt.Sprintf("%s%.2f", SecondarySymbol, v)
}

// groupDigits renders v with commas every three integer digits. Two decimals
// are kept only when the amount has a fractional part.
func groupDigits(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	if fracPart != "00" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
