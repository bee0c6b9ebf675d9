// Package currency parses and formats monetary amounts in the two grouping
// conventions users actually type, independent of process locale.
package currency

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("unparsable monetary amount")

var (
	// comma decimal separator, optional dot thousands grouping
	commaDecimal = regexp.MustCompile(`^-?(\d{1,3}(\.\d{3})*|\d+)(,\d+)?$`)
	// dot decimal separator, optional comma thousands grouping
	dotDecimal = regexp.MustCompile(`^-?(\d{1,3}(,\d{3})*|\d+)(\.\d+)?$`)
)

// Parse reads an amount tolerant of a leading or trailing currency symbol and
// either decimal convention. The comma-decimal reading is tried first; the
// first convention that matches wins.
func Parse(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	for _, sym := range []string{"€", "$"} {
		s = strings.TrimPrefix(s, sym)
		s = strings.TrimSuffix(s, sym)
	}
	s = strings.TrimSpace(s)

	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}

	switch {
	case commaDecimal.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case dotDecimal.MatchString(s):
		s = strings.ReplaceAll(s, ",", "")
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}

	return d, nil
}

// Format renders an amount for display with dot thousands grouping and a
// comma decimal separator, followed by the currency code. Serialized exports
// do not use this; they emit plain dot-decimal via StringFixed.
func Format(amount decimal.Decimal, currencyCode string) string {
	fixed := amount.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, ".") + "," + fracPart
	if neg {
		out = "-" + out
	}

	return out + " " + currencyCode
}
