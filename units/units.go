package units

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when a formatted quantity cannot be parsed.
var ErrInvalidFormat = errors.New("units: invalid format")

type unit struct {
	value  float64
	symbol string
}

// Largest first so formatting picks the biggest unit that fits.
var moneyUnits = []unit{
	{1e15, "Q"},
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// RAM units are binary: 1 TB = 1024 GB.
var ramUnits = []unit{
	{1024 * 1024, "PB"},
	{1024, "TB"},
	{1, "GB"},
}

var (
	moneyPattern = regexp.MustCompile(`^\$?([\d.]+)([KMBTQ]?)$`)
	ramPattern   = regexp.MustCompile(`^([\d.]+)\s?(PB|TB|GB)?$`)
)

// FormatMoney renders amount with two decimals and the largest fitting
// suffix, e.g. 10050 -> "$10.05K".
func FormatMoney(amount float64) string {
	return "$" + FormatMoneyPlain(amount)
}

// FormatMoneyPlain is FormatMoney without the currency symbol.
func FormatMoneyPlain(amount float64) string {
	for _, u := range moneyUnits {
		if amount >= u.value {
			return strconv.FormatFloat(amount/u.value, 'f', 2, 64) + u.symbol
		}
	}

	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// ParseMoney reverses FormatMoney; the suffix is case-insensitive and the
// currency symbol optional. "10m" -> 10000000.
func ParseMoney(s string) (float64, error) {
	m := moneyPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil {
		return 0, fmt.Errorf("%w: money %q", ErrInvalidFormat, s)
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: money %q", ErrInvalidFormat, s)
	}
	for _, u := range moneyUnits {
		if u.symbol == m[2] {
			return n * u.value, nil
		}
	}

	return n, nil
}

// FormatRAM renders gigabytes with the largest fitting unit and the given
// number of fraction digits, e.g. (2048, 0) -> "2 TB".
func FormatRAM(gigabytes float64, fractionDigits int) string {
	for _, u := range ramUnits {
		if gigabytes >= u.value {
			return strconv.FormatFloat(gigabytes/u.value, 'f', fractionDigits, 64) + " " + u.symbol
		}
	}

	return strconv.FormatFloat(gigabytes, 'f', fractionDigits, 64) + " GB"
}

// ParseRAM reverses FormatRAM and returns gigabytes. A bare number is GB.
func ParseRAM(s string) (float64, error) {
	m := ramPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil {
		return 0, fmt.Errorf("%w: ram %q", ErrInvalidFormat, s)
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: ram %q", ErrInvalidFormat, s)
	}
	for _, u := range ramUnits {
		if u.symbol == m[2] {
			return n * u.value, nil
		}
	}

	return n, nil
}

// FormatChange renders a count delta as "(+3)" or "(-2)"; zero renders empty.
func FormatChange(delta int) string {
	switch {
	case delta > 0:
		return fmt.Sprintf("(+%d)", delta)
	case delta < 0:
		return fmt.Sprintf("(-%d)", -delta)
	}
	return ""
}
