// Package money implements fixed-precision currency arithmetic for the
// group ledger. Amounts are stored as an integer number of minor units
// (paise) with a fixed scale of two decimal places, so accumulation across
// any number of records is exact. Binary floating point is never used for
// currency values.
package money

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrAmountTooLarge = errors.New("amount too large")
)

const (
	// Scale is the number of minor units per major currency unit.
	Scale = 100

	// MaxExpense is the ceiling for a single expense amount:
	// 1,000,000 major units (10 lakh INR), expressed in minor units.
	MaxExpense = Money(1_000_000 * Scale)
)

// Money is a signed amount in minor currency units. The zero value is zero.
type Money int64

// FromMinorUnits wraps a raw minor-unit count.
func FromMinorUnits(units int64) Money {
	return Money(units)
}

// FromDecimalString parses a decimal amount such as "100", "33.3" or
// "-0.05" into minor units. Fractional digits beyond the scale are rounded
// half away from zero to the nearest minor unit. Returns ErrInvalidAmount
// for non-numeric input and ErrAmountTooLarge when the whole-unit part
// exceeds the MaxExpense ceiling.
func FromDecimalString(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidAmount)
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" || s == "." {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	var units int64
	for _, r := range intPart {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		units = units*10 + int64(r-'0')
		if units > int64(MaxExpense)/Scale {
			return 0, fmt.Errorf("%w: %q", ErrAmountTooLarge, s)
		}
	}
	units *= Scale

	// Minor units from the first two fractional digits, then round half
	// away from zero on the third.
	var frac int64
	for i, r := range fracPart {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		switch {
		case i == 0:
			frac += int64(r-'0') * 10
		case i == 1:
			frac += int64(r - '0')
		case i == 2:
			if r >= '5' {
				frac++
			}
		}
	}
	units += frac

	if negative {
		units = -units
	}
	return Money(units), nil
}

// ParseExpenseAmount parses a decimal string and enforces the expense
// amount invariants: strictly positive and at most MaxExpense.
func ParseExpenseAmount(s string) (Money, error) {
	m, err := FromDecimalString(s)
	if err != nil {
		return 0, err
	}
	return m, ValidateExpenseAmount(m)
}

// ValidateExpenseAmount checks that m is usable as an expense or settlement
// amount: strictly positive and within the configured ceiling.
func ValidateExpenseAmount(m Money) error {
	if m <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}
	if m > MaxExpense {
		return fmt.Errorf("%w: max %s", ErrAmountTooLarge, MaxExpense)
	}
	return nil
}

// Add returns m + n.
func (m Money) Add(n Money) Money { return m + n }

// Sub returns m - n.
func (m Money) Sub(n Money) Money { return m - n }

// Neg returns -m.
func (m Money) Neg() Money { return -m }

// Abs returns the magnitude of m.
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

// Compare returns -1, 0 or 1 as m is less than, equal to or greater than n.
func (m Money) Compare(n Money) int {
	switch {
	case m < n:
		return -1
	case m > n:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether m is exactly zero.
func (m Money) IsZero() bool { return m == 0 }

// IsPositive reports whether m is strictly greater than zero.
func (m Money) IsPositive() bool { return m > 0 }

// MinorUnits returns the raw minor-unit count, for persistence and the
// JSON boundary.
func (m Money) MinorUnits() int64 { return int64(m) }

// String renders m as a decimal amount with two fractional digits,
// e.g. "100.00" or "-33.34".
func (m Money) String() string {
	units := int64(m)
	sign := ""
	if units < 0 {
		sign = "-"
		units = -units
	}
	return fmt.Sprintf("%s%d.%02d", sign, units/Scale, units%Scale)
}
