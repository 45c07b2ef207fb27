package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	columnPrecision = 14
	moneyScale      = 2
	quantityScale   = 3
)

// parseAmount reads a money value typed by a user; a decimal comma is accepted.
// The sign is kept as given.
func parseAmount(field, raw string) (decimal.Decimal, error) {
	return parseDecimal(field, raw, moneyScale)
}

// parseQuantity is parseAmount for the three-decimal quantity column.
func parseQuantity(field, raw string) (decimal.Decimal, error) {
	return parseDecimal(field, raw, quantityScale)
}

// parseDecimal rejects values that do not fit a decimal(14, scale) column.
func parseDecimal(field, raw string, scale int32) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, invalid(field, field+" is required")
	}
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, invalid(field, field+" must be a number")
	}
	if !d.Equal(d.Truncate(scale)) {
		return decimal.Zero, invalid(field, fmt.Sprintf("%s allows at most %d decimal places", field, scale))
	}
	if d.Abs().GreaterThanOrEqual(decimal.New(1, columnPrecision-scale)) {
		return decimal.Zero, invalid(field, field+" is out of range")
	}
	return d, nil
}

func parseOptionalAmount(field, raw string) (decimal.NullDecimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := parseAmount(field, raw)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}
