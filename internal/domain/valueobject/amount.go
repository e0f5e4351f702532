// Package valueobject contains domain value objects for the Church Ledger system.
package valueobject

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

var hundred = decimal.NewFromInt(100)

// NormalizeAmount coerces a loosely typed amount into a non-negative decimal
// rounded to cents. Absent, unparseable, NaN, infinite and negative inputs
// all yield zero.
func NormalizeAmount(value any) decimal.Decimal {
	switch v := value.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return nonNegative(v)
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero
		}
		return nonNegative(*v)
	case float64:
		return normalizeFloat(v)
	case float32:
		return normalizeFloat(float64(v))
	case int:
		return nonNegative(decimal.NewFromInt(int64(v)))
	case int32:
		return nonNegative(decimal.NewFromInt32(v))
	case int64:
		return nonNegative(decimal.NewFromInt(v))
	case uint, uint32, uint64:
		return parseAmount(fmt.Sprint(v))
	case json.Number:
		return parseAmount(v.String())
	case string:
		return parseAmount(v)
	case *string:
		if v == nil {
			return decimal.Zero
		}
		return parseAmount(*v)
	default:
		return decimal.Zero
	}
}

func normalizeFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return nonNegative(decimal.NewFromFloat(f))
}

// parseAmount accepts plain decimal strings with optional surrounding spaces
// and comma thousands separators ("1,250.00").
func parseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return nonNegative(d)
}

// nonNegative rounds d to cents and clamps negatives to zero.
func nonNegative(d decimal.Decimal) decimal.Decimal {
	d = RoundCurrency(d)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ReconcileTotal decides the authoritative total of a record.
// A positive explicit total wins and the sub-amounts are not summed.
// Otherwise the total is the sum of the normalized sub-amounts.
// Every amount is rounded to cents first.
// A result that is not positive fails with ErrInvalidAmount.
func ReconcileTotal(explicitTotal decimal.Decimal, subAmounts []decimal.Decimal) (decimal.Decimal, error) {
	explicitTotal = nonNegative(explicitTotal)
	if explicitTotal.IsPositive() {
		return explicitTotal, nil
	}

	total := decimal.Zero
	for _, amount := range subAmounts {
		total = total.Add(nonNegative(amount))
	}

	if !total.IsPositive() {
		return decimal.Zero, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"total amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}
	return total, nil
}

// RoundCurrency rounds half away from zero to two decimal places.
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// PercentOf returns round2(base * percent / 100).
func PercentOf(base, percent decimal.Decimal) decimal.Decimal {
	return RoundCurrency(base.Mul(percent).Div(hundred))
}
