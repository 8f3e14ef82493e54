package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ValidateAndConvertAmount parses a decimal string into minor units (cents).
// "10" -> 1000, "10.5" -> 1050, "10.55" -> 1055. More than two fraction digits,
// signs, separators and overflow are rejected.
func ValidateAndConvertAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	whole := parts[0]
	fraction := ""
	if len(parts) == 2 {
		fraction = parts[1]
	}

	if whole == "" || !isDigits(whole) || !isDigits(fraction) {
		return 0, fmt.Errorf("%w: %q is not a decimal number", errs.ErrInvalidAmount, amount)
	}
	if len(fraction) > MaxDecimalPlaces {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	fraction += strings.Repeat("0", MaxDecimalPlaces-len(fraction))

	value, err := strconv.ParseInt(whole+fraction, 10, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return 0, errs.ErrAmountOverflow
		}
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// ValidatePositiveAmount parses an amount that must be strictly greater than zero
func ValidatePositiveAmount(amount string) (int64, error) {
	cents, err := ValidateAndConvertAmount(amount)
	if err != nil {
		return 0, err
	}
	if cents == 0 {
		return 0, errs.ErrNonPositiveAmount
	}
	return cents, nil
}

// AddAmounts adds two non-negative amounts, failing instead of wrapping around
func AddAmounts(a, b int64) (int64, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, errs.ErrAmountOverflow
	}
	return a + b, nil
}

// AmountInCentsToString converts integer amount to a decimal string
// For example:
// - 1015 becomes "10.15"
// - 1000 becomes "10.00"
func AmountInCentsToString(amountInCents int64) string {
	sign := ""
	if amountInCents < 0 {
		sign = "-"
	}

	abs := uint64(amountInCents)
	if amountInCents < 0 {
		abs = uint64(-(amountInCents + 1)) + 1
	}

	return fmt.Sprintf("%s%d.%02d", sign, abs/100, abs%100)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
