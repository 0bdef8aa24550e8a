package pricefomatter

import (
	"errors"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	bCtx "github.com/x-xyz/marketclient/base/ctx"
)

const (
	etherDecimals = 18
	// maxIntegerDigits bounds amounts far above any supply, 10^40 ether
	maxIntegerDigits = 40
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrTooManyDecimal = errors.New("amount has more than 18 decimals")
	ErrAmountTooLarge = errors.New("amount is too large")
)

type PriceFormatter interface {
	// ToUsd converts an amount of native currency into usd
	ToUsd(ctx bCtx.Ctx, amount decimal.Decimal) (decimal.Decimal, error)
}

// FormatEther converts wei into ether
func FormatEther(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -etherDecimals)
}

// ParseEther converts a decimal ether string into wei
func ParseEther(amount string) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return nil, ErrInvalidAmount
	}
	return ToWei(d)
}

// ToWei converts an ether amount into wei, rejecting sub-wei precision.
// Exponents are checked first, rescaling 1e10000000 would allocate 10^exp.
func ToWei(amount decimal.Decimal) (*big.Int, error) {
	if amount.IsZero() {
		return new(big.Int), nil
	}
	exp := int64(amount.Exponent())
	digits := int64(len(new(big.Int).Abs(amount.Coefficient()).String()))
	if digits+exp > maxIntegerDigits {
		return nil, ErrAmountTooLarge
	}
	if exp < -(etherDecimals + maxIntegerDigits) {
		return nil, ErrTooManyDecimal
	}
	if !amount.Equal(amount.Truncate(etherDecimals)) {
		return nil, ErrTooManyDecimal
	}
	return amount.Shift(etherDecimals).BigInt(), nil
}
