package math

import (
	"fmt"

	"github.com/Arkko002/liquidity-pool-go/u128"
)

// Proportional returns amount*numerator/denominator computed on a 128-bit
// intermediate. A zero denominator yields amount unchanged, which is what a
// pool with no issued shares expects.
func Proportional(amount, numerator, denominator uint64) (uint64, error) {
	if denominator == 0 {
		return amount, nil
	}
	q, err := u128.Div64(u128.Mul64(amount, numerator), denominator)
	if err != nil {
		return 0, fmt.Errorf("%w: failed calculating proportions: %d * %d / %d: %w",
			ErrCalculation, amount, numerator, denominator, err)
	}
	return q, nil
}

func ValueFromShares(shares, totalValue, totalShares uint64) (uint64, error) {
	return Proportional(shares, totalValue, totalShares)
}
