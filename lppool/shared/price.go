package shared

import (
	"fmt"
	stdmath "math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/Arkko002/liquidity-pool-go/lppool/math"
	"github.com/Arkko002/liquidity-pool-go/u128"
)

var (
	priceScale    = decimal.NewFromInt(PriceScale)
	maxPricePoint = decimal.NewFromInt(stdmath.MaxUint32)
)

// Price is the fixed exchange rate between token and staked token, stored in
// points of 1/100.
type Price struct {
	points uint64
}

func PriceFromPoints(points uint64) Price {
	return Price{points: points}
}

// PriceFromDecimal floors price to the nearest 1/100. The scaled value must fit
// in 32 bits.
func PriceFromDecimal(price decimal.Decimal) (Price, error) {
	points := price.Mul(priceScale).Floor()
	if points.IsNegative() || points.GreaterThan(maxPricePoint) {
		return Price{}, fmt.Errorf("%w: converted from %s", ErrPriceConversionFailure, price)
	}
	return Price{points: uint64(points.IntPart())}, nil
}

func PriceFromFloat(price float64) (Price, error) {
	if stdmath.IsNaN(price) || stdmath.IsInf(price, 0) {
		return Price{}, fmt.Errorf("%w: converted from %v", ErrPriceConversionFailure, price)
	}
	return PriceFromDecimal(decimal.NewFromFloat(price))
}

// PriceFromUint converts a whole-unit price.
func PriceFromUint(price uint64) (Price, error) {
	points, err := math.Mul(price, PriceScale)
	if err != nil {
		return Price{}, fmt.Errorf("%w: converted from %d", ErrPriceConversionFailure, price)
	}
	return Price{points: points}, nil
}

func (p Price) Points() uint64 {
	return p.points
}

func (p Price) IsZero() bool {
	return p.points == 0
}

// Multiply values staked lamports in token lamports.
func (p Price) Multiply(staked StakedTokenAmount) (TokenAmount, error) {
	lamports, err := p.mulByPrice(staked.lamports)
	if err != nil {
		return TokenAmount{}, err
	}
	return TokenAmount{lamports: lamports}, nil
}

// Divide values token lamports in staked lamports.
func (p Price) Divide(tokens TokenAmount) (StakedTokenAmount, error) {
	lamports, err := p.divByPrice(tokens.lamports)
	if err != nil {
		return StakedTokenAmount{}, err
	}
	return StakedTokenAmount{lamports: lamports}, nil
}

func (p Price) mulByPrice(lamports uint64) (uint64, error) {
	v, err := u128.Uint64(u128.Mul64(lamports, p.points))
	if err != nil {
		return 0, fmt.Errorf("%w: %d multiplied by price %s: %w", math.ErrCalculation, lamports, p, err)
	}
	return v, nil
}

func (p Price) divByPrice(lamports uint64) (uint64, error) {
	v, err := u128.Div64(u128.Mul64(lamports, 1), p.points)
	if err != nil {
		return 0, fmt.Errorf("%w: %d divided by price %s: %w", math.ErrCalculation, lamports, p, err)
	}
	return v, nil
}

func (p Price) String() string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(p.points), -2).StringFixed(2)
}
