package shared

import (
	stdmath "math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Arkko002/liquidity-pool-go/lppool/math"
)

func TestPriceFromDecimal(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		want    uint64
		wantErr error
	}{
		{name: "one hundredth", price: "0.01", want: 1},
		{name: "floors below one hundredth", price: "1.509", want: 150},
		{name: "whole", price: "10", want: 1_000},
		{name: "zero", price: "0", want: 0},
		{name: "largest representable", price: "42949672.95", want: stdmath.MaxUint32},
		{name: "exceeds 32 bits", price: "42949672.96", wantErr: ErrPriceConversionFailure},
		{name: "negative", price: "-0.01", wantErr: ErrPriceConversionFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			got, err := PriceFromDecimal(decimal.RequireFromString(tt.price))
			require.ErrorIs(err, tt.wantErr)
			if tt.wantErr == nil {
				require.Equal(tt.want, got.Points())
			}
		})
	}
}

func TestPriceFromFloat(t *testing.T) {
	require := require.New(t)

	p, err := PriceFromFloat(0.01)
	require.NoError(err)
	require.Equal(uint64(1), p.Points())

	p, err = PriceFromFloat(1.5)
	require.NoError(err)
	require.Equal(uint64(150), p.Points())

	_, err = PriceFromFloat(stdmath.NaN())
	require.ErrorIs(err, ErrPriceConversionFailure)

	_, err = PriceFromFloat(stdmath.Inf(1))
	require.ErrorIs(err, ErrPriceConversionFailure)
}

func TestPriceFromUint(t *testing.T) {
	require := require.New(t)

	p, err := PriceFromUint(100)
	require.NoError(err)
	require.Equal(uint64(10_000), p.Points())

	p, err = PriceFromUint(0)
	require.NoError(err)
	require.True(p.IsZero())

	_, err = PriceFromUint(stdmath.MaxUint64)
	require.ErrorIs(err, ErrPriceConversionFailure)
}

func TestPriceMultiplyDivide(t *testing.T) {
	require := require.New(t)
	price := PriceFromPoints(2)

	tokens, err := price.Multiply(StakedTokenAmountFromLamports(10_000))
	require.NoError(err)
	require.Equal(TokenAmountFromLamports(20_000), tokens)

	staked, err := price.Divide(TokenAmountFromLamports(10_000))
	require.NoError(err)
	require.Equal(StakedTokenAmountFromLamports(5_000), staked)

	_, err = price.Multiply(StakedTokenAmountFromLamports(stdmath.MaxUint64))
	require.ErrorIs(err, math.ErrCalculation)

	_, err = PriceFromPoints(0).Divide(TokenAmountFromLamports(1))
	require.ErrorIs(err, math.ErrCalculation)
}

func TestPriceString(t *testing.T) {
	require := require.New(t)

	require.Equal("1.50", PriceFromPoints(150).String())
	require.Equal("0.02", PriceFromPoints(2).String())
	require.Equal("184467440737095516.15", PriceFromPoints(stdmath.MaxUint64).String())
}
