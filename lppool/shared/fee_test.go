package shared

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Arkko002/liquidity-pool-go/lppool/math"
)

func TestFeeCheck(t *testing.T) {
	require := require.New(t)

	require.NoError(FeeFromBasisPoints(0).Check())
	require.NoError(FeeFromBasisPoints(10).Check())
	require.NoError(FeeFromBasisPoints(MaxBasisPoint).Check())

	err := FeeFromBasisPoints(10_001).Check()
	require.ErrorIs(err, ErrBasisPointsOverflow)
	require.ErrorContains(err, "10001")
}

func TestFeeApply(t *testing.T) {
	tests := []struct {
		name     string
		bps      uint32
		lamports uint64
		want     uint64
	}{
		{name: "0.10% of 10000", bps: 10, lamports: 10_000, want: 9_990},
		{name: "1.00% of 10000", bps: 100, lamports: 10_000, want: 9_900},
		{name: "fee floors to zero", bps: 10, lamports: 100, want: 100},
		{name: "zero fee", bps: 0, lamports: 12_345, want: 12_345},
		{name: "full fee", bps: MaxBasisPoint, lamports: 12_345, want: 0},
		{name: "max lamports", bps: 9_000, lamports: stdmath.MaxUint64, want: 1_844_674_407_370_955_162},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FeeFromBasisPoints(tt.bps).Apply(tt.lamports)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFeeApplyOverflowingBasisPoints(t *testing.T) {
	_, err := FeeFromBasisPoints(20_000).Apply(100)
	require.ErrorIs(t, err, math.ErrCalculation)
}

func TestFeeOrderingAndString(t *testing.T) {
	require := require.New(t)

	minFee, maxFee := FeeFromBasisPoints(10), FeeFromBasisPoints(900)
	require.Equal(-1, minFee.Cmp(maxFee))
	require.Equal(1, maxFee.Cmp(minFee))
	require.Zero(minFee.Cmp(FeeFromBasisPoints(10)))

	require.Equal("0.10%", minFee.String())
	require.Equal("9.00%", maxFee.String())
	require.Equal("100.00%", FeeFromBasisPoints(MaxBasisPoint).String())
}
