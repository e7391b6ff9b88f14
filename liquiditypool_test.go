package liquiditypool

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Arkko002/liquidity-pool-go/lppool/shared"
)

func TestNewPool(t *testing.T) {
	require := require.New(t)

	pool, err := NewPool(
		shared.PriceFromPoints(150),
		shared.FeeFromBasisPoints(10),
		shared.FeeFromBasisPoints(900),
		shared.TokenAmountFromLamports(90_000),
	)
	require.NoError(err)

	lp, err := pool.AddLiquidity(shared.TokenAmountFromLamports(100_000_000))
	require.NoError(err)
	require.Equal(uint64(99_900_000), lp.Lamports())

	tokens, err := pool.Swap(shared.StakedTokenAmountFromLamports(6_000))
	require.NoError(err)
	require.Equal(uint64(899_100), tokens.Lamports())
}

func TestLoadConfig(t *testing.T) {
	require := require.New(t)

	cfg, err := LoadConfig([]byte(`{"price": "1.5", "min_fee_bps": 10, "max_fee_bps": 900, "liquidity_target": 90000}`))
	require.NoError(err)

	pool, err := cfg.NewPool()
	require.NoError(err)
	require.Equal("1.50", pool.Price().String())
}
