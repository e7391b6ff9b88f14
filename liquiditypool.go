package liquiditypool

import (
	"github.com/Arkko002/liquidity-pool-go/config"
	"github.com/Arkko002/liquidity-pool-go/lppool"
)

// NewPool creates an empty unstake liquidity pool.
//
// Example:
//
// pool, _ := NewPool(shared.PriceFromPoints(150), shared.FeeFromBasisPoints(10), shared.FeeFromBasisPoints(900), shared.TokenAmountFromLamports(90_000))
//
// lp, _ := pool.AddLiquidity(shared.TokenAmountFromLamports(100_000_000))
//
// tokens, _ := pool.Swap(shared.StakedTokenAmountFromLamports(6_000))
var NewPool = lppool.Init

// LoadConfig parses a JSON pool config.
//
// Example:
//
// cfg, _ := LoadConfig(data)
//
// pool, _ := cfg.NewPool(lppool.WithLogger(logger))
var LoadConfig = config.Load
