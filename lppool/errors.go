package lppool

import "errors"

var (
	ErrMinFeeGreaterThanMaxFee  = errors.New("min fee greater than max fee")
	ErrLiquidityTargetIncorrect = errors.New("incorrect liquidity target")
	ErrPriceIncorrect           = errors.New("incorrect price")
)
