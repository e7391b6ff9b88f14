package lppool

import (
	"fmt"

	"github.com/Arkko002/liquidity-pool-go/lppool/math"
	"github.com/Arkko002/liquidity-pool-go/lppool/shared"
)

type AddLiquidityQuote struct {
	Fee shared.Fee
	// TokensWithFee is the part of the deposit credited to the pool.
	TokensWithFee shared.TokenAmount
	// StakedTokens is the staked equivalent credited to the staked reserve.
	StakedTokens shared.StakedTokenAmount
	LpTokens     shared.LpTokenAmount
	After        Reserves
}

type RemoveLiquidityQuote struct {
	Fee              shared.Fee
	TokensWithoutFee shared.TokenAmount
	TokensWithFee    shared.TokenAmount
	StakedTokens     shared.StakedTokenAmount
	After            Reserves
}

type SwapQuote struct {
	Fee              shared.Fee
	TokensWithoutFee shared.TokenAmount
	TokensWithFee    shared.TokenAmount
	After            Reserves
}

// QuoteAddLiquidity computes AddLiquidity without changing the pool.
func (p *Pool) QuoteAddLiquidity(tokensToAdd shared.TokenAmount) (AddLiquidityQuote, error) {
	tokenAmountAfter, err := p.tokenAmount.Add(tokensToAdd)
	if err != nil {
		return AddLiquidityQuote{}, fmt.Errorf("add liquidity %s: %w", tokensToAdd, err)
	}
	fee, err := p.CalculateFee(tokenAmountAfter)
	if err != nil {
		return AddLiquidityQuote{}, err
	}

	withFee, err := fee.Apply(tokensToAdd.Lamports())
	if err != nil {
		return AddLiquidityQuote{}, err
	}
	tokensWithFee := shared.TokenAmountFromLamports(withFee)
	stakedTokens, err := shared.StakedTokenAmountFromTokens(tokensWithFee, p.price)
	if err != nil {
		return AddLiquidityQuote{}, err
	}
	lpTokens := shared.LpTokenAmountFromTokens(tokensWithFee)

	after := p.reserves()
	if after.TokenAmount, err = after.TokenAmount.Add(tokensWithFee); err != nil {
		return AddLiquidityQuote{}, fmt.Errorf("add liquidity %s: %w", tokensToAdd, err)
	}
	if after.StakedTokenAmount, err = after.StakedTokenAmount.Add(stakedTokens); err != nil {
		return AddLiquidityQuote{}, fmt.Errorf("add liquidity %s: %w", tokensToAdd, err)
	}
	if after.LpTokenAmount, err = after.LpTokenAmount.Add(lpTokens); err != nil {
		return AddLiquidityQuote{}, fmt.Errorf("add liquidity %s: %w", tokensToAdd, err)
	}

	return AddLiquidityQuote{
		Fee:           fee,
		TokensWithFee: tokensWithFee,
		StakedTokens:  stakedTokens,
		LpTokens:      lpTokens,
		After:         after,
	}, nil
}

// QuoteRemoveLiquidity computes RemoveLiquidity without changing the pool.
func (p *Pool) QuoteRemoveLiquidity(lpTokensToRemove shared.LpTokenAmount) (RemoveLiquidityQuote, error) {
	withoutFee, err := math.ValueFromShares(
		lpTokensToRemove.Lamports(),
		p.tokenAmount.Lamports(),
		p.lpTokenAmount.Lamports(),
	)
	if err != nil {
		return RemoveLiquidityQuote{}, err
	}
	tokensWithoutFee := shared.TokenAmountFromLamports(withoutFee)

	tokenAmountAfter, err := p.tokenAmount.Sub(tokensWithoutFee)
	if err != nil {
		return RemoveLiquidityQuote{}, fmt.Errorf("remove liquidity %s: %w", lpTokensToRemove, err)
	}
	fee, err := p.CalculateFee(tokenAmountAfter)
	if err != nil {
		return RemoveLiquidityQuote{}, err
	}

	withFee, err := fee.Apply(withoutFee)
	if err != nil {
		return RemoveLiquidityQuote{}, err
	}
	tokensWithFee := shared.TokenAmountFromLamports(withFee)
	unstakedTokens, err := shared.StakedTokenAmountFromTokens(tokensWithFee, p.price)
	if err != nil {
		return RemoveLiquidityQuote{}, err
	}

	after := p.reserves()
	if after.TokenAmount, err = after.TokenAmount.Sub(tokensWithFee); err != nil {
		return RemoveLiquidityQuote{}, fmt.Errorf("remove liquidity %s: %w", lpTokensToRemove, err)
	}
	if after.StakedTokenAmount, err = after.StakedTokenAmount.Sub(unstakedTokens); err != nil {
		return RemoveLiquidityQuote{}, fmt.Errorf("remove liquidity %s: %w", lpTokensToRemove, err)
	}
	if after.LpTokenAmount, err = after.LpTokenAmount.Sub(lpTokensToRemove); err != nil {
		return RemoveLiquidityQuote{}, fmt.Errorf("remove liquidity %s: %w", lpTokensToRemove, err)
	}

	return RemoveLiquidityQuote{
		Fee:              fee,
		TokensWithoutFee: tokensWithoutFee,
		TokensWithFee:    tokensWithFee,
		StakedTokens:     unstakedTokens,
		After:            after,
	}, nil
}

// QuoteSwap computes Swap without changing the pool.
func (p *Pool) QuoteSwap(stakedTokensToSwap shared.StakedTokenAmount) (SwapQuote, error) {
	tokensWithoutFee, err := p.price.Multiply(stakedTokensToSwap)
	if err != nil {
		return SwapQuote{}, err
	}
	tokenAmountAfter, err := p.tokenAmount.Sub(tokensWithoutFee)
	if err != nil {
		return SwapQuote{}, fmt.Errorf("swap %s: %w", stakedTokensToSwap, err)
	}
	fee, err := p.CalculateFee(tokenAmountAfter)
	if err != nil {
		return SwapQuote{}, err
	}

	withFee, err := fee.Apply(tokensWithoutFee.Lamports())
	if err != nil {
		return SwapQuote{}, err
	}
	tokensWithFee := shared.TokenAmountFromLamports(withFee)

	after := p.reserves()
	if after.TokenAmount, err = after.TokenAmount.Sub(tokensWithFee); err != nil {
		return SwapQuote{}, fmt.Errorf("swap %s: %w", stakedTokensToSwap, err)
	}
	if after.StakedTokenAmount, err = after.StakedTokenAmount.Add(stakedTokensToSwap); err != nil {
		return SwapQuote{}, fmt.Errorf("swap %s: %w", stakedTokensToSwap, err)
	}

	return SwapQuote{
		Fee:              fee,
		TokensWithoutFee: tokensWithoutFee,
		TokensWithFee:    tokensWithFee,
		After:            after,
	}, nil
}
